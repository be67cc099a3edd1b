package schedule

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tabletide/shift-scheduler/internal/audit"
	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetStaffMember(ctx context.Context, companyID, staffID uint) (*models.StaffMember, error) {
	args := m.Called(ctx, companyID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffMember), args.Error(1)
}

func (m *mockRepo) GetBranch(ctx context.Context, companyID, branchID uint) (*models.Branch, error) {
	args := m.Called(ctx, companyID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Branch), args.Error(1)
}

func (m *mockRepo) ListTemplates(ctx context.Context, companyID uint, branchID domain.BranchFilter) ([]models.ShiftTemplate, error) {
	args := m.Called(ctx, companyID, branchID)
	return args.Get(0).([]models.ShiftTemplate), args.Error(1)
}

func (m *mockRepo) FindTemplateForSlot(ctx context.Context, companyID uint, branchID domain.BranchFilter, weekday int, start, end string) (*models.ShiftTemplate, error) {
	args := m.Called(ctx, companyID, branchID, weekday, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftTemplate), args.Error(1)
}

func (m *mockRepo) GetAssignment(ctx context.Context, companyID, id uint) (*models.ShiftAssignment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShiftAssignment), args.Error(1)
}

func (m *mockRepo) ListAssignments(ctx context.Context, companyID uint, branchID domain.BranchFilter) ([]models.ShiftAssignment, error) {
	args := m.Called(ctx, companyID, branchID)
	return args.Get(0).([]models.ShiftAssignment), args.Error(1)
}

func (m *mockRepo) ListAssignmentsForSlot(ctx context.Context, companyID uint, branchID domain.BranchFilter, weekday int, start, end string) ([]models.ShiftAssignment, error) {
	args := m.Called(ctx, companyID, branchID, weekday, start, end)
	return args.Get(0).([]models.ShiftAssignment), args.Error(1)
}

func (m *mockRepo) CreateAssignmentIfFree(ctx context.Context, ap *models.ShiftAssignment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) ReplaceAssignmentIfFree(ctx context.Context, ap *models.ShiftAssignment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) SetStateIfFree(ctx context.Context, ap *models.ShiftAssignment, target domain.ShiftState) error {
	return m.Called(ctx, ap, target).Error(0)
}

func (m *mockRepo) SaveAssignment(ctx context.Context, ap *models.ShiftAssignment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) DeleteAssignment(ctx context.Context, companyID, id uint) error {
	return m.Called(ctx, companyID, id).Error(0)
}

var _ domain.Repository = (*mockRepo)(nil)

type noopSink struct{}

func (noopSink) Log(uint, *uint, string, string, *uint, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{})
}
