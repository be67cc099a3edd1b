package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/models"
)

func TestResolveSlot(t *testing.T) {
	repo := new(mockRepo)
	uc := NewResolveSlot(repo)

	occupants := []models.ShiftAssignment{
		{ID: 1, StaffID: 7, Weekday: 1, StartTime: "10:00", EndTime: "14:00"},
		{ID: 2, StaffID: 8, Weekday: 1, StartTime: "10:00", EndTime: "14:00"},
	}
	tpl := &models.ShiftTemplate{ID: 5, MaxStaff: 2, Name: "Lunch rush"}

	repo.On("ListAssignmentsForSlot", mock.Anything, uint(1), mock.Anything, 1, "10:00", "14:00").
		Return(occupants, nil)
	repo.On("FindTemplateForSlot", mock.Anything, uint(1), mock.Anything, 1, "10:00", "14:00").
		Return(tpl, nil)

	res, err := uc.Execute(context.Background(), ResolveSlotInput{
		CompanyID: 1,
		Weekday:   1,
		StartTime: "10:00",
		EndTime:   "14:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Morning", res.Slot.Label)
	assert.Len(t, res.Assignments, 2)
	assert.Equal(t, tpl, res.Template)
	assert.Equal(t, domain.CoverageMet, res.Coverage.Status)
}

func TestResolveSlotNoTemplate(t *testing.T) {
	repo := new(mockRepo)
	uc := NewResolveSlot(repo)

	repo.On("ListAssignmentsForSlot", mock.Anything, uint(1), mock.Anything, 0, "06:00", "10:00").
		Return([]models.ShiftAssignment{}, nil)
	repo.On("FindTemplateForSlot", mock.Anything, uint(1), mock.Anything, 0, "06:00", "10:00").
		Return(nil, nil)

	res, err := uc.Execute(context.Background(), ResolveSlotInput{
		CompanyID: 1,
		Weekday:   0,
		StartTime: "06:00",
		EndTime:   "10:00",
	})

	require.NoError(t, err)
	assert.Nil(t, res.Template)
	// no template means no requirement
	assert.Equal(t, domain.CoverageMet, res.Coverage.Status)
	assert.Zero(t, res.Coverage.Required)
}

func TestResolveSlotRejectsAdHocTimes(t *testing.T) {
	repo := new(mockRepo)
	uc := NewResolveSlot(repo)

	_, err := uc.Execute(context.Background(), ResolveSlotInput{
		CompanyID: 1,
		Weekday:   1,
		StartTime: "10:30",
		EndTime:   "14:30",
	})

	var slotErr *domain.SlotError
	require.True(t, errors.As(err, &slotErr))
	repo.AssertNotCalled(t, "ListAssignmentsForSlot",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
