package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Staff directory
// --------------------------------------------------

func (r *ScheduleGormRepository) GetStaffMember(
	ctx context.Context,
	companyID uint,
	staffID uint,
) (*models.StaffMember, error) {

	var staff models.StaffMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", staffID, companyID).
		First(&staff).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "staff member", ID: staffID}
		}
		return nil, err
	}
	return &staff, nil
}

// --------------------------------------------------
// Branch registry
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBranch(
	ctx context.Context,
	companyID uint,
	branchID uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", branchID, companyID).
		First(&branch).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "branch", ID: branchID}
		}
		return nil, err
	}
	return &branch, nil
}

// --------------------------------------------------
// Templates
// --------------------------------------------------

func (r *ScheduleGormRepository) ListTemplates(
	ctx context.Context,
	companyID uint,
	branchID domain.BranchFilter,
) ([]models.ShiftTemplate, error) {

	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var templates []models.ShiftTemplate
	if err := q.Order("id ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *ScheduleGormRepository) FindTemplateForSlot(
	ctx context.Context,
	companyID uint,
	branchID domain.BranchFilter,
	weekday int,
	start string,
	end string,
) (*models.ShiftTemplate, error) {

	q := r.db.WithContext(ctx).
		Where(
			"company_id = ? AND weekday = ? AND start_time = ? AND end_time = ? AND active = ?",
			companyID, weekday, start, end, true,
		)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	// duplicates may coexist; the lowest id wins
	var tpl models.ShiftTemplate
	if err := q.Order("id ASC").First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

// --------------------------------------------------
// Assignments (read)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAssignment(
	ctx context.Context,
	companyID uint,
	id uint,
) (*models.ShiftAssignment, error) {

	var ap models.ShiftAssignment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "assignment", ID: id}
		}
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) ListAssignments(
	ctx context.Context,
	companyID uint,
	branchID domain.BranchFilter,
) ([]models.ShiftAssignment, error) {

	q := r.db.WithContext(ctx).
		Preload("Staff").
		Where("company_id = ?", companyID)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var aps []models.ShiftAssignment
	if err := q.
		Order("weekday ASC, start_time ASC, id ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAssignmentsForSlot(
	ctx context.Context,
	companyID uint,
	branchID domain.BranchFilter,
	weekday int,
	start string,
	end string,
) ([]models.ShiftAssignment, error) {

	q := r.db.WithContext(ctx).
		Preload("Staff").
		Where(
			"company_id = ? AND weekday = ? AND start_time = ? AND end_time = ?",
			companyID, weekday, start, end,
		)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var aps []models.ShiftAssignment
	if err := q.Order("id ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Assignments (write, atomic)
// --------------------------------------------------

// lockStaffDay loads every assignment of one staff member on one weekday
// with a row lock, so the overlap decision and the following write commit
// as one unit. Interval comparison happens in Go because the midnight
// wrap does not express cleanly over "HH:MM" columns in SQL.
func lockStaffDay(
	tx *gorm.DB,
	companyID uint,
	staffID uint,
	weekday int,
) ([]models.ShiftAssignment, error) {

	var existing []models.ShiftAssignment
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"company_id = ? AND staff_id = ? AND weekday = ?",
			companyID, staffID, weekday,
		).
		Order("id ASC").
		Find(&existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *ScheduleGormRepository) CreateAssignmentIfFree(
	ctx context.Context,
	ap *models.ShiftAssignment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockStaffDay(tx, ap.CompanyID, ap.StaffID, ap.Weekday)
		if err != nil {
			return err
		}

		if conflict := domain.FindOverlap(ap, existing); conflict != nil {
			return &domain.ConflictError{
				Code:         domain.CodeOverlapConflict,
				AssignmentID: conflict.ID,
			}
		}

		return tx.Create(ap).Error
	})
}

func (r *ScheduleGormRepository) ReplaceAssignmentIfFree(
	ctx context.Context,
	ap *models.ShiftAssignment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockStaffDay(tx, ap.CompanyID, ap.StaffID, ap.Weekday)
		if err != nil {
			return err
		}

		// FindOverlap skips ap.ID, so the row being moved never blocks
		// its own move.
		if conflict := domain.FindOverlap(ap, existing); conflict != nil {
			return &domain.ConflictError{
				Code:         domain.CodeOverlapConflict,
				AssignmentID: conflict.ID,
			}
		}

		return tx.Save(ap).Error
	})
}

func (r *ScheduleGormRepository) SetStateIfFree(
	ctx context.Context,
	ap *models.ShiftAssignment,
	target domain.ShiftState,
) error {

	if !target.Exclusive() {
		return r.db.WithContext(ctx).
			Model(ap).
			Update("state", string(target)).Error
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockStaffDay(tx, ap.CompanyID, ap.StaffID, ap.Weekday)
		if err != nil {
			return err
		}

		if conflict := domain.FindExclusiveOverlap(ap, existing); conflict != nil {
			return &domain.ConflictError{
				Code:         domain.CodeConcurrentActive,
				AssignmentID: conflict.ID,
			}
		}

		return tx.Model(ap).Update("state", string(target)).Error
	})
}

func (r *ScheduleGormRepository) SaveAssignment(
	ctx context.Context,
	ap *models.ShiftAssignment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) DeleteAssignment(
	ctx context.Context,
	companyID uint,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&models.ShiftAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "assignment", ID: id}
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
