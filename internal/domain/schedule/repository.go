package schedule

import (
	"context"

	"github.com/tabletide/shift-scheduler/internal/models"
)

// BranchFilter scopes a read to one branch or, when nil, to the whole
// company.
type BranchFilter *uint

type Repository interface {
	// -------- Staff directory --------
	GetStaffMember(
		ctx context.Context,
		companyID uint,
		staffID uint,
	) (*models.StaffMember, error)

	// -------- Branch registry --------
	GetBranch(
		ctx context.Context,
		companyID uint,
		branchID uint,
	) (*models.Branch, error)

	// -------- Templates --------
	ListTemplates(
		ctx context.Context,
		companyID uint,
		branchID BranchFilter,
	) ([]models.ShiftTemplate, error)

	// FindTemplateForSlot returns the first active template matching the
	// slot in id order, or nil when none matches.
	FindTemplateForSlot(
		ctx context.Context,
		companyID uint,
		branchID BranchFilter,
		weekday int,
		start string,
		end string,
	) (*models.ShiftTemplate, error)

	// -------- Assignments (read) --------
	GetAssignment(
		ctx context.Context,
		companyID uint,
		id uint,
	) (*models.ShiftAssignment, error)

	ListAssignments(
		ctx context.Context,
		companyID uint,
		branchID BranchFilter,
	) ([]models.ShiftAssignment, error)

	ListAssignmentsForSlot(
		ctx context.Context,
		companyID uint,
		branchID BranchFilter,
		weekday int,
		start string,
		end string,
	) ([]models.ShiftAssignment, error)

	// -------- Assignments (write, atomic) --------

	// CreateAssignmentIfFree runs the same-staff same-weekday overlap scan
	// and the insert inside one transaction, locking the member's rows so
	// two concurrent placements cannot both succeed. Returns ConflictError
	// on a double booking.
	CreateAssignmentIfFree(
		ctx context.Context,
		ap *models.ShiftAssignment,
	) error

	// ReplaceAssignmentIfFree is the move operation: the overlap re-check
	// excludes the row being moved, then the identity fields are rewritten
	// in place within the same transaction.
	ReplaceAssignmentIfFree(
		ctx context.Context,
		ap *models.ShiftAssignment,
	) error

	// SetStateIfFree replaces the assignment's state. Transitions into an
	// exclusive state (active/assist) scan the member's other exclusive
	// assignments under lock and return ConflictError on overlap; all
	// other targets are written unconditionally.
	SetStateIfFree(
		ctx context.Context,
		ap *models.ShiftAssignment,
		target ShiftState,
	) error

	SaveAssignment(
		ctx context.Context,
		ap *models.ShiftAssignment,
	) error

	// DeleteAssignment removes the row; a missing id yields NotFoundError,
	// never an invalid delete.
	DeleteAssignment(
		ctx context.Context,
		companyID uint,
		id uint,
	) error
}
