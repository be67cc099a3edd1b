package schedule

import (
	"context"

	"github.com/tabletide/shift-scheduler/internal/audit"
	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type MoveAssignmentInput struct {
	CompanyID    uint
	ActorID      *uint
	AssignmentID uint

	Weekday   int
	StartTime string
	EndTime   string

	// Optional retargeting; nil keeps the current value.
	BranchID *uint
	StaffID  *uint
}

// MoveAssignment rewrites an assignment's identity fields (staff, day,
// slot, branch). Identity changes always re-run the overlap check, with
// the moving row excluded from its own scan, so the no-double-booking
// rule is enforced in exactly one place.
type MoveAssignment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMoveAssignment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MoveAssignment {
	return &MoveAssignment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MoveAssignment) Execute(
	ctx context.Context,
	in MoveAssignmentInput,
) (*models.ShiftAssignment, error) {

	slot, err := domain.FindSlot(in.Weekday, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAssignment(ctx, in.CompanyID, in.AssignmentID)
	if err != nil {
		return nil, err
	}

	oldSlot, oldErr := domain.FindSlot(ap.Weekday, ap.StartTime, ap.EndTime)

	if in.StaffID != nil && *in.StaffID != ap.StaffID {
		staff, err := uc.repo.GetStaffMember(ctx, in.CompanyID, *in.StaffID)
		if err != nil {
			return nil, err
		}
		ap.StaffID = staff.ID
		ap.Role = staff.Role
		ap.Color = colorForRole(staff.Role)
	}

	if in.BranchID != nil {
		branch, err := uc.repo.GetBranch(ctx, in.CompanyID, *in.BranchID)
		if err != nil {
			return nil, err
		}
		ap.BranchID = branch.ID
	}

	// a hand-edited title survives the move; the stock one follows the slot
	if oldErr == nil && ap.Title == oldSlot.DefaultTitle() {
		ap.Title = slot.DefaultTitle()
	}

	ap.Weekday = in.Weekday
	ap.StartTime = in.StartTime
	ap.EndTime = in.EndTime

	if err := uc.repo.ReplaceAssignmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    in.ActorID,
		Action:    "shift_moved",
		Entity:    "shift_assignment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"weekday": in.Weekday,
			"slot":    slot.Label,
		},
	})

	return ap, nil
}
