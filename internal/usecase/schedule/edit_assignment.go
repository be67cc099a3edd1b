package schedule

import (
	"context"

	"github.com/tabletide/shift-scheduler/internal/audit"
	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/httperr"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type EditAssignmentInput struct {
	CompanyID    uint
	ActorID      *uint
	AssignmentID uint

	Title *string
	Notes *string
	Color *string
	Role  *string
}

// EditAssignment mutates the non-identity fields only. Staff, day and
// slot changes go through MoveAssignment so this path never needs an
// overlap check.
type EditAssignment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEditAssignment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EditAssignment {
	return &EditAssignment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *EditAssignment) Execute(
	ctx context.Context,
	in EditAssignmentInput,
) (*models.ShiftAssignment, error) {

	ap, err := uc.repo.GetAssignment(ctx, in.CompanyID, in.AssignmentID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		ap.Title = *in.Title
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.Color != nil {
		ap.Color = *in.Color
	}
	if in.Role != nil {
		if !models.KnownRole(*in.Role) {
			return nil, httperr.ErrBusiness("unknown_role")
		}
		ap.Role = *in.Role
	}

	if err := uc.repo.SaveAssignment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    in.ActorID,
		Action:    "shift_updated",
		Entity:    "shift_assignment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
