package schedule

import (
	"context"

	"github.com/tabletide/shift-scheduler/internal/audit"
	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type SetShiftStateInput struct {
	CompanyID    uint
	ActorID      *uint
	AssignmentID uint
	State        string
}

// SetShiftState replaces the assignment's operational state. This is an
// operator override model: any state is reachable from any other,
// completed included. The single guard is that entering active or assist
// must not put one person on duty in two overlapping windows at once.
type SetShiftState struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetShiftState(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetShiftState {
	return &SetShiftState{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetShiftState) Execute(
	ctx context.Context,
	in SetShiftStateInput,
) (*models.ShiftAssignment, error) {

	target, err := domain.ParseState(in.State)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAssignment(ctx, in.CompanyID, in.AssignmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.State
	if err := uc.repo.SetStateIfFree(ctx, ap, target); err != nil {
		return nil, err
	}
	ap.State = string(target)

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    in.ActorID,
		Action:    "shift_state_changed",
		Entity:    "shift_assignment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   string(target),
		},
	})

	return ap, nil
}
