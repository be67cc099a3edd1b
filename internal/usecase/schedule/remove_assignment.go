package schedule

import (
	"context"

	"github.com/tabletide/shift-scheduler/internal/audit"
	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
)

type RemoveAssignment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAssignment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveAssignment {
	return &RemoveAssignment{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the assignment. Removing an id that is already gone
// reports NotFoundError and touches nothing else, so repeated deletes
// from a stale grid are harmless.
func (uc *RemoveAssignment) Execute(
	ctx context.Context,
	companyID uint,
	actorID *uint,
	assignmentID uint,
) error {

	if err := uc.repo.DeleteAssignment(ctx, companyID, assignmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: companyID,
		UserID:    actorID,
		Action:    "shift_removed",
		Entity:    "shift_assignment",
		EntityID:  &assignmentID,
	})

	return nil
}
