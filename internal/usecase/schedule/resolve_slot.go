package schedule

import (
	"context"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type ResolveSlotInput struct {
	CompanyID uint
	BranchID  *uint

	Weekday   int
	StartTime string
	EndTime   string
}

type SlotResolution struct {
	Slot        domain.Slot              `json:"slot"`
	Weekday     int                      `json:"weekday"`
	Assignments []models.ShiftAssignment `json:"assignments"`
	Template    *models.ShiftTemplate    `json:"template,omitempty"`
	Coverage    domain.Coverage          `json:"coverage"`
}

// ResolveSlot is the pure read behind one grid cell: the assignments
// occupying the slot, the first matching template, and how the two
// compare. No side effects.
type ResolveSlot struct {
	repo domain.Repository
}

func NewResolveSlot(repo domain.Repository) *ResolveSlot {
	return &ResolveSlot{repo: repo}
}

func (uc *ResolveSlot) Execute(
	ctx context.Context,
	in ResolveSlotInput,
) (*SlotResolution, error) {

	slot, err := domain.FindSlot(in.Weekday, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	assignments, err := uc.repo.ListAssignmentsForSlot(
		ctx,
		in.CompanyID,
		in.BranchID,
		in.Weekday,
		in.StartTime,
		in.EndTime,
	)
	if err != nil {
		return nil, err
	}

	tpl, err := uc.repo.FindTemplateForSlot(
		ctx,
		in.CompanyID,
		in.BranchID,
		in.Weekday,
		in.StartTime,
		in.EndTime,
	)
	if err != nil {
		return nil, err
	}

	return &SlotResolution{
		Slot:        slot,
		Weekday:     in.Weekday,
		Assignments: assignments,
		Template:    tpl,
		Coverage:    domain.EvaluateCoverage(len(assignments), tpl),
	}, nil
}
