package schedule

import (
	"context"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/timezone"
)

type CurrentSlotInput struct {
	CompanyID uint
	BranchID  uint
}

type CurrentSlotOutput struct {
	Weekday    int             `json:"weekday"`
	LocalTime  string          `json:"local_time"`
	Slot       *domain.Slot    `json:"slot,omitempty"`
	Resolution *SlotResolution `json:"resolution,omitempty"`
}

// CurrentSlot answers "what is happening right now" for one branch: the
// catalog slot containing the branch-local wall clock, if any, resolved
// like any other grid cell. Between 02:00 and 06:00 no slot is active
// and only the clock is returned.
type CurrentSlot struct {
	repo    domain.Repository
	resolve *ResolveSlot
}

func NewCurrentSlot(repo domain.Repository) *CurrentSlot {
	return &CurrentSlot{
		repo:    repo,
		resolve: NewResolveSlot(repo),
	}
}

func (uc *CurrentSlot) Execute(
	ctx context.Context,
	in CurrentSlotInput,
) (*CurrentSlotOutput, error) {

	branch, err := uc.repo.GetBranch(ctx, in.CompanyID, in.BranchID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(branch.Timezone)
	minute := now.Hour()*60 + now.Minute()

	out := &CurrentSlotOutput{
		Weekday:   int(now.Weekday()),
		LocalTime: domain.FormatClock(minute),
	}

	slot, ok := domain.SlotAt(minute)
	if !ok {
		return out, nil
	}
	out.Slot = &slot

	// a wrapping slot that started yesterday belongs to yesterday's grid row
	weekday := out.Weekday
	if slot.Interval().Wraps() && minute < slot.Interval().Start {
		weekday = (weekday + 6) % 7
	}

	res, err := uc.resolve.Execute(ctx, ResolveSlotInput{
		CompanyID: in.CompanyID,
		BranchID:  &in.BranchID,
		Weekday:   weekday,
		StartTime: slot.Start,
		EndTime:   slot.End,
	})
	if err != nil {
		return nil, err
	}
	out.Resolution = res

	return out, nil
}
