package schedule

import "github.com/tabletide/shift-scheduler/internal/models"

// FindOverlap returns the first existing assignment that would double-book
// the target's staff member: same staff, same weekday, overlapping window.
// The target itself (matched by ID) is skipped so moves can re-check
// against everything but the row being moved.
func FindOverlap(
	target *models.ShiftAssignment,
	existing []models.ShiftAssignment,
) *models.ShiftAssignment {

	iv, err := ParseInterval(target.StartTime, target.EndTime)
	if err != nil {
		return nil
	}

	for i := range existing {
		other := &existing[i]
		if other.ID == target.ID {
			continue
		}
		if other.StaffID != target.StaffID || other.Weekday != target.Weekday {
			continue
		}

		otherIv, err := ParseInterval(other.StartTime, other.EndTime)
		if err != nil {
			continue
		}
		if iv.Overlaps(otherIv) {
			return other
		}
	}
	return nil
}

// FindExclusiveOverlap is FindOverlap restricted to assignments whose
// state claims the member's presence (active or assist). Used to guard
// transitions into an exclusive state: a person cannot be simultaneously
// on duty in two overlapping shifts.
func FindExclusiveOverlap(
	target *models.ShiftAssignment,
	existing []models.ShiftAssignment,
) *models.ShiftAssignment {

	exclusive := existing[:0:0]
	for _, a := range existing {
		if ShiftState(a.State).Exclusive() {
			exclusive = append(exclusive, a)
		}
	}
	return FindOverlap(target, exclusive)
}
