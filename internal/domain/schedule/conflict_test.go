package schedule

import (
	"testing"

	"github.com/tabletide/shift-scheduler/internal/models"
)

func mkAssignment(id, staffID uint, weekday int, start, end, state string) models.ShiftAssignment {
	return models.ShiftAssignment{
		ID:        id,
		StaffID:   staffID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		State:     state,
	}
}

func TestFindOverlap(t *testing.T) {
	existing := []models.ShiftAssignment{
		mkAssignment(1, 7, 1, "10:00", "14:00", "inactive"),
		mkAssignment(2, 7, 2, "10:00", "14:00", "inactive"),
		mkAssignment(3, 9, 1, "10:00", "14:00", "inactive"),
		mkAssignment(4, 7, 5, "22:00", "02:00", "inactive"),
	}

	tests := []struct {
		name   string
		target models.ShiftAssignment
		wantID uint // 0 = no conflict
	}{
		{"same slot same staff", mkAssignment(0, 7, 1, "10:00", "14:00", "inactive"), 1},
		{"overlapping slot", mkAssignment(0, 7, 1, "12:00", "16:00", "inactive"), 1},
		{"other weekday free", mkAssignment(0, 7, 3, "10:00", "14:00", "inactive"), 0},
		{"other staff free", mkAssignment(0, 11, 1, "10:00", "14:00", "inactive"), 0},
		{"adjacent slot free", mkAssignment(0, 7, 1, "14:00", "18:00", "inactive"), 0},
		{"night wrap conflict", mkAssignment(0, 7, 5, "21:00", "23:00", "inactive"), 4},
		{"self excluded on move", mkAssignment(1, 7, 1, "10:00", "14:00", "inactive"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOverlap(&tt.target, existing)
			switch {
			case tt.wantID == 0 && got != nil:
				t.Errorf("expected no conflict, got assignment %d", got.ID)
			case tt.wantID != 0 && got == nil:
				t.Errorf("expected conflict with %d, got none", tt.wantID)
			case tt.wantID != 0 && got.ID != tt.wantID:
				t.Errorf("conflict = %d, want %d", got.ID, tt.wantID)
			}
		})
	}
}

func TestFindExclusiveOverlap(t *testing.T) {
	existing := []models.ShiftAssignment{
		mkAssignment(1, 7, 1, "10:00", "14:00", "active"),
		mkAssignment(2, 7, 1, "14:00", "18:00", "break"),
		mkAssignment(3, 7, 2, "10:00", "14:00", "inactive"),
	}

	target := mkAssignment(9, 7, 1, "12:00", "16:00", "inactive")
	if got := FindExclusiveOverlap(&target, existing); got == nil || got.ID != 1 {
		t.Fatalf("expected conflict with active assignment 1, got %v", got)
	}

	// only exclusive states count; the break at 14-18 never blocks
	laterTarget := mkAssignment(9, 7, 1, "14:00", "18:00", "inactive")
	if got := FindExclusiveOverlap(&laterTarget, existing); got != nil {
		t.Fatalf("break state should not block, got assignment %d", got.ID)
	}

	// an inactive overlap on another weekday's grid never blocks either
	otherDay := mkAssignment(9, 7, 2, "10:00", "14:00", "inactive")
	if got := FindExclusiveOverlap(&otherDay, existing); got != nil {
		t.Fatalf("inactive assignment should not block, got assignment %d", got.ID)
	}
}
