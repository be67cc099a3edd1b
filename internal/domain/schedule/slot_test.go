package schedule

import (
	"errors"
	"testing"
)

func TestFindSlot(t *testing.T) {
	tests := []struct {
		name    string
		weekday int
		start   string
		end     string
		label   string
		wantErr bool
	}{
		{"morning", 1, "10:00", "14:00", "Morning", false},
		{"night wrap", 5, "22:00", "02:00", "Night", false},
		{"sunday early", 0, "06:00", "10:00", "Early Morning", false},
		{"sub slot", 1, "10:00", "12:00", "", true},
		{"shifted", 1, "11:00", "15:00", "", true},
		{"weekday too low", -1, "10:00", "14:00", "", true},
		{"weekday too high", 7, "10:00", "14:00", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := FindSlot(tt.weekday, tt.start, tt.end)
			if tt.wantErr {
				var slotErr *SlotError
				if !errors.As(err, &slotErr) {
					t.Fatalf("expected SlotError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if slot.Label != tt.label {
				t.Errorf("label = %q, want %q", slot.Label, tt.label)
			}
		})
	}
}

func TestSlotAt(t *testing.T) {
	tests := []struct {
		name   string
		minute int
		label  string
		found  bool
	}{
		{"mid morning", 12 * 60, "Morning", true},
		{"slot boundary belongs to next", 14 * 60, "Afternoon", true},
		{"night before midnight", 23 * 60, "Night", true},
		{"night after midnight", 1 * 60, "Night", true},
		{"dead hours", 4 * 60, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := SlotAt(tt.minute)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && slot.Label != tt.label {
				t.Errorf("label = %q, want %q", slot.Label, tt.label)
			}
		})
	}
}

func TestDefaultTitle(t *testing.T) {
	slot, err := FindSlot(2, "18:00", "22:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slot.DefaultTitle(); got != "Evening Shift" {
		t.Errorf("DefaultTitle = %q", got)
	}
}
