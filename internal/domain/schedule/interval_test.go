package schedule

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:00", 360, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"25:70", 0, true},
		{"nope", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q): unexpected error state: %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntervalOverlaps(t *testing.T) {
	mk := func(start, end string) Interval {
		iv, err := ParseInterval(start, end)
		if err != nil {
			t.Fatalf("ParseInterval(%s, %s): %v", start, end, err)
		}
		return iv
	}

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", mk("10:00", "14:00"), mk("10:00", "14:00"), true},
		{"partial", mk("10:00", "14:00"), mk("12:00", "16:00"), true},
		{"contained", mk("10:00", "18:00"), mk("12:00", "14:00"), true},
		{"adjacent", mk("10:00", "14:00"), mk("14:00", "18:00"), false},
		{"disjoint", mk("06:00", "10:00"), mk("18:00", "22:00"), false},
		{"night vs evening", mk("22:00", "02:00"), mk("18:00", "22:00"), false},
		{"night vs night", mk("22:00", "02:00"), mk("22:00", "02:00"), true},
		{"night vs late evening", mk("22:00", "02:00"), mk("21:00", "23:00"), true},
		{"night vs early morning", mk("22:00", "02:00"), mk("06:00", "10:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	night, _ := ParseInterval("22:00", "02:00")
	morning, _ := ParseInterval("10:00", "14:00")

	tests := []struct {
		name   string
		iv     Interval
		minute int
		want   bool
	}{
		{"morning start inclusive", morning, 600, true},
		{"morning end exclusive", morning, 840, false},
		{"morning middle", morning, 720, true},
		{"night before midnight", night, 1380, true},
		{"night after midnight", night, 60, true},
		{"night gap", night, 240, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.Contains(tt.minute); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.minute, got, tt.want)
			}
		})
	}
}
