package schedule

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// Interval is a clock-time window on one weekday, in minutes since
// midnight. End <= Start means the window wraps past midnight into the
// next calendar day (e.g. the 22:00-02:00 night slot).
type Interval struct {
	Start int
	End   int
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM", normalising
// values that ran past midnight.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseInterval builds an Interval from "HH:MM" boundary strings.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// unwrappedEnd projects the end boundary onto a single time axis so a
// wrapping window compares like any other half-open interval.
func (iv Interval) unwrappedEnd() int {
	if iv.End <= iv.Start {
		return iv.End + minutesPerDay
	}
	return iv.End
}

// Wraps reports whether the window spans midnight.
func (iv Interval) Wraps() bool {
	return iv.End <= iv.Start
}

// Contains reports whether the given clock minute falls inside the
// half-open window [Start, End), taking the midnight wrap into account.
func (iv Interval) Contains(minute int) bool {
	if iv.Wraps() {
		return minute >= iv.Start || minute < iv.End
	}
	return minute >= iv.Start && minute < iv.End
}

// Overlaps reports whether two same-weekday windows share any instant.
// Both windows are unwrapped before the standard half-open comparison,
// so 22:00-02:00 overlaps 22:00-02:00 but not 06:00-10:00.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.unwrappedEnd() && other.Start < iv.unwrappedEnd()
}
