package schedule

// Slot is one cell column of the fixed weekly grid. The catalog below is
// process-wide static configuration; branches and companies all share it.
type Slot struct {
	Label string `json:"label"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// Catalog is the ordered set of slots the grid is built from. The last
// entry wraps past midnight.
var Catalog = []Slot{
	{Label: "Early Morning", Start: "06:00", End: "10:00"},
	{Label: "Morning", Start: "10:00", End: "14:00"},
	{Label: "Afternoon", Start: "14:00", End: "18:00"},
	{Label: "Evening", Start: "18:00", End: "22:00"},
	{Label: "Night", Start: "22:00", End: "02:00"},
}

// Interval returns the slot boundaries in minutes since midnight. Catalog
// entries are static and well formed, so parse errors cannot occur here.
func (s Slot) Interval() Interval {
	iv, _ := ParseInterval(s.Start, s.End)
	return iv
}

// DefaultTitle is the title given to a fresh assignment dropped into the
// slot, e.g. "Morning Shift".
func (s Slot) DefaultTitle() string {
	return s.Label + " Shift"
}

// FindSlot resolves exact (start, end) boundaries to a catalog entry.
// Anything that is not verbatim a catalog slot is rejected: the grid
// model has no sub-slot or partial placements.
func FindSlot(weekday int, start, end string) (Slot, error) {
	if weekday < 0 || weekday > 6 {
		return Slot{}, &SlotError{Weekday: weekday, Start: start, End: end}
	}
	for _, s := range Catalog {
		if s.Start == start && s.End == end {
			return s, nil
		}
	}
	return Slot{}, &SlotError{Weekday: weekday, Start: start, End: end}
}

// SlotAt returns the catalog slot containing the given clock minute, if
// any. The gap between the Night and Early Morning slots (02:00-06:00)
// belongs to no slot.
func SlotAt(minute int) (Slot, bool) {
	for _, s := range Catalog {
		if s.Interval().Contains(minute) {
			return s, true
		}
	}
	return Slot{}, false
}
