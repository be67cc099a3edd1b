package schedule

import "fmt"

// Rejection codes surfaced to the HTTP layer. Every rejection names the
// entity that caused it so the grid UI can explain a refused drop.
const (
	CodeOverlapConflict  = "overlap_conflict"
	CodeConcurrentActive = "concurrent_active_conflict"
	CodeInvalidSlot      = "invalid_slot"
	CodeCapacityExceeded = "template_capacity_exceeded"
)

// ConflictError rejects a placement or state change that would double-book
// a staff member. AssignmentID is the existing assignment that wins.
type ConflictError struct {
	Code         string
	AssignmentID uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: conflicting assignment %d", e.Code, e.AssignmentID)
}

// NotFoundError rejects an operation referencing a row that no longer
// exists. Entity is the table-ish name ("assignment", "staff member", ...).
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// SlotError rejects a (weekday, start, end) triple that is not a catalog
// slot. Raised before any state is touched.
type SlotError struct {
	Weekday int
	Start   string
	End     string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("no slot at weekday=%d %s-%s", e.Weekday, e.Start, e.End)
}

// CapacityError rejects a placement that would exceed a template's
// headcount while the server runs in hard capacity mode.
type CapacityError struct {
	TemplateID uint
	MaxStaff   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("template %d full (max_staff=%d)", e.TemplateID, e.MaxStaff)
}
