package schedule

import "github.com/tabletide/shift-scheduler/internal/httperr"

// ShiftState is the operational lifecycle of one assignment.
type ShiftState string

const (
	StateInactive  ShiftState = "inactive"
	StateActive    ShiftState = "active"
	StateAssist    ShiftState = "assist"
	StateBreak     ShiftState = "break"
	StateCompleted ShiftState = "completed"
)

// ParseState validates a caller-supplied state name.
func ParseState(s string) (ShiftState, error) {
	switch ShiftState(s) {
	case StateInactive, StateActive, StateAssist, StateBreak, StateCompleted:
		return ShiftState(s), nil
	}
	return "", httperr.ErrBusiness("invalid_state")
}

// Exclusive reports whether the state claims the staff member's presence.
// A member may hold at most one exclusive assignment per overlapping
// window; inactive, break and completed carry no such claim.
func (s ShiftState) Exclusive() bool {
	return s == StateActive || s == StateAssist
}

// InitialState is the state every freshly placed assignment starts in.
// Transitions out of it are explicit operator actions; nothing advances
// a shift on a timer.
func InitialState() ShiftState {
	return StateInactive
}
