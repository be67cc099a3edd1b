package models

import "time"

// ShiftAssignment places one staff member into one weekly grid slot.
// StartTime and EndTime are always copied verbatim from the slot catalog
// entry the member was dropped into; sub-slot assignments do not exist.
type ShiftAssignment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"index;not null" json:"company_id"`

	BranchID uint   `gorm:"index" json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"branch,omitempty"`

	StaffID uint        `gorm:"index" json:"staff_id"`
	Staff   StaffMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"staff,omitempty"`

	Title string `gorm:"size:100" json:"title"`

	Weekday   int    `json:"weekday"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	// Role is copied from the staff member at placement time so later
	// directory edits do not rewrite history.
	Role string `gorm:"size:20" json:"role"`

	State string `gorm:"size:20;default:'inactive'" json:"state"`

	Color string `gorm:"size:20" json:"color"`
	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
