package models

import "time"

// ShiftTemplate is a staffing requirement for one weekly slot, not an
// assignment. MaxStaff is guidance for the coverage check, not a capacity
// limit, unless the server runs with hard capacity mode.
type ShiftTemplate struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"index;not null" json:"company_id"`

	BranchID uint   `gorm:"index" json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"branch,omitempty"`

	Weekday   int    `json:"weekday"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Role     string `gorm:"size:20" json:"role"`
	MaxStaff int    `gorm:"default:1" json:"max_staff"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
