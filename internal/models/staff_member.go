package models

import "time"

const (
	RoleManager = "manager"
	RoleChef    = "chef"
	RoleWaiter  = "waiter"
	RoleBarista = "barista"
	RoleCashier = "cashier"
	RoleOther   = "other"
)

func KnownRole(role string) bool {
	switch role {
	case RoleManager, RoleChef, RoleWaiter, RoleBarista, RoleCashier, RoleOther:
		return true
	}
	return false
}

type StaffMember struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"index;not null" json:"company_id"`

	Name string `gorm:"size:100;not null" json:"name"`
	Role string `gorm:"size:20;default:'other'" json:"role"`

	// Home branch; nullable for staff that float between branches.
	BranchID *uint   `json:"branch_id"`
	Branch   *Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"branch,omitempty"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
