package models

import "time"

type Branch struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"index;not null" json:"company_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
