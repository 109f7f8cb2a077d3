package models

import "time"

type StaffMember struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Phone  string `gorm:"size:20" json:"phone"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DurationOverride replaces a service's base duration for one staff member.
type DurationOverride struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StaffID   uint `gorm:"index:idx_override_staff_service,unique" json:"staff_id"`
	ServiceID uint `gorm:"index:idx_override_staff_service,unique" json:"service_id"`

	DurationMin int `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
