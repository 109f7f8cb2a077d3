package models

import "time"

// Occupation blocks a staff/day/time window with no customer attached
// (meetings, breaks, manual blackouts). It shares the conflict space
// with appointments. A nil StaffID blocks the whole salon.
type Occupation struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	StaffID *uint        `json:"staff_id"`
	Staff   *StaffMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	Date        time.Time `gorm:"index" json:"date"`
	StartClock  string    `gorm:"size:5" json:"start_clock"`
	DurationMin int       `json:"duration_min"`

	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
