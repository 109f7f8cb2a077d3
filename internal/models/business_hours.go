package models

import "time"

// BusinessHours is the salon-wide schedule for one weekday. A disabled
// day rejects every slot regardless of staff hours.
type BusinessHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Weekday int `json:"weekday"`

	Enabled   bool   `json:"enabled"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
