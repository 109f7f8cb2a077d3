package models

import "time"

// SubService is one step of a pack. Position is the execution order;
// the flag on the first step has no predecessor and is ignored.
type SubService struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"index" json:"service_id"`

	Position    int      `json:"position"`
	Name        string   `gorm:"size:100;not null" json:"name"`
	DurationMin int      `json:"duration_min"`
	StaffID     uint     `json:"staff_id"`
	PartialPrice *float64 `json:"partial_price"`

	StartsAfterPrevious bool `gorm:"default:false" json:"starts_after_previous"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
