package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint `gorm:"index" json:"salon_id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	StaffID *uint        `json:"staff_id"`
	Staff   *StaffMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	ServiceName string `gorm:"size:100;not null" json:"service_name"`

	// Date is midnight in the salon's timezone; StartClock is "HH:MM".
	// DurationMin was resolved at booking time and is never recomputed.
	Date        time.Time `gorm:"index" json:"date"`
	StartClock  string    `gorm:"size:5" json:"start_clock"`
	DurationMin int       `json:"duration_min"`

	// Pack linkage. PackID groups the sub-appointments of one booking.
	PackID    *string `gorm:"size:36;index" json:"pack_id,omitempty"`
	PackName  string  `gorm:"size:100" json:"pack_name,omitempty"`
	PackIndex int     `json:"pack_index,omitempty"`
	PackSize  int     `json:"pack_size,omitempty"`

	PaymentStatus string  `gorm:"size:20;default:'not-required'" json:"payment_status"`
	PaymentMethod *string `gorm:"size:20" json:"payment_method,omitempty"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes             string `gorm:"size:255" json:"notes"`
	InspirationImages string `gorm:"size:1024" json:"inspiration_images"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
