package models

import "time"

// Customer identity is keyed by phone within a salon. Visit counts,
// loyalty tier and history are derived from the appointment set on
// every read and never stored here.
type Customer struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_customer_salon_phone,unique" json:"salon_id"`

	FullName  string     `gorm:"size:100;not null" json:"full_name"`
	Phone     string     `gorm:"size:20;not null;index:idx_customer_salon_phone,unique" json:"phone"`
	Email     string     `gorm:"size:100" json:"email"`
	Birthdate *time.Time `json:"birthdate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
