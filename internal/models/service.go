package models

import "time"

// Deposit payment methods accepted when a service requires a deposit.
const (
	DepositMethodOnline        = "online"
	DepositMethodTransfer      = "transfer"
	DepositMethodNotApplicable = "not-applicable"
)

type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	IsPack          bool    `gorm:"default:false" json:"is_pack"`
	RequiresDeposit bool    `gorm:"default:false" json:"requires_deposit"`
	DepositAmount   float64 `json:"deposit_amount"`
	DepositMethod   string  `gorm:"size:20;default:'not-applicable'" json:"deposit_method"`

	// Empty = bookable every weekday the business opens.
	AvailableDays WeekdaySet `gorm:"size:32" json:"available_days"`

	Active bool `gorm:"default:true" json:"active"`

	SubServices []SubService `gorm:"constraint:OnDelete:CASCADE;" json:"sub_services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
