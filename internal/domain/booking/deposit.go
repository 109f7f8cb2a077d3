package booking

import "fmt"

// ===============================
// Deposit / Payment Status
// ===============================

const (
	PaymentNotRequired = "not-required"
	PaymentPending     = "pending"
	PaymentPaid        = "paid"
)

func DepositRequired(d *Descriptor) bool {
	return d.RequiresDeposit
}

// ValidateDeposit guards the service definition: a required deposit
// must be positive and never exceed the price. Checked at service-save
// time, not at booking time.
func ValidateDeposit(d *Descriptor) error {
	if !d.RequiresDeposit {
		return nil
	}
	if d.DepositAmount <= 0 || d.DepositAmount > d.Price {
		return &InvalidDepositError{
			ServiceName:   d.Service.Name,
			DepositAmount: d.DepositAmount,
			Price:         d.Price,
		}
	}
	return nil
}

// ResolvePaymentStatus maps the deposit policy onto the appointment:
// not-required when no deposit is configured, otherwise paid or pending
// depending on whether the deposit was marked paid at booking time.
func ResolvePaymentStatus(d *Descriptor, depositMarkedPaid bool) string {
	if !d.RequiresDeposit {
		return PaymentNotRequired
	}
	if depositMarkedPaid {
		return PaymentPaid
	}
	return PaymentPending
}

// ResolvePaymentMethod records the configured method only when the
// deposit was actually marked paid.
func ResolvePaymentMethod(d *Descriptor, depositMarkedPaid bool) *string {
	if !d.RequiresDeposit || !depositMarkedPaid {
		return nil
	}
	method := d.DepositMethod
	return &method
}

// TransitionPayment enforces the one-way machine: not-required is
// terminal, pending may move to paid, paid never reverts.
func TransitionPayment(current, next string) error {
	if current == PaymentPending && next == PaymentPaid {
		return nil
	}
	return fmt.Errorf("payment transition %s -> %s not allowed", current, next)
}
