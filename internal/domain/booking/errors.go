package booking

import (
	"errors"
	"fmt"
)

var ErrServiceNotFound = errors.New("service not found")

// RejectReason is the specific condition that blocked a slot. All of
// them fold into the same ConflictError so a caller only checks one
// signal; the reason is kept for accurate messages.
type RejectReason string

const (
	ReasonOverlap           RejectReason = "overlap"
	ReasonBusinessClosed    RejectReason = "business_closed"
	ReasonOutsideBusiness   RejectReason = "outside_business_hours"
	ReasonOutsideStaffHours RejectReason = "outside_staff_hours"
	ReasonServiceDayOff     RejectReason = "service_unavailable_on_day"
	ReasonTooSoon           RejectReason = "too_soon"
)

type ConflictError struct {
	Reason RejectReason
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot rejected: %s", e.Reason)
}

func NewConflict(reason RejectReason) *ConflictError {
	return &ConflictError{Reason: reason}
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// InvalidDepositError is a service-definition problem, caught when a
// service is saved, not at booking time.
type InvalidDepositError struct {
	ServiceName   string
	DepositAmount float64
	Price         float64
}

func (e *InvalidDepositError) Error() string {
	return fmt.Sprintf(
		"service %q: deposit %.2f invalid for price %.2f",
		e.ServiceName, e.DepositAmount, e.Price,
	)
}

// CustomerResolutionError means no stable customer id could be obtained
// after an upsert. Fatal to the current booking attempt.
type CustomerResolutionError struct {
	Phone string
	Err   error
}

func (e *CustomerResolutionError) Error() string {
	return fmt.Sprintf("could not resolve customer %s: %v", e.Phone, e.Err)
}

func (e *CustomerResolutionError) Unwrap() error { return e.Err }

// PackPartialFailureError rejects a whole pack when any sub-slot fails
// validation. Nothing partial is ever persisted.
type PackPartialFailureError struct {
	PackName string
	SubIndex int
	SubName  string
	Err      error
}

func (e *PackPartialFailureError) Error() string {
	return fmt.Sprintf(
		"pack %q rejected at step %d (%s): %v",
		e.PackName, e.SubIndex, e.SubName, e.Err,
	)
}

func (e *PackPartialFailureError) Unwrap() error { return e.Err }
