package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	booking "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// WriteDomain maps the engine's typed errors onto HTTP responses so
// every handler renders rejections the same way.
func WriteDomain(c *gin.Context, err error) {
	var conflict *booking.ConflictError
	var deposit *booking.InvalidDepositError
	var customer *booking.CustomerResolutionError
	var pack *booking.PackPartialFailureError
	var state *booking.InvalidStateError

	switch {
	case errors.As(err, &pack):
		Conflict(c, "pack_rejected", pack.Error())
	case errors.As(err, &conflict):
		Conflict(c, string(conflict.Reason), "The requested slot is not available.")
	case errors.As(err, &deposit):
		BadRequest(c, "invalid_deposit", deposit.Error())
	case errors.As(err, &customer):
		Internal(c, "customer_resolution_failed", "Could not resolve the customer record.")
	case errors.As(err, &state):
		BadRequest(c, "invalid_state", state.Error())
	case errors.Is(err, booking.ErrServiceNotFound):
		NotFound(c, "service_not_found", "Service not found.")
	case errors.Is(err, booking.ErrNotAPack), errors.Is(err, booking.ErrEmptyPack):
		BadRequest(c, "invalid_pack", err.Error())
	default:
		Internal(c, "internal_error", "Unexpected error.")
	}
}
