package booking

import (
	"context"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

type MarkDepositPaid struct {
	repo domain.Repository
}

func NewMarkDepositPaid(repo domain.Repository) *MarkDepositPaid {
	return &MarkDepositPaid{repo: repo}
}

// Execute flips a pending deposit to paid and records the service's
// configured method. Any other transition is rejected; paid never
// reverts.
func (uc *MarkDepositPaid) Execute(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.TransitionPayment(ap.PaymentStatus, domain.PaymentPaid); err != nil {
		return nil, err
	}

	ap.PaymentStatus = domain.PaymentPaid

	if ap.PaymentMethod == nil {
		desc, err := resolveService(ctx, uc.repo, salonID, serviceNameFor(ap))
		if err == nil {
			ap.PaymentMethod = domain.ResolvePaymentMethod(desc, true)
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}

// serviceNameFor resolves the definition name behind an appointment:
// pack sub-appointments carry the sub-service name, the pack itself
// holds the deposit configuration.
func serviceNameFor(ap *models.Appointment) string {
	if ap.PackID != nil && ap.PackName != "" {
		return ap.PackName
	}
	return ap.ServiceName
}
