package booking

import (
	"context"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/timezone"
)

type GetCustomerSummary struct {
	repo domain.Repository
}

func NewGetCustomerSummary(repo domain.Repository) *GetCustomerSummary {
	return &GetCustomerSummary{repo: repo}
}

// Execute recomputes the customer's aggregates from the live
// appointment set. ExcludeAppointmentID drops the appointment being
// displayed from the history list (0 keeps everything).
func (uc *GetCustomerSummary) Execute(
	ctx context.Context,
	salonID uint,
	customerID uint,
	excludeAppointmentID uint,
) (*domain.CustomerSummary, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetCustomer(ctx, salonID, customerID); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListCustomerAppointments(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	summary := domain.Summarize(appointments, now, excludeAppointmentID)
	return &summary, nil
}
