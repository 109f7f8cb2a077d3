package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
	"github.com/LunaSuiteApps/salon-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	SalonID     uint
	ServiceName string
	StaffID     *uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	Customer domain.CustomerFields

	DepositMarkedPaid bool
	Notes             string
	InspirationKeys   []string

	// CorrelationID is a client-generated token that only exists until
	// the repository assigns a durable id. Minted here when absent and
	// never exposed outside the booking transaction.
	CorrelationID string

	EnforceMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	locks  DayLocker
	notify *notify.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	locks DayLocker,
	notifier *notify.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		locks:  locks,
		notify: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	desc, err := resolveService(ctx, uc.repo, salon.ID, in.ServiceName)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateDeposit(desc); err != nil {
		return nil, err
	}

	day, err := parseDay(salon, in.Date)
	if err != nil {
		return nil, err
	}
	startMin, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	if in.EnforceMinAdvance && tooSoon(salon, day, startMin) {
		return nil, domain.NewConflict(domain.ReasonTooSoon)
	}

	durationMin := desc.DurationMin
	if in.StaffID != nil {
		overrides, err := uc.repo.ListDurationOverrides(ctx, *in.StaffID)
		if err != nil {
			return nil, err
		}
		durationMin = domain.EffectiveDuration(desc, overrides, in.StaffID)
	}

	if in.CorrelationID == "" {
		in.CorrelationID = uuid.NewString()
	}

	// Serialize writers for this salon/day, then re-check and insert
	// inside one transaction. The lock covers multiple instances; the
	// transaction covers the read-modify-write itself.
	release, err := uc.locks.Acquire(ctx, salon.ID, in.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	var created *models.Appointment

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		customer, err := tx.UpsertCustomerByPhone(ctx, salon.ID, in.Customer)
		if err != nil {
			return &domain.CustomerResolutionError{Phone: in.Customer.Phone, Err: err}
		}

		if err := validateSlot(ctx, tx, slotRequest{
			Salon:       salon,
			Service:     &desc.Service,
			StaffID:     in.StaffID,
			Day:         day,
			StartMin:    startMin,
			DurationMin: durationMin,
		}); err != nil {
			return err
		}

		ap := &models.Appointment{
			SalonID:           salon.ID,
			CustomerID:        customer.ID,
			StaffID:           in.StaffID,
			ServiceName:       desc.Service.Name,
			Date:              day,
			StartClock:        domain.FormatClock(startMin),
			DurationMin:       durationMin,
			PaymentStatus:     domain.ResolvePaymentStatus(desc, in.DepositMarkedPaid),
			PaymentMethod:     domain.ResolvePaymentMethod(desc, in.DepositMarkedPaid),
			Status:            string(domain.InitialStatus()),
			Notes:             in.Notes,
			InspirationImages: strings.Join(in.InspirationKeys, ","),
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Post-commit, fire-and-forget. A notification failure never rolls
	// back a booking.
	if uc.notify != nil {
		uc.notify.Dispatch(notify.Booking{
			SalonName:    salon.Name,
			CustomerName: in.Customer.FullName,
			Phone:        in.Customer.Phone,
			ServiceName:  desc.Service.Name,
			Date:         in.Date,
			Time:         domain.FormatClock(startMin),
		})
	}

	return created, nil
}
