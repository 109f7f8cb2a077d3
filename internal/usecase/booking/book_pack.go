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

type BookPackInput struct {
	SalonID     uint
	ServiceName string

	Date string // YYYY-MM-DD
	Time string // HH:MM, the pack's anchor

	Customer domain.CustomerFields

	DepositMarkedPaid bool
	Notes             string
	InspirationKeys   []string

	CorrelationID string

	EnforceMinAdvance bool
}

type PackBookingResult struct {
	PackID       string               `json:"pack_id"`
	Appointments []models.Appointment `json:"appointments"`
}

// ======================================================
// USE CASE
// ======================================================

type BookPack struct {
	repo   domain.Repository
	locks  DayLocker
	notify *notify.Dispatcher
}

func NewBookPack(
	repo domain.Repository,
	locks DayLocker,
	notifier *notify.Dispatcher,
) *BookPack {
	return &BookPack{
		repo:   repo,
		locks:  locks,
		notify: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute expands the pack at the anchor time, validates every sub-slot
// against its own staff member's calendar, and persists all of them in
// one transaction. Any sub-slot failure rejects the whole pack; zero
// rows persist.
func (uc *BookPack) Execute(
	ctx context.Context,
	in BookPackInput,
) (*PackBookingResult, error) {

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
	anchorMin, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	if in.EnforceMinAdvance && tooSoon(salon, day, anchorMin) {
		return nil, domain.NewConflict(domain.ReasonTooSoon)
	}

	slots, err := domain.ExpandPack(desc, anchorMin)
	if err != nil {
		return nil, err
	}

	if in.CorrelationID == "" {
		in.CorrelationID = uuid.NewString()
	}

	release, err := uc.locks.Acquire(ctx, salon.ID, in.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	var result *PackBookingResult

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		customer, err := tx.UpsertCustomerByPhone(ctx, salon.ID, in.Customer)
		if err != nil {
			return &domain.CustomerResolutionError{Phone: in.Customer.Phone, Err: err}
		}

		toCreate := make([]*models.Appointment, 0, len(slots))
		pending := make([]domain.Busy, 0, len(slots))

		for _, slot := range slots {
			staffID := slot.StaffID

			err := validateSlot(ctx, tx, slotRequest{
				Salon:       salon,
				Service:     &desc.Service,
				StaffID:     &staffID,
				Day:         day,
				StartMin:    slot.StartMin,
				DurationMin: slot.DurationMin,
			})

			// Earlier steps of this pack are not persisted yet; the
			// candidate must clear them too (a parallel step sharing
			// its staff member with the anchor step is a conflict).
			if err == nil {
				cand := domain.Candidate{
					StaffID:     &staffID,
					StartMin:    slot.StartMin,
					DurationMin: slot.DurationMin,
				}
				if domain.HasConflict(cand, pending) {
					err = domain.NewConflict(domain.ReasonOverlap)
				}
			}

			if err != nil {
				return &domain.PackPartialFailureError{
					PackName: slot.PackName,
					SubIndex: slot.Index,
					SubName:  slot.Name,
					Err:      err,
				}
			}

			pending = append(pending, domain.Busy{
				StaffID:  &staffID,
				StartMin: slot.StartMin,
				EndMin:   slot.EndMin(),
			})

			packID := slot.PackID
			toCreate = append(toCreate, &models.Appointment{
				SalonID:           salon.ID,
				CustomerID:        customer.ID,
				StaffID:           &staffID,
				ServiceName:       slot.Name,
				Date:              day,
				StartClock:        domain.FormatClock(slot.StartMin),
				DurationMin:       slot.DurationMin,
				PackID:            &packID,
				PackName:          slot.PackName,
				PackIndex:         slot.Index,
				PackSize:          slot.Total,
				PaymentStatus:     domain.ResolvePaymentStatus(desc, in.DepositMarkedPaid),
				PaymentMethod:     domain.ResolvePaymentMethod(desc, in.DepositMarkedPaid),
				Status:            string(domain.InitialStatus()),
				Notes:             in.Notes,
				InspirationImages: strings.Join(in.InspirationKeys, ","),
			})
		}

		if err := tx.CreateAppointments(ctx, toCreate); err != nil {
			return err
		}

		created := make([]models.Appointment, 0, len(toCreate))
		for _, ap := range toCreate {
			created = append(created, *ap)
		}
		result = &PackBookingResult{
			PackID:       slots[0].PackID,
			Appointments: created,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.notify != nil {
		uc.notify.Dispatch(notify.Booking{
			SalonName:    salon.Name,
			CustomerName: in.Customer.FullName,
			Phone:        in.Customer.Phone,
			ServiceName:  desc.Service.Name,
			Date:         in.Date,
			Time:         domain.FormatClock(anchorMin),
		})
	}

	return result, nil
}
