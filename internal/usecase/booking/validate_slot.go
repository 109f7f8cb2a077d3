package booking

import (
	"context"
	"time"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// slotRequest is one candidate window on one calendar day, already in
// minutes since midnight.
type slotRequest struct {
	Salon       *models.Salon
	Service     *models.Service
	StaffID     *uint
	Day         time.Time
	StartMin    int
	DurationMin int
}

// validateSlot folds every availability rule into one reject signal:
// business closure wins over everything, then business-hours
// containment, the service's weekday flags, the staff member's own
// hours, and finally overlap against the day's appointments and
// occupations. Returns nil when the slot is legal.
func validateSlot(ctx context.Context, repo domain.Repository, req slotRequest) error {
	weekday := req.Day.Weekday()

	hours, err := repo.ListBusinessHours(ctx, req.Salon.ID)
	if err != nil {
		return err
	}

	businessDay := domain.BusinessDay(hours, weekday)
	if !businessDay.Enabled {
		return domain.NewConflict(domain.ReasonBusinessClosed)
	}
	if !businessDay.Contains(req.StartMin, req.DurationMin) {
		return domain.NewConflict(domain.ReasonOutsideBusiness)
	}

	if req.Service != nil && !domain.ServiceAvailableOn(req.Service, weekday) {
		return domain.NewConflict(domain.ReasonServiceDayOff)
	}

	if req.StaffID != nil {
		staffHours, err := repo.ListStaffHours(ctx, *req.StaffID)
		if err != nil {
			return err
		}
		if !domain.StaffDay(staffHours, weekday).Contains(req.StartMin, req.DurationMin) {
			return domain.NewConflict(domain.ReasonOutsideStaffHours)
		}
	}

	appointments, err := repo.ListDayAppointments(ctx, req.Salon.ID, req.Day)
	if err != nil {
		return err
	}
	occupations, err := repo.ListDayOccupations(ctx, req.Salon.ID, req.Day)
	if err != nil {
		return err
	}

	busy := domain.BusyFromAppointments(appointments)
	busy = append(busy, domain.BusyFromOccupations(occupations)...)

	cand := domain.Candidate{
		StaffID:     req.StaffID,
		StartMin:    req.StartMin,
		DurationMin: req.DurationMin,
	}
	if domain.HasConflict(cand, busy) {
		return domain.NewConflict(domain.ReasonOverlap)
	}

	return nil
}
