package booking

import (
	"context"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type FreeSlots struct {
	repo domain.Repository
}

func NewFreeSlots(repo domain.Repository) *FreeSlots {
	return &FreeSlots{repo: repo}
}

type FreeSlotsInput struct {
	SalonID     uint
	ServiceName string
	StaffID     *uint
	Date        string // YYYY-MM-DD
}

// Execute walks the day in service-duration steps and returns every
// window that clears the calendar and the conflict space. A closed day
// or an unavailable service weekday yields an empty list, not an error.
func (uc *FreeSlots) Execute(
	ctx context.Context,
	in FreeSlotsInput,
) ([]TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	desc, err := resolveService(ctx, uc.repo, salon.ID, in.ServiceName)
	if err != nil {
		return nil, err
	}

	day, err := parseDay(salon, in.Date)
	if err != nil {
		return nil, err
	}
	weekday := day.Weekday()

	hours, err := uc.repo.ListBusinessHours(ctx, salon.ID)
	if err != nil {
		return nil, err
	}
	window := domain.BusinessDay(hours, weekday)
	if !window.Enabled || !domain.ServiceAvailableOn(&desc.Service, weekday) {
		return []TimeSlot{}, nil
	}

	durationMin := desc.DurationMin
	if in.StaffID != nil {
		overrides, err := uc.repo.ListDurationOverrides(ctx, *in.StaffID)
		if err != nil {
			return nil, err
		}
		durationMin = domain.EffectiveDuration(desc, overrides, in.StaffID)

		staffHours, err := uc.repo.ListStaffHours(ctx, *in.StaffID)
		if err != nil {
			return nil, err
		}
		staffDay := domain.StaffDay(staffHours, weekday)
		if !staffDay.Enabled {
			return []TimeSlot{}, nil
		}
		// The bookable window is where business and staff hours meet.
		if staffDay.StartMin > window.StartMin {
			window.StartMin = staffDay.StartMin
		}
		if staffDay.EndMin < window.EndMin {
			window.EndMin = staffDay.EndMin
		}
	}

	if durationMin <= 0 || window.StartMin >= window.EndMin {
		return []TimeSlot{}, nil
	}

	appointments, err := uc.repo.ListDayAppointments(ctx, salon.ID, day)
	if err != nil {
		return nil, err
	}
	occupations, err := uc.repo.ListDayOccupations(ctx, salon.ID, day)
	if err != nil {
		return nil, err
	}
	busy := domain.BusyFromAppointments(appointments)
	busy = append(busy, domain.BusyFromOccupations(occupations)...)

	var slots []TimeSlot
	for cur := window.StartMin; cur+durationMin <= window.EndMin; cur += durationMin {
		cand := domain.Candidate{
			StaffID:     in.StaffID,
			StartMin:    cur,
			DurationMin: durationMin,
		}
		if domain.HasConflict(cand, busy) {
			continue
		}
		slots = append(slots, TimeSlot{
			Start: domain.FormatClock(cur),
			End:   domain.FormatClock(cur + durationMin),
		})
	}

	if slots == nil {
		slots = []TimeSlot{}
	}
	return slots, nil
}
