package booking

import (
	"context"
	"errors"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

type CheckAvailabilityInput struct {
	SalonID     uint
	ServiceName string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	StaffID     *uint
}

type CheckAvailabilityResult struct {
	OK     bool                `json:"ok"`
	Reason domain.RejectReason `json:"reason,omitempty"`
}

// Execute answers whether the candidate slot is legally bookable. A
// rejected slot is a result, not an error; errors are reserved for
// lookup and storage failures.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (*CheckAvailabilityResult, error) {

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
	startMin, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	durationMin := desc.DurationMin
	if in.StaffID != nil {
		ov, err := uc.repo.ListDurationOverrides(ctx, *in.StaffID)
		if err != nil {
			return nil, err
		}
		durationMin = domain.EffectiveDuration(desc, ov, in.StaffID)
	}

	err = validateSlot(ctx, uc.repo, slotRequest{
		Salon:       salon,
		Service:     &desc.Service,
		StaffID:     in.StaffID,
		Day:         day,
		StartMin:    startMin,
		DurationMin: durationMin,
	})
	if err != nil {
		var ce *domain.ConflictError
		if errors.As(err, &ce) {
			return &CheckAvailabilityResult{OK: false, Reason: ce.Reason}, nil
		}
		return nil, err
	}

	return &CheckAvailabilityResult{OK: true}, nil
}
