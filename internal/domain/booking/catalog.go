package booking

import (
	"sort"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// Descriptor is the booking-relevant view of a service resolved for one
// call. It never outlives the request that built it.
type Descriptor struct {
	Service models.Service

	DurationMin     int
	Price           float64
	RequiresDeposit bool
	DepositAmount   float64
	DepositMethod   string

	// Ordered by position; empty for flat services.
	SubServices []models.SubService
}

func (d *Descriptor) IsPack() bool {
	return d.Service.IsPack
}

// Catalog is an immutable-per-call view over a salon's services.
type Catalog struct {
	services []models.Service
}

func NewCatalog(services []models.Service) *Catalog {
	return &Catalog{services: services}
}

// Resolve looks a service up by exact, case-sensitive name.
func (c *Catalog) Resolve(name string) (*Descriptor, error) {
	for i := range c.services {
		svc := c.services[i]
		if svc.Name != name {
			continue
		}

		subs := append([]models.SubService(nil), svc.SubServices...)
		sort.SliceStable(subs, func(a, b int) bool {
			return subs[a].Position < subs[b].Position
		})

		return &Descriptor{
			Service:         svc,
			DurationMin:     baseDuration(&svc, subs),
			Price:           svc.Price,
			RequiresDeposit: svc.RequiresDeposit,
			DepositAmount:   svc.DepositAmount,
			DepositMethod:   svc.DepositMethod,
			SubServices:     subs,
		}, nil
	}
	return nil, ErrServiceNotFound
}

// baseDuration: a pack without an explicit duration is the sum of its
// sub-services.
func baseDuration(svc *models.Service, subs []models.SubService) int {
	if svc.IsPack && svc.DurationMin <= 0 {
		total := 0
		for _, sub := range subs {
			total += sub.DurationMin
		}
		return total
	}
	return svc.DurationMin
}

// EffectiveDuration resolves the minutes one staff member needs for a
// service: their override if present, else the descriptor's base.
func EffectiveDuration(d *Descriptor, overrides []models.DurationOverride, staffID *uint) int {
	if staffID != nil {
		for _, ov := range overrides {
			if ov.StaffID == *staffID && ov.ServiceID == d.Service.ID {
				return ov.DurationMin
			}
		}
	}
	return d.DurationMin
}
