package booking

import (
	"context"
	"time"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
	"github.com/LunaSuiteApps/salon-scheduler/internal/timezone"
)

const (
	dateLayout = "2006-01-02"
	clockLayout = "15:04"
)

// DayLocker serializes booking writers per salon and date. The redis
// implementation lives in internal/lock; tests plug a no-op.
type DayLocker interface {
	Acquire(ctx context.Context, salonID uint, day string) (release func(), err error)
}

// NopLocker satisfies DayLocker without locking anything. Single-node
// deployments rely on the database transaction alone.
type NopLocker struct{}

func (NopLocker) Acquire(ctx context.Context, salonID uint, day string) (func(), error) {
	return func() {}, nil
}

func parseDay(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, dateStr, timezone.Location(salon.Timezone))
}

// resolveService loads the salon's catalog and resolves one service by
// exact name.
func resolveService(ctx context.Context, repo domain.Repository, salonID uint, name string) (*domain.Descriptor, error) {
	services, err := repo.ListServices(ctx, salonID)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalog(services).Resolve(name)
}

func tooSoon(salon *models.Salon, day time.Time, startMin int) bool {
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}
	start := day.Add(time.Duration(startMin) * time.Minute)
	now := timezone.NowIn(salon.Timezone)
	return start.Before(now.Add(time.Duration(minAdvance) * time.Minute))
}
