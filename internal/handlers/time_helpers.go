package handlers

import (
	"time"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
	"github.com/LunaSuiteApps/salon-scheduler/internal/timezone"
)

func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location("")
}

func parseDayInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}

// parseMonthInSalon returns the first instant of the month in the
// salon's timezone.
func parseMonthInSalon(salon *models.Salon, monthStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01",
		monthStr,
		locationFromSalon(salon),
	)
}
