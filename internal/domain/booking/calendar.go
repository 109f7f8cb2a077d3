package booking

import (
	"time"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// DayHours is one weekday's opening window in minutes since midnight.
type DayHours struct {
	Enabled  bool
	StartMin int
	EndMin   int
}

// Contains reports whether [startMin, startMin+durationMin) fits inside
// the window. A slot whose end spills past closing is rejected.
func (h DayHours) Contains(startMin, durationMin int) bool {
	if !h.Enabled {
		return false
	}
	end := startMin + durationMin
	return h.StartMin <= startMin && end <= h.EndMin
}

// BusinessDay maps a weekday to the salon-wide window. A missing or
// disabled row closes the day.
func BusinessDay(rows []models.BusinessHours, weekday time.Weekday) DayHours {
	for _, row := range rows {
		if time.Weekday(row.Weekday) == weekday {
			return dayHours(row.Enabled, row.StartTime, row.EndTime)
		}
	}
	return DayHours{}
}

// StaffDay maps a weekday to one staff member's window.
func StaffDay(rows []models.StaffWorkingHours, weekday time.Weekday) DayHours {
	for _, row := range rows {
		if time.Weekday(row.Weekday) == weekday {
			return dayHours(row.Enabled, row.StartTime, row.EndTime)
		}
	}
	return DayHours{}
}

func dayHours(enabled bool, start, end string) DayHours {
	if !enabled || start == "" || end == "" {
		return DayHours{}
	}
	startMin, err := ParseClock(start)
	if err != nil {
		return DayHours{}
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return DayHours{}
	}
	return DayHours{Enabled: true, StartMin: startMin, EndMin: endMin}
}

func IsBusinessOpen(rows []models.BusinessHours, weekday time.Weekday) bool {
	return BusinessDay(rows, weekday).Enabled
}

// ServiceAvailableOn checks the service's own weekday flags. A business
// day that is closed still wins over an enabled flag; callers check the
// business window first.
func ServiceAvailableOn(svc *models.Service, weekday time.Weekday) bool {
	return svc.AvailableDays.Contains(weekday)
}
