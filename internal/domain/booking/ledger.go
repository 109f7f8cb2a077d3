package booking

import (
	"sort"
	"time"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// ===============================
// Loyalty
// ===============================

const (
	TierNew      = "New"
	TierFrequent = "Frequent"
	TierVIP      = "VIP"
)

// LoyaltyTier is a pure function of the live reservation count and is
// recomputed on every read.
func LoyaltyTier(totalReservations int) string {
	switch {
	case totalReservations >= 10:
		return TierVIP
	case totalReservations >= 5:
		return TierFrequent
	default:
		return TierNew
	}
}

// ===============================
// Customer aggregates
// ===============================

type HistoryEntry struct {
	AppointmentID uint      `json:"appointment_id"`
	ServiceName   string    `json:"service_name"`
	Date          time.Time `json:"date"`
	StartClock    string    `json:"start_clock"`
	Status        Status    `json:"status"`
}

type CustomerSummary struct {
	TotalReservations int            `json:"total_reservations"`
	LastVisit         time.Time      `json:"last_visit"` // zero when no visits
	LoyaltyTier       string         `json:"loyalty_tier"`
	History           []HistoryEntry `json:"history"`
}

// Summarize derives the customer aggregates from the raw appointment
// set. excludeID drops the appointment currently being displayed from
// the history (0 keeps everything). Nothing here is ever persisted.
func Summarize(appointments []models.Appointment, now time.Time, excludeID uint) CustomerSummary {
	sorted := append([]models.Appointment(nil), appointments...)
	sort.SliceStable(sorted, func(a, b int) bool {
		if !sorted[a].Date.Equal(sorted[b].Date) {
			return sorted[a].Date.After(sorted[b].Date)
		}
		return sorted[a].StartClock > sorted[b].StartClock
	})

	summary := CustomerSummary{
		TotalReservations: len(sorted),
		LoyaltyTier:       LoyaltyTier(len(sorted)),
		History:           make([]HistoryEntry, 0, len(sorted)),
	}

	for i := range sorted {
		ap := &sorted[i]
		if ap.Date.After(summary.LastVisit) {
			summary.LastVisit = ap.Date
		}
		if ap.ID == excludeID && excludeID != 0 {
			continue
		}
		summary.History = append(summary.History, HistoryEntry{
			AppointmentID: ap.ID,
			ServiceName:   ap.ServiceName,
			Date:          ap.Date,
			StartClock:    ap.StartClock,
			Status:        DeriveStatus(ap, now),
		})
	}

	return summary
}
