package booking

import (
	"time"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"

	// Derived display status for a future, still-scheduled appointment.
	StatusConfirmed Status = "confirmed"
)

type InvalidStateError struct {
	Current Status
}

func (e *InvalidStateError) Error() string {
	return "invalid appointment state: " + string(e.Current)
}

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return &InvalidStateError{Current: current}
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return &InvalidStateError{Current: current}
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// DeriveStatus is the display status: a stored cancellation or
// completion wins; otherwise past appointments read as completed and
// future ones as confirmed. Never stored, so it cannot drift.
func DeriveStatus(ap *models.Appointment, now time.Time) Status {
	switch Status(ap.Status) {
	case StatusCancelled:
		return StatusCancelled
	case StatusCompleted:
		return StatusCompleted
	}

	startMin, err := ParseClock(ap.StartClock)
	if err != nil {
		startMin = 0
	}
	end := ap.Date.Add(time.Duration(startMin+ap.DurationMin) * time.Minute)
	if end.Before(now) {
		return StatusCompleted
	}
	return StatusConfirmed
}
