package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Booking is the confirmation payload handed to a sink after commit.
type Booking struct {
	SalonName    string
	CustomerName string
	Phone        string
	ServiceName  string
	Date         string
	Time         string
}

func (b Booking) Message() string {
	return fmt.Sprintf(
		"Hi %s! Your %s appointment at %s is confirmed for %s at %s.",
		b.CustomerName, b.ServiceName, b.SalonName, b.Date, b.Time,
	)
}

// Sink delivers one confirmation. Delivery failures are logged and
// dropped; a booking is never rolled back over a notification.
type Sink interface {
	BookingConfirmed(ctx context.Context, b Booking) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Booking
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Booking, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for b := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := d.sink.BookingConfirmed(ctx, b); err != nil {
			log.Error().Err(err).
				Str("phone", b.Phone).
				Msg("booking notification failed")
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(b Booking) {
	select {
	case d.queue <- b:
	default:
		// queue full, drop rather than block a booking response
		log.Warn().Str("phone", b.Phone).Msg("notification queue full, dropping")
	}
}
