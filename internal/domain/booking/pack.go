package booking

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotAPack = errors.New("service is not a pack")
var ErrEmptyPack = errors.New("pack has no sub-services")

// SubSlot is one expanded step of a pack booking, ready for validation
// against its own staff member's calendar.
type SubSlot struct {
	PackID   string
	PackName string
	Index    int
	Total    int

	Name         string
	StaffID      uint
	StartMin     int
	DurationMin  int
	PartialPrice *float64
}

func (s SubSlot) EndMin() int {
	return s.StartMin + s.DurationMin
}

// ExpandPack lays a pack's sub-services onto the anchor time. The first
// step starts at the anchor. A later step with the sequential flag
// starts the instant its predecessor ends; without it the step runs on
// a parallel track from the anchor (two specialists on the same client
// at once). One uuid groups the whole booking.
func ExpandPack(d *Descriptor, anchorMin int) ([]SubSlot, error) {
	if !d.IsPack() {
		return nil, ErrNotAPack
	}
	if len(d.SubServices) == 0 {
		return nil, ErrEmptyPack
	}

	packID := uuid.NewString()
	total := len(d.SubServices)

	slots := make([]SubSlot, 0, total)
	prevEnd := anchorMin

	for i, sub := range d.SubServices {
		start := anchorMin
		if i > 0 && sub.StartsAfterPrevious {
			start = prevEnd
		}

		slot := SubSlot{
			PackID:       packID,
			PackName:     d.Service.Name,
			Index:        i,
			Total:        total,
			Name:         sub.Name,
			StaffID:      sub.StaffID,
			StartMin:     start,
			DurationMin:  sub.DurationMin,
			PartialPrice: sub.PartialPrice,
		}
		slots = append(slots, slot)
		prevEnd = slot.EndMin()
	}

	return slots, nil
}
