package booking

import "github.com/LunaSuiteApps/salon-scheduler/internal/models"

// Candidate is a proposed slot on one calendar day.
type Candidate struct {
	StaffID     *uint
	StartMin    int
	DurationMin int
}

// Busy is an occupied window on the same day. A nil StaffID blocks the
// whole salon (walk-in chair, shop-wide blackout).
type Busy struct {
	StaffID  *uint
	StartMin int
	EndMin   int
}

// HasConflict tests the candidate against every busy window of its day.
// Two intervals conflict iff candStart < busyEnd && candEnd > busyStart;
// touching endpoints do not conflict. Overlap is scoped per staff
// member: entries for a different staff member pass, entries with no
// staff (or a candidate with no staff) block unconditionally.
func HasConflict(cand Candidate, busy []Busy) bool {
	candEnd := cand.StartMin + cand.DurationMin
	for _, b := range busy {
		if !sameConflictScope(cand.StaffID, b.StaffID) {
			continue
		}
		if cand.StartMin < b.EndMin && candEnd > b.StartMin {
			return true
		}
	}
	return false
}

func sameConflictScope(a, b *uint) bool {
	if a == nil || b == nil {
		return true
	}
	return *a == *b
}

// BusyFromAppointments collects the occupied windows of one day,
// skipping cancelled entries.
func BusyFromAppointments(appointments []models.Appointment) []Busy {
	out := make([]Busy, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		start, err := ParseClock(ap.StartClock)
		if err != nil {
			continue
		}
		out = append(out, Busy{
			StaffID:  ap.StaffID,
			StartMin: start,
			EndMin:   start + ap.DurationMin,
		})
	}
	return out
}

func BusyFromOccupations(occupations []models.Occupation) []Busy {
	out := make([]Busy, 0, len(occupations))
	for _, oc := range occupations {
		start, err := ParseClock(oc.StartClock)
		if err != nil {
			continue
		}
		out = append(out, Busy{
			StaffID:  oc.StaffID,
			StartMin: start,
			EndMin:   start + oc.DurationMin,
		})
	}
	return out
}
