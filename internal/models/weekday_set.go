package models

import (
	"strconv"
	"strings"
	"time"
)

// WeekdaySet is a comma-separated list of weekday numbers (0 = Sunday)
// stored as a plain string column. The empty set means "every day".
type WeekdaySet string

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return WeekdaySet(strings.Join(parts, ","))
}

func (s WeekdaySet) Empty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Contains reports whether the weekday is in the set. An empty set
// allows every day.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	if s.Empty() {
		return true
	}
	for _, part := range strings.Split(string(s), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if time.Weekday(n) == d {
			return true
		}
	}
	return false
}
