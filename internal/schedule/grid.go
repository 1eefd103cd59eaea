package schedule

import (
	"time"

	"callbook/internal/domain"
)

// SlotDuration is the grid granularity.
const SlotDuration = 20 * time.Minute

// The bookable day runs 10:30-19:30 local wall clock, giving 27 slots.
const (
	gridOpenHour    = 10
	gridOpenMinute  = 30
	gridCloseHour   = 19
	gridCloseMinute = 30
)

// IsSlotStart reports whether t is the start of a grid slot on its own
// calendar day.
func IsSlotStart(t time.Time) bool {
	year, month, day := t.Date()
	loc := t.Location()

	open := time.Date(year, month, day, gridOpenHour, gridOpenMinute, 0, 0, loc)
	close := time.Date(year, month, day, gridCloseHour, gridCloseMinute, 0, 0, loc)

	if t.Before(open) || !t.Before(close) {
		return false
	}
	return t.Sub(open)%SlotDuration == 0
}

// GenerateSlots produces the fixed daily grid for date's calendar day:
// contiguous, non-overlapping 20-minute slots, all unbooked. Time-of-day
// components of date are ignored.
func GenerateSlots(date time.Time) []domain.TimeSlot {
	year, month, day := date.Date()
	loc := date.Location()

	cur := time.Date(year, month, day, gridOpenHour, gridOpenMinute, 0, 0, loc)
	end := time.Date(year, month, day, gridCloseHour, gridCloseMinute, 0, 0, loc)

	var slots []domain.TimeSlot
	for cur.Before(end) {
		slotEnd := cur.Add(SlotDuration)
		slots = append(slots, domain.TimeSlot{
			Time:  cur.Format(domain.TimeLayout),
			Start: cur,
			End:   slotEnd,
		})
		cur = slotEnd
	}
	return slots
}
