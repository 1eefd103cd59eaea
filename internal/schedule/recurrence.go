package schedule

import (
	"math"
	"time"

	"callbook/internal/domain"
)

// ProjectionHorizonWeeks bounds how far ahead a recurring booking is
// projected onto query dates. The source system only ever surfaces the
// immediate next occurrence, so the horizon is a single week; a recurring
// call vanishes from the grid after its second occurrence unless it is
// re-booked. Kept for compatibility rather than projecting indefinitely.
const ProjectionHorizonWeeks = 1

// weeksBetween rounds the distance from one instant to another to whole
// weeks, tolerating sub-day offsets between midnights and slot times.
func weeksBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / (7 * 24)))
}

// ProjectOnto decides whether a recurring booking occurs on the given
// calendar date and, if so, synthesizes a same-shape instance retimed to
// that date. The instance carries a composite id derived from the origin;
// it is not a storage identity and must never be passed to delete.
func ProjectOnto(b domain.Booking, date time.Time) (domain.Booking, bool) {
	if !b.IsRecurring || date.Weekday() != b.RecurringDayOfWeek {
		return domain.Booking{}, false
	}

	day := midnight(date)
	if weeksBetween(b.Date, day) != ProjectionHorizonWeeks {
		return domain.Booking{}, false
	}

	hour, min, _ := b.StartTime.Clock()
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())

	instance := b
	instance.ID = instanceID(b.ID, day)
	instance.Date = day
	instance.StartTime = start
	instance.EndTime = b.CallType.EndTime(start)
	return instance, true
}

// DisplaysRecurringOn reports whether a booking should be rendered as a
// recurring occupant of date's grid. Unlike ProjectOnto this rule is
// unbounded: it holds for every week at or beyond the horizon. It exists for
// display-only suppression of re-booking and must not be used to synthesize
// instances.
func DisplaysRecurringOn(b domain.Booking, date time.Time) bool {
	if !b.IsRecurring || b.CallType != domain.CallFollowup {
		return false
	}
	if date.Weekday() != b.StartTime.Weekday() {
		return false
	}
	return weeksBetween(b.StartTime, date) >= ProjectionHorizonWeeks
}

func instanceID(originID string, date time.Time) string {
	return originID + "-" + date.Format(domain.DateLayout)
}

// OriginBookingID resolves a synthesized recurrence-instance id back to the
// id of the stored booking it was projected from. Ids without a trailing
// date suffix pass through unchanged.
func OriginBookingID(id string) string {
	suffixLen := len(domain.DateLayout) + 1
	if len(id) <= suffixLen {
		return id
	}
	tail := id[len(id)-suffixLen:]
	if tail[0] != '-' {
		return id
	}
	if _, err := time.Parse(domain.DateLayout, tail[1:]); err != nil {
		return id
	}
	return id[:len(id)-suffixLen]
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
