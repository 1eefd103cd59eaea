package schedule

import (
	"time"

	"callbook/internal/domain"
)

// WouldOverlap decides whether a prospective booking conflicts with any
// existing booking. Which days are comparable depends on the recurring
// status of both sides:
//
//   - both recurring: same recurring day of week
//   - both one-time: same calendar date
//   - one side recurring: existing's stored weekday against the new side's
//     weekday (or recurring day, for a recurring new booking)
//
// When days are comparable the half-open interval test runs on the instants
// with the existing interval rebased onto the candidate date, so only
// time-of-day distinguishes the two sides; day-matching already decided that
// the dates are equivalent. The decision is advisory: it does not reserve
// the slot, and the caller's accept-then-persist sequence is not atomic.
func WouldOverlap(start, end time.Time, date time.Time, isRecurring bool, recurringDay time.Weekday, existing []domain.Booking) bool {
	for _, ex := range existing {
		var comparable bool
		switch {
		case ex.IsRecurring && isRecurring:
			comparable = ex.RecurringDayOfWeek == recurringDay
		case !ex.IsRecurring && !isRecurring:
			comparable = sameCalendarDay(ex.Date, date)
		case ex.IsRecurring:
			comparable = ex.Date.Weekday() == date.Weekday()
		default:
			comparable = ex.Date.Weekday() == recurringDay
		}
		if !comparable {
			continue
		}
		if Overlaps(start, end, rebase(ex.StartTime, date), rebase(ex.EndTime, date)) {
			return true
		}
	}
	return false
}

// rebase keeps t's wall clock but moves it to day's calendar date.
func rebase(t time.Time, day time.Time) time.Time {
	hour, min, sec := t.Clock()
	year, month, d := day.Date()
	return time.Date(year, month, d, hour, min, sec, 0, day.Location())
}
