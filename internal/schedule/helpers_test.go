package schedule

import (
	"testing"
	"time"

	"callbook/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func makeBooking(id string, callType domain.CallType, day time.Time, hour, min int, recurring bool) domain.Booking {
	start := at(day, hour, min)
	b := domain.Booking{
		ID:          id,
		ClientID:    "client-1",
		ClientName:  "Sarah Johnson",
		ClientPhone: "+1 (555) 123-4567",
		CallType:    callType,
		Date:        day,
		Time:        start.Format(domain.TimeLayout),
		StartTime:   start,
		EndTime:     callType.EndTime(start),
		IsRecurring: recurring,
	}
	if recurring {
		b.RecurringDayOfWeek = day.Weekday()
	}
	return b
}
