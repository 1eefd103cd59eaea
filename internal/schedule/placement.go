package schedule

import (
	"errors"
	"time"

	"callbook/internal/domain"
)

// ErrSlotNotFound signals an availability probe against a slot start that is
// not in the grid. This is a caller bug, not a runtime condition.
var ErrSlotNotFound = errors.New("slot start not found in grid")

// anchorTolerance is how close a booking start must be to a slot start for
// the slot to count as the booking's anchor.
const anchorTolerance = time.Minute

// BookingsForDate filters the full booking set down to the ones relevant to
// a calendar date: bookings stored for exactly that date, in input order,
// followed by recurring bookings projected onto it.
func BookingsForDate(date time.Time, all []domain.Booking) []domain.Booking {
	day := midnight(date)

	var direct, projected []domain.Booking
	for _, b := range all {
		if sameCalendarDay(b.Date, day) {
			direct = append(direct, b)
			continue
		}
		if instance, ok := ProjectOnto(b, day); ok {
			projected = append(projected, instance)
		}
	}
	return append(direct, projected...)
}

// PopulateSlots merges bookings onto a slot grid. A slot overlapped by a
// booking is marked booked; the slot whose start matches the booking start
// carries the booking itself, every other covered slot is a continuation.
// First matching booking wins; inputs are assumed pre-validated
// non-overlapping. The input slice is not mutated.
func PopulateSlots(slots []domain.TimeSlot, bookings []domain.Booking) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(slots))
	for i, slot := range slots {
		out[i] = slot
		for _, b := range bookings {
			if !Overlaps(slot.Start, slot.End, b.StartTime, b.EndTime) {
				continue
			}
			out[i].IsBooked = true
			offset := b.StartTime.Sub(slot.Start)
			if offset < 0 {
				offset = -offset
			}
			if offset < anchorTolerance {
				attached := b
				out[i].Booking = &attached
			} else {
				out[i].IsContinuation = true
			}
			break
		}
	}
	return out
}

// CanAccommodate reports whether a call of the given type starting at
// slotStart fits the grid: the run of slots it would cover exists, none of
// them is booked, and the interval passes the conflict check against the
// full booking set. slotStart must be the start of a grid slot.
func CanAccommodate(slotStart time.Time, callType domain.CallType, slots []domain.TimeSlot, existing []domain.Booking) (bool, error) {
	duration := callType.Duration()
	required := int((duration + SlotDuration - 1) / SlotDuration)

	idx := -1
	for i, s := range slots {
		if s.Start.Equal(slotStart) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, ErrSlotNotFound
	}
	if idx+required > len(slots) {
		return false, nil
	}
	for i := idx; i < idx+required; i++ {
		if slots[i].IsBooked {
			return false, nil
		}
	}

	end := slotStart.Add(duration)
	return !WouldOverlap(slotStart, end, slotStart, false, 0, existing), nil
}
