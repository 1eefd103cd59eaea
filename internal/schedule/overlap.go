package schedule

import "time"

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. An interval ending exactly when another begins
// does not overlap, so back-to-back bookings are legal. Inputs where
// start >= end still yield a defined result; the caller is responsible for
// constructing valid intervals from the canonical call durations.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}
