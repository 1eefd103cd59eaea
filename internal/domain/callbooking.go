package domain

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for slot start labels.
const TimeLayout = "15:04"

type CallType string

const (
	CallOnboarding CallType = "onboarding"
	CallFollowup   CallType = "followup"
)

// callDurations is the single source of truth for call lengths. Every
// component that needs a duration or an end time goes through it.
var callDurations = map[CallType]time.Duration{
	CallOnboarding: 40 * time.Minute,
	CallFollowup:   20 * time.Minute,
}

func (t CallType) Valid() bool {
	_, ok := callDurations[t]
	return ok
}

func (t CallType) Duration() time.Duration {
	return callDurations[t]
}

// EndTime derives the end instant of a call starting at start. End times are
// always derived from the call type, never stored independently.
func (t CallType) EndTime(start time.Time) time.Time {
	return start.Add(t.Duration())
}

// Booking is a scheduled call. Client name and phone are denormalized at
// booking time and are not re-synced if the client record changes later.
type Booking struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"client_id"`
	ClientName  string   `json:"client_name"`
	ClientPhone string   `json:"client_phone"`
	CallType    CallType `json:"call_type"`

	// Date is the calendar day the booking was created for, at midnight
	// local time. Time is the grid-aligned slot label (HH:MM).
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	IsRecurring bool `json:"is_recurring"`
	// RecurringDayOfWeek is meaningful only when IsRecurring is set and must
	// equal Date's weekday at creation.
	RecurringDayOfWeek time.Weekday `json:"recurring_day_of_week"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeSlot is one cell of the daily grid. Slots are derived per query and
// never persisted.
type TimeSlot struct {
	Time  string    `json:"time"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	IsBooked bool `json:"is_booked"`
	// Booking is attached only on the slot where the call starts.
	Booking *Booking `json:"booking,omitempty"`
	// IsContinuation marks slots covered by a call that started earlier.
	IsContinuation bool `json:"is_continuation,omitempty"`
}
