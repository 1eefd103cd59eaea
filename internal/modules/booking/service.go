package booking

import (
	"context"
	"errors"
	"time"

	"callbook/internal/domain"
	"callbook/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	clients  ClientRepository
	events   EventNotifier
}

func NewService(bookings BookingRepository, clients ClientRepository, events EventNotifier) *Service {
	return &Service{
		bookings: bookings,
		clients:  clients,
		events:   events,
	}
}

// DaySchedule returns the populated slot grid for one calendar day: direct
// bookings plus recurring bookings projected onto it, merged into the fixed
// 10:30-19:30 grid.
func (s *Service) DaySchedule(ctx context.Context, dateStr string) ([]domain.TimeSlot, error) {
	day, err := parseDate(dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	all, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	relevant := schedule.BookingsForDate(day, all)
	return schedule.PopulateSlots(schedule.GenerateSlots(day), relevant), nil
}

// CheckAvailability probes whether a call of the given type could start at
// the given grid slot without conflicting with the current booking set.
func (s *Service) CheckAvailability(ctx context.Context, dateStr, timeStr, callTypeStr string) (bool, error) {
	callType := domain.CallType(callTypeStr)
	if !callType.Valid() {
		return false, ErrValidation
	}

	day, err := parseDate(dateStr)
	if err != nil {
		return false, ErrValidation
	}
	slotStart, err := combine(day, timeStr)
	if err != nil {
		return false, ErrValidation
	}

	all, err := s.bookings.GetAll(ctx)
	if err != nil {
		return false, err
	}

	slots := schedule.PopulateSlots(schedule.GenerateSlots(day), schedule.BookingsForDate(day, all))
	ok, err := schedule.CanAccommodate(slotStart, callType, slots, all)
	if errors.Is(err, schedule.ErrSlotNotFound) {
		return false, ErrValidation
	}
	return ok, err
}

// CreateBooking validates the request, runs the conflict check against a
// snapshot of all bookings and persists on acceptance. The check and the
// insert are not atomic: two concurrent callers can both pass the check and
// both write. There is no server-side uniqueness constraint guarding this;
// the system assumes a single writer timeline.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	callType := domain.CallType(req.CallType)
	if !callType.Valid() {
		return nil, ErrValidation
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	start, err := combine(day, req.Time)
	if err != nil {
		return nil, ErrValidation
	}
	// Bookings only ever begin on grid slot boundaries.
	if !schedule.IsSlotStart(start) {
		return nil, ErrValidation
	}
	end := callType.EndTime(start)

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	// Follow-up calls recur weekly on the weekday they were booked for.
	isRecurring := callType == domain.CallFollowup

	existing, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if schedule.WouldOverlap(start, end, day, isRecurring, day.Weekday(), existing) {
		return nil, ErrTimeConflict
	}

	now := time.Now()
	b := &domain.Booking{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		CallType:    callType,
		Date:        day,
		Time:        start.Format(domain.TimeLayout),
		StartTime:   start,
		EndTime:     end,
		IsRecurring: isRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if isRecurring {
		b.RecurringDayOfWeek = day.Weekday()
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.BookingCreated(*b)
	}
	return b, nil
}

// DeleteBooking removes a booking wholesale. Synthesized recurrence-instance
// ids are resolved to the stored origin id first, so deleting a projected
// occurrence deletes the series origin instead of silently missing.
func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	originID := schedule.OriginBookingID(id)

	if err := s.bookings.Delete(ctx, originID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if s.events != nil {
		s.events.BookingDeleted(originID)
	}
	return nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

// ListClientBookings returns a client's booking history, oldest first.
func (s *Service) ListClientBookings(ctx context.Context, clientID string) ([]domain.Booking, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.bookings.GetByClientID(ctx, clientID)
}

// GetBooking looks up a stored booking. Projected recurrence-instance ids
// resolve to their origin.
func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, schedule.OriginBookingID(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateLayout, s, time.Local)
}

// combine anchors an HH:MM wall-clock label on a calendar day.
func combine(day time.Time, timeStr string) (time.Time, error) {
	clock, err := time.Parse(domain.TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}
