package booking

import (
	"context"

	"callbook/internal/domain"
)

// BookingRepository is the persistence collaborator for bookings. The
// service never mutates stored bookings; the only operations are create
// and delete.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

// ClientRepository resolves client reference data at booking time.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// EventNotifier receives schedule-change notifications after a successful
// write. Implementations must not block the request path.
type EventNotifier interface {
	BookingCreated(b domain.Booking)
	BookingDeleted(id string)
}
