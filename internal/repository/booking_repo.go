package repository

import (
	"context"
	"time"

	"callbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ClientID    string    `gorm:"column:client_id;index"`
	ClientName  string    `gorm:"column:client_name"`
	ClientPhone string    `gorm:"column:client_phone"`
	CallType    string    `gorm:"column:call_type"`
	Date        time.Time `gorm:"column:date;index"`
	Time        string    `gorm:"column:time"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	IsRecurring bool      `gorm:"column:is_recurring"`
	// NULL for non-recurring rows; absent fields are never persisted.
	RecurringDayOfWeek *int      `gorm:"column:recurring_day_of_week"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	b := domain.Booking{
		ID:          m.ID,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		ClientPhone: m.ClientPhone,
		CallType:    domain.CallType(m.CallType),
		Date:        m.Date,
		Time:        m.Time,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		IsRecurring: m.IsRecurring,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.RecurringDayOfWeek != nil {
		b.RecurringDayOfWeek = time.Weekday(*m.RecurringDayOfWeek)
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	var recurringDay *int
	if b.IsRecurring {
		v := int(b.RecurringDayOfWeek)
		recurringDay = &v
	}

	return bookingModel{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		ClientName:         b.ClientName,
		ClientPhone:        b.ClientPhone,
		CallType:           string(b.CallType),
		Date:               b.Date,
		Time:               b.Time,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		IsRecurring:        b.IsRecurring,
		RecurringDayOfWeek: recurringDay,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// GetAll returns every stored booking, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	b := toDomainBooking(m)
	return &b, nil
}

// GetByClientID returns a client's booking history in chronological order.
func (r *BookingRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("start_time").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Create(&m).Error
}

// Delete removes a booking by its stored id. Synthesized recurrence-instance
// ids are not storage identities; the caller resolves them first.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
