package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"callbook/internal/config"
	"callbook/internal/database"
	"callbook/internal/domain"
	"callbook/internal/repository"
)

var sampleClients = []domain.Client{
	{Name: "Sarah Johnson", Phone: "+1 (555) 123-4567"},
	{Name: "Michael Chen", Phone: "+1 (555) 234-5678"},
	{Name: "Emily Rodriguez", Phone: "+1 (555) 345-6789"},
	{Name: "David Thompson", Phone: "+1 (555) 456-7890"},
	{Name: "Lisa Wang", Phone: "+1 (555) 567-8901"},
	{Name: "James Wilson", Phone: "+1 (555) 678-9012"},
	{Name: "Maria Garcia", Phone: "+1 (555) 789-0123"},
	{Name: "Robert Brown", Phone: "+1 (555) 890-1234"},
	{Name: "Jennifer Lee", Phone: "+1 (555) 901-2345"},
	{Name: "Christopher Davis", Phone: "+1 (555) 012-3456"},
	{Name: "Amanda Martinez", Phone: "+1 (555) 111-2222"},
	{Name: "Daniel Anderson", Phone: "+1 (555) 222-3333"},
	{Name: "Jessica Taylor", Phone: "+1 (555) 333-4444"},
	{Name: "Matthew White", Phone: "+1 (555) 444-5555"},
	{Name: "Nicole Harris", Phone: "+1 (555) 555-6666"},
	{Name: "Andrew Clark", Phone: "+1 (555) 666-7777"},
	{Name: "Rachel Lewis", Phone: "+1 (555) 777-8888"},
	{Name: "Kevin Hall", Phone: "+1 (555) 888-9999"},
	{Name: "Stephanie Young", Phone: "+1 (555) 999-0000"},
	{Name: "Ryan King", Phone: "+1 (555) 000-1111"},
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM clients")

	ctx := context.Background()
	clientRepo := repository.NewClientRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	log.Println("creating clients...")
	clients := make([]domain.Client, 0, len(sampleClients))
	for _, c := range sampleClients {
		c.ID = uuid.NewString()
		if err := clientRepo.Create(ctx, &c); err != nil {
			log.Fatal("client insert failed:", err)
		}
		clients = append(clients, c)
	}

	log.Println("creating demo bookings...")
	day := nextWeekday(time.Now(), time.Monday)

	demos := []struct {
		client   domain.Client
		callType domain.CallType
		time     string
	}{
		{clients[0], domain.CallOnboarding, "10:30"},
		{clients[1], domain.CallFollowup, "11:10"},
		{clients[2], domain.CallOnboarding, "14:30"},
	}
	for _, d := range demos {
		if err := bookingRepo.Create(ctx, newBooking(d.client, d.callType, day, d.time)); err != nil {
			log.Fatal("booking insert failed:", err)
		}
	}

	log.Printf("seed complete: %d clients, %d bookings on %s", len(clients), len(demos), day.Format(domain.DateLayout))
}

func newBooking(c domain.Client, callType domain.CallType, day time.Time, timeStr string) *domain.Booking {
	clock, err := time.Parse(domain.TimeLayout, timeStr)
	if err != nil {
		log.Fatal("bad demo time:", err)
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())

	now := time.Now()
	b := &domain.Booking{
		ID:          uuid.NewString(),
		ClientID:    c.ID,
		ClientName:  c.Name,
		ClientPhone: c.Phone,
		CallType:    callType,
		Date:        day,
		Time:        timeStr,
		StartTime:   start,
		EndTime:     callType.EndTime(start),
		IsRecurring: callType == domain.CallFollowup,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.IsRecurring {
		b.RecurringDayOfWeek = day.Weekday()
	}
	return b
}

func nextWeekday(from time.Time, weekday time.Weekday) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
