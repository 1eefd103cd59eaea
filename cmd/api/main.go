package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"callbook/internal/config"
	"callbook/internal/database"
	"callbook/internal/middleware"
	"callbook/internal/modules/booking"
	"callbook/internal/modules/client"
	"callbook/internal/modules/events"
	"callbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	clientRepo := repository.NewClientRepository(db)

	hub := events.NewHub()
	defer hub.Close()

	bookingService := booking.NewService(bookingRepo, clientRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	clientService := client.NewService(clientRepo)
	clientHandler := client.NewHandler(clientService)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		bookingHandler.RegisterRoutes(v1)
		clientHandler.RegisterRoutes(v1)
	}
	eventsHandler.RegisterRoutes(&r.RouterGroup)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
