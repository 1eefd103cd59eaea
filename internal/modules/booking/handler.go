package booking

import (
	"errors"
	"net/http"

	"callbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule/:date", h.GetDaySchedule)
	rg.GET("/schedule/:date/availability", h.CheckAvailability)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings", h.CreateBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
	rg.GET("/clients/:id/bookings", h.ListClientBookings)
}

func (h *Handler) GetDaySchedule(c *gin.Context) {
	slots, err := h.service.DaySchedule(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load schedule")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":  c.Param("date"),
		"slots": slots,
	})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	date := c.Param("date")
	timeStr := c.Query("time")
	callType := c.Query("call_type")

	available, err := h.service.CheckAvailability(c.Request.Context(), date, timeStr, callType)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, time or call type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, AvailabilityResponse{
		Date:      date,
		Time:      timeStr,
		CallType:  callType,
		Available: available,
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListClientBookings(c *gin.Context) {
	bookings, err := h.service.ListClientBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list client bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
		case errors.Is(err, ErrClientNotFound):
			response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client does not exist")
		case errors.Is(err, ErrTimeConflict):
			// Conflict is a business outcome, surfaced as user feedback.
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "This time slot conflicts with an existing booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
