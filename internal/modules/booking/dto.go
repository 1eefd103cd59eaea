package booking

type CreateBookingRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	CallType string `json:"call_type" binding:"required"`
	Date     string `json:"date" binding:"required"` // 2006-01-02
	Time     string `json:"time" binding:"required"` // 15:04, grid-aligned
}

type AvailabilityResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	CallType  string `json:"call_type"`
	Available bool   `json:"available"`
}
