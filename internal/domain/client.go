package domain

// Client is immutable reference data owned by the storage layer.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
