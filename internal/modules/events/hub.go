package events

import (
	"sync"

	"callbook/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is a schedule change pushed to connected calendars so they can
// refetch the affected day instead of polling.
type Event struct {
	Type      string          `json:"type"`
	BookingID string          `json:"booking_id,omitempty"`
	Booking   *domain.Booking `json:"booking,omitempty"`
}

const (
	EventBookingCreated = "booking_created"
	EventBookingDeleted = "booking_deleted"
)

// subscriber serializes writes to one connection; gorilla permits only a
// single concurrent writer per conn.
type subscriber struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (s *subscriber) send(evt Event) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.conn.WriteJSON(evt)
}

// Hub fans schedule events out to every connected client. Connections that
// fail a write are dropped.
type Hub struct {
	mutex       sync.RWMutex
	connections map[*websocket.Conn]*subscriber
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]*subscriber),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = &subscriber{conn: conn}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

func (h *Hub) Broadcast(evt Event) {
	h.mutex.RLock()
	subs := make([]*subscriber, 0, len(h.connections))
	for _, sub := range h.connections {
		subs = append(subs, sub)
	}
	h.mutex.RUnlock()

	for _, sub := range subs {
		if err := sub.send(evt); err != nil {
			h.Unregister(sub.conn)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// BookingCreated implements the booking module's EventNotifier.
func (h *Hub) BookingCreated(b domain.Booking) {
	h.Broadcast(Event{Type: EventBookingCreated, BookingID: b.ID, Booking: &b})
}

// BookingDeleted implements the booking module's EventNotifier.
func (h *Hub) BookingDeleted(id string) {
	h.Broadcast(Event{Type: EventBookingDeleted, BookingID: id})
}
