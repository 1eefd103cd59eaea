package events

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"callbook/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.BookingDeleted("abc123")
	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestSubscriberReceivesBookingEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	defer hub.Close()

	r := gin.New()
	NewHandler(hub).RegisterRoutes(&r.RouterGroup)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens in the handler goroutine right after the
	// handshake; wait for it before broadcasting.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ConnectionCount())

	hub.BookingCreated(domain.Booking{ID: "b1", ClientName: "Sarah Johnson"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))

	assert.Equal(t, EventBookingCreated, evt.Type)
	assert.Equal(t, "b1", evt.BookingID)
	require.NotNil(t, evt.Booking)
	assert.Equal(t, "Sarah Johnson", evt.Booking.ClientName)
}

func TestConcurrentBroadcastsStaySerialized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	defer hub.Close()

	r := gin.New()
	NewHandler(hub).RegisterRoutes(&r.RouterGroup)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ConnectionCount())

	const events = 16

	var wg sync.WaitGroup
	for i := 0; i < events; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hub.BookingDeleted(fmt.Sprintf("booking-%d", i))
		}(i)
	}

	seen := make(map[string]bool)
	for i := 0; i < events; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var evt Event
		require.NoError(t, conn.ReadJSON(&evt))
		assert.Equal(t, EventBookingDeleted, evt.Type)
		seen[evt.BookingID] = true
	}
	wg.Wait()

	// Every event arrives intact exactly once; interleaved frames would
	// fail decoding above.
	assert.Len(t, seen, events)
	assert.Equal(t, 1, hub.ConnectionCount())
}
