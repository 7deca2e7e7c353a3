package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/sportarb/oddsarb/internal/arbitrage"
	"go.uber.org/zap"
)

func dialStream(t *testing.T, hub *StreamHub) (*websocket.Conn, func()) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleStream))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("failed to dial stream: %v", err)
	}

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func waitForSubscribers(t *testing.T, hub *StreamHub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.SubscriberCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d subscribers, got %d", want, hub.SubscriberCount())
}

func TestStreamHub_BroadcastReachesSubscriber(t *testing.T) {
	hub := NewStreamHub(zap.NewNop())
	defer hub.Close()

	conn, cleanup := dialStream(t, hub)
	defer cleanup()

	waitForSubscribers(t, hub, 1)

	opp := arbitrage.CreateTestOpportunity("game-1", "NFL")
	hub.Broadcast(opp)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read broadcast: %v", err)
	}

	var got arbitrage.Opportunity
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("failed to decode broadcast: %v", err)
	}
	if got.GameID != "game-1" {
		t.Errorf("expected game-1, got %s", got.GameID)
	}
}

func TestStreamHub_DropsClosedSubscriber(t *testing.T) {
	hub := NewStreamHub(zap.NewNop())
	defer hub.Close()

	conn, cleanup := dialStream(t, hub)
	defer cleanup()

	waitForSubscribers(t, hub, 1)

	conn.Close()
	waitForSubscribers(t, hub, 0)

	// Broadcast with no subscribers should not panic.
	hub.Broadcast(arbitrage.CreateTestOpportunity("game-2", "NBA"))
}

func TestStreamHub_Close(t *testing.T) {
	hub := NewStreamHub(zap.NewNop())

	_, cleanup := dialStream(t, hub)
	defer cleanup()

	waitForSubscribers(t, hub, 1)

	hub.Close()

	if hub.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers after close, got %d", hub.SubscriberCount())
	}
}
