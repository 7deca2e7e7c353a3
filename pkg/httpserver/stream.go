package httpserver

import (
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// StreamHub pushes detected opportunities to websocket subscribers. Slow or
// dead connections are dropped on write failure rather than blocking the
// scan loop.
type StreamHub struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewStreamHub creates a new stream hub.
func NewStreamHub(logger *zap.Logger) *StreamHub {
	return &StreamHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// HandleStream upgrades the request to a websocket and registers it for
// broadcasts. The read loop exists only to notice when the client goes away.
func (h *StreamHub) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket-upgrade-failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	subscribers := len(h.conns)
	h.mu.Unlock()

	StreamSubscribers.Set(float64(subscribers))
	h.logger.Info("stream-subscriber-connected", zap.Int("subscribers", subscribers))

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a JSON-encoded message to every subscriber.
func (h *StreamHub) Broadcast(v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("stream-marshal-failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("stream-write-failed-dropping-subscriber", zap.Error(err))
			h.remove(conn)
			continue
		}
		StreamMessagesSentTotal.Inc()
	}
}

// SubscriberCount returns the number of connected subscribers.
func (h *StreamHub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close disconnects every subscriber.
func (h *StreamHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
	StreamSubscribers.Set(0)
}

func (h *StreamHub) remove(conn *websocket.Conn) {
	_ = conn.Close()

	h.mu.Lock()
	delete(h.conns, conn)
	subscribers := len(h.conns)
	h.mu.Unlock()

	StreamSubscribers.Set(float64(subscribers))
}
