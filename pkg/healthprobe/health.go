package healthprobe

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// Probe tracks liveness and readiness state for the service.
type Probe struct {
	startTime time.Time
	ready     atomic.Bool
}

// New creates a new Probe. The service starts in the not-ready state.
func New() *Probe {
	return &Probe{
		startTime: time.Now(),
	}
}

// SetReady marks the service as ready (or not ready) to serve traffic.
func (p *Probe) SetReady(ready bool) {
	p.ready.Store(ready)
}

// Response is the JSON body returned by both probe endpoints.
type Response struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Message string `json:"message,omitempty"`
}

// Health returns an HTTP handler for liveness checks.
// Always returns 200 OK while the process is running.
func (p *Probe) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := Response{
			Status: "healthy",
			Uptime: time.Since(p.startTime).String(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// Ready returns an HTTP handler for readiness checks.
// Returns 200 OK once SetReady(true) has been called, 503 before that.
func (p *Probe) Ready() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if !p.ready.Load() {
			resp := Response{
				Status:  "not_ready",
				Message: "service is starting",
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(resp)
			return
		}

		resp := Response{
			Status: "ready",
			Uptime: time.Since(p.startTime).String(),
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
