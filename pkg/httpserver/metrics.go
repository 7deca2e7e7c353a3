package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StreamSubscribers tracks the number of connected websocket subscribers.
	StreamSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "oddsarb_stream_subscribers",
		Help: "Number of connected websocket stream subscribers",
	})

	// StreamMessagesSentTotal counts messages delivered to subscribers.
	StreamMessagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oddsarb_stream_messages_sent_total",
		Help: "Total number of websocket messages delivered to subscribers",
	})
)
