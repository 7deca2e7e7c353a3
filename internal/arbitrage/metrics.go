package arbitrage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OpportunitiesDetectedTotal tracks arbitrage opportunities detected.
	OpportunitiesDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oddsarb_opportunities_detected_total",
		Help: "Total number of arbitrage opportunities detected",
	})

	// OpportunitiesRejectedTotal tracks rejected scans by reason.
	OpportunitiesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oddsarb_opportunities_rejected_total",
			Help: "Total number of game scans rejected without an opportunity",
		},
		[]string{"reason"},
	)

	// ProfitFraction tracks accepted profit fractions.
	ProfitFraction = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "oddsarb_opportunity_profit_fraction",
		Help:    "Guaranteed profit fraction of detected opportunities",
		Buckets: []float64{0.005, 0.01, 0.02, 0.03, 0.05, 0.08, 0.10, 0.15},
	})

	// ScanDurationSeconds tracks per-game scan latency.
	ScanDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "oddsarb_scan_duration_seconds",
		Help:    "Duration of a single game scan",
		Buckets: prometheus.DefBuckets,
	})
)
