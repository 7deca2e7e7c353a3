package odds

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchesTotal tracks odds fetches by source (api, cache, mock).
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oddsarb_odds_fetches_total",
			Help: "Total number of odds fetches by source",
		},
		[]string{"source"},
	)

	// FetchErrorsTotal tracks failed provider requests.
	FetchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oddsarb_odds_fetch_errors_total",
		Help: "Total number of failed odds provider requests",
	})
)
