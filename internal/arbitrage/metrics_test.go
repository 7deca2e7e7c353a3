package arbitrage

import "testing"

// TestMetrics_Registration tests all metrics are initialized
func TestMetrics_Registration(t *testing.T) {
	if OpportunitiesDetectedTotal == nil {
		t.Error("OpportunitiesDetectedTotal not registered")
	}

	if OpportunitiesRejectedTotal == nil {
		t.Error("OpportunitiesRejectedTotal not registered")
	}

	if ProfitFraction == nil {
		t.Error("ProfitFraction not registered")
	}

	if ScanDurationSeconds == nil {
		t.Error("ScanDurationSeconds not registered")
	}
}

// TestMetrics_Observe tests metrics accept observations without panicking
func TestMetrics_Observe(t *testing.T) {
	OpportunitiesDetectedTotal.Inc()
	OpportunitiesRejectedTotal.WithLabelValues("no_edge").Inc()
	ProfitFraction.Observe(0.02)
	ScanDurationSeconds.Observe(0.0001)
}
