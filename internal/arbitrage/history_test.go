package arbitrage

import (
	"sync"
	"testing"
)

func TestHistory_EmptySummary(t *testing.T) {
	h := NewHistory()

	summary := h.Summary()
	if summary.TotalOpportunities != 0 {
		t.Errorf("expected 0 opportunities, got %d", summary.TotalOpportunities)
	}
	if summary.AvgProfit != 0 || summary.MinProfit != 0 || summary.MaxProfit != 0 {
		t.Error("expected zeroed profit stats for empty history")
	}
	if summary.BySport == nil || summary.ByRisk == nil {
		t.Error("expected non-nil maps for empty history")
	}
}

func TestHistory_Summary(t *testing.T) {
	h := NewHistory()

	a := CreateTestOpportunity("game-1", "NFL")
	a.ProfitFraction = 0.02
	a.RiskLevel = RiskLow

	b := CreateTestOpportunity("game-2", "NFL")
	b.ProfitFraction = 0.05
	b.RiskLevel = RiskHigh

	c := CreateTestOpportunity("game-3", "NBA")
	c.ProfitFraction = 0.08
	c.RiskLevel = RiskHigh

	h.Add(a)
	h.Add(b)
	h.Add(c)

	summary := h.Summary()

	if summary.TotalOpportunities != 3 {
		t.Errorf("expected 3 opportunities, got %d", summary.TotalOpportunities)
	}
	if summary.MinProfit != 0.02 {
		t.Errorf("expected min profit 0.02, got %v", summary.MinProfit)
	}
	if summary.MaxProfit != 0.08 {
		t.Errorf("expected max profit 0.08, got %v", summary.MaxProfit)
	}

	expectedAvg := (0.02 + 0.05 + 0.08) / 3
	if summary.AvgProfit != expectedAvg {
		t.Errorf("expected avg profit %v, got %v", expectedAvg, summary.AvgProfit)
	}

	if summary.BySport["NFL"] != 2 || summary.BySport["NBA"] != 1 {
		t.Errorf("unexpected by-sport counts: %v", summary.BySport)
	}
	if summary.ByRisk[RiskHigh] != 2 || summary.ByRisk[RiskLow] != 1 {
		t.Errorf("unexpected by-risk counts: %v", summary.ByRisk)
	}
}

func TestHistory_AllReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Add(CreateTestOpportunity("game-1", "NFL"))

	all := h.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(all))
	}

	all[0] = nil
	if h.All()[0] == nil {
		t.Error("mutating the returned slice must not affect the history")
	}
}

func TestHistory_ConcurrentAdd(t *testing.T) {
	h := NewHistory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Add(CreateTestOpportunity("game", "NFL"))
		}()
	}
	wg.Wait()

	if h.Len() != 50 {
		t.Errorf("expected 50 opportunities, got %d", h.Len())
	}
}
