package arbitrage

import "sync"

// History is a caller-owned accumulator of detected opportunities. The
// engine never writes to it; whoever runs scans decides what to record.
// Appends are safe for concurrent use so scans can be parallelized.
type History struct {
	mu   sync.Mutex
	opps []*Opportunity
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add records an opportunity.
func (h *History) Add(opp *Opportunity) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opps = append(h.opps, opp)
}

// Len returns the number of recorded opportunities.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.opps)
}

// All returns a copy of the recorded opportunities in insertion order.
func (h *History) All() []*Opportunity {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Opportunity, len(h.opps))
	copy(out, h.opps)
	return out
}

// Summary holds aggregate statistics over a history.
type Summary struct {
	TotalOpportunities int               `json:"total_opportunities"`
	AvgProfit          float64           `json:"avg_profit"`
	MinProfit          float64           `json:"min_profit"`
	MaxProfit          float64           `json:"max_profit"`
	BySport            map[string]int    `json:"by_sport"`
	ByRisk             map[RiskLevel]int `json:"by_risk"`
}

// Summary computes aggregate statistics. An empty history yields a zeroed
// summary with non-nil maps; it never fails.
func (h *History) Summary() *Summary {
	h.mu.Lock()
	defer h.mu.Unlock()

	summary := &Summary{
		BySport: make(map[string]int),
		ByRisk:  make(map[RiskLevel]int),
	}

	if len(h.opps) == 0 {
		return summary
	}

	summary.TotalOpportunities = len(h.opps)
	summary.MinProfit = h.opps[0].ProfitFraction
	summary.MaxProfit = h.opps[0].ProfitFraction

	var sum float64
	for _, opp := range h.opps {
		sum += opp.ProfitFraction
		if opp.ProfitFraction < summary.MinProfit {
			summary.MinProfit = opp.ProfitFraction
		}
		if opp.ProfitFraction > summary.MaxProfit {
			summary.MaxProfit = opp.ProfitFraction
		}
		summary.BySport[opp.Sport]++
		summary.ByRisk[opp.RiskLevel]++
	}
	summary.AvgProfit = sum / float64(len(h.opps))

	return summary
}
