package arbitrage

import "time"

// CreateTestOpportunity creates a test opportunity for other packages'
// tests. Lives here rather than in testutil to avoid import cycles.
func CreateTestOpportunity(gameID string, sport string) *Opportunity {
	homeProb := 1.0 / 2.15
	awayProb := 1.0 / 2.20
	total := homeProb + awayProb

	return &Opportunity{
		ID:                "test-opp-" + gameID,
		GameID:            gameID,
		Sport:             sport,
		HomeTeam:          "Kansas City Chiefs",
		AwayTeam:          "Buffalo Bills",
		CommenceTime:      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		BestHomePrice:     2.15,
		BestHomeBookmaker: "DraftKings",
		BestAwayPrice:     2.20,
		BestAwayBookmaker: "FanDuel",
		HomeImpliedProb:   homeProb,
		AwayImpliedProb:   awayProb,
		ProfitFraction:    1.0/total - 1.0,
		StakeHomeFraction: homeProb / total,
		StakeAwayFraction: awayProb / total,
		RiskLevel:         RiskHigh,
		TimeSensitivity:   SensitivityUrgent,
		DetectedAt:        time.Now(),
	}
}
