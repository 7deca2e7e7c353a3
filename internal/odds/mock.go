package odds

import (
	"fmt"
	"time"
)

// MockProvider generates deterministic games for development and tests.
// It stands in for the real provider when no API key is configured or the
// provider is unreachable.
type MockProvider struct {
	clock func() time.Time
}

// NewMockProvider creates a mock provider using the wall clock.
func NewMockProvider() *MockProvider {
	return &MockProvider{clock: time.Now}
}

// NewMockProviderAt creates a mock provider with a fixed clock.
func NewMockProviderAt(clock func() time.Time) *MockProvider {
	return &MockProvider{clock: clock}
}

var mockTeams = map[string][]string{
	"americanfootball_nfl": {
		"Kansas City Chiefs", "Buffalo Bills", "San Francisco 49ers",
		"Dallas Cowboys", "Philadelphia Eagles", "Miami Dolphins",
	},
	"basketball_nba": {
		"Boston Celtics", "Los Angeles Lakers", "Milwaukee Bucks",
		"Denver Nuggets", "Phoenix Suns", "Golden State Warriors",
	},
	"icehockey_nhl": {
		"Colorado Avalanche", "Tampa Bay Lightning", "Boston Bruins",
		"Toronto Maple Leafs", "Edmonton Oilers", "Vegas Golden Knights",
	},
	"baseball_mlb": {
		"Los Angeles Dodgers", "New York Yankees", "Houston Astros",
		"Atlanta Braves", "San Diego Padres", "Philadelphia Phillies",
	},
}

var mockTitles = map[string]string{
	"americanfootball_nfl": "NFL",
	"basketball_nba":       "NBA",
	"icehockey_nhl":        "NHL",
	"baseball_mlb":         "MLB",
}

// Sports returns the mock sports list.
func (m *MockProvider) Sports() []Sport {
	return []Sport{
		{Key: "americanfootball_nfl", Title: "NFL", Active: true},
		{Key: "basketball_nba", Title: "NBA", Active: true},
		{Key: "icehockey_nhl", Title: "NHL", Active: true},
		{Key: "baseball_mlb", Title: "MLB", Active: true},
	}
}

// Games returns five mock games for the sport, quoted by two bookmakers
// with slightly offset decimal prices.
func (m *MockProvider) Games(sport string) []Game {
	teams := mockTeams[sport]
	if len(teams) == 0 {
		teams = []string{"Team A", "Team B", "Team C", "Team D"}
	}

	title := mockTitles[sport]
	if title == "" {
		title = sport
	}

	now := m.clock()
	games := make([]Game, 0, 5)

	for i := 0; i < 5; i++ {
		home := teams[i*2%len(teams)]
		away := teams[(i*2+1)%len(teams)]
		homePrice := 1.8 + float64(i)*0.1
		awayPrice := 2.2 - float64(i)*0.1
		commence := now.Add(time.Duration(24+i*12) * time.Hour)

		games = append(games, Game{
			ID:           fmt.Sprintf("mock_%s_%d", sport, i),
			Sport:        title,
			HomeTeam:     home,
			AwayTeam:     away,
			CommenceTime: commence.Format(time.RFC3339),
			Quotes: []Quote{
				{Bookmaker: "DraftKings", Outcome: home, Price: homePrice, Format: FormatDecimal},
				{Bookmaker: "DraftKings", Outcome: away, Price: awayPrice, Format: FormatDecimal},
				{Bookmaker: "FanDuel", Outcome: home, Price: homePrice + 0.05, Format: FormatDecimal},
				{Bookmaker: "FanDuel", Outcome: away, Price: awayPrice - 0.05, Format: FormatDecimal},
			},
		})
	}

	return games
}
