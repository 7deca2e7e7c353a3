package odds

import "math"

// Format identifies the convention a price is quoted in.
type Format string

const (
	// FormatDecimal is decimal (European) odds: total payout per unit staked.
	FormatDecimal Format = "decimal"
	// FormatAmerican is American odds: profit relative to a 100-unit stake.
	FormatAmerican Format = "american"
	// FormatUnknown means the convention was not tagged by the source.
	// Probability conversion falls back to magnitude-based inference.
	FormatUnknown Format = ""
)

// Quote is one bookmaker's price for one outcome of a head-to-head market.
type Quote struct {
	Bookmaker string  `json:"bookmaker"`
	Outcome   string  `json:"outcome"`
	Price     float64 `json:"price"`
	Format    Format  `json:"format,omitempty"`
}

// Game is a single event with quotes from one or more bookmakers.
// Quotes are pre-filtered to the head-to-head market by the collector;
// their order is deterministic (provider order) and drives tie-breaks.
type Game struct {
	ID           string  `json:"id"`
	Sport        string  `json:"sport"`
	HomeTeam     string  `json:"home_team"`
	AwayTeam     string  `json:"away_team"`
	CommenceTime string  `json:"commence_time"`
	Quotes       []Quote `json:"quotes"`
}

// Sport describes one sport offered by the odds provider.
type Sport struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// BookmakerCount returns the number of distinct bookmakers quoting the game.
func (g *Game) BookmakerCount() int {
	seen := make(map[string]struct{}, len(g.Quotes))
	for _, q := range g.Quotes {
		seen[q.Bookmaker] = struct{}{}
	}
	return len(seen)
}

// InferFormat guesses the odds convention from price magnitude.
// Ambiguous by construction: a decimal price in (1.0, 2.0) is
// indistinguishable from a small positive American price, which is why
// quotes should carry an explicit Format tag whenever the source knows it.
func InferFormat(price float64) Format {
	if price >= 2.0 {
		return FormatDecimal
	}
	return FormatAmerican
}

// ImpliedProbability converts a quoted price to its implied win probability.
// A result of 0 means the price is unset or unconvertible and the quote
// should be ignored.
func ImpliedProbability(price float64, format Format) float64 {
	if price == 0 {
		return 0
	}

	switch format {
	case FormatDecimal:
		if price <= 0 {
			return 0
		}
		return 1.0 / price
	case FormatAmerican:
		if price > 0 {
			return 100.0 / (price + 100.0)
		}
		return math.Abs(price) / (math.Abs(price) + 100.0)
	default:
		return ImpliedProbability(price, InferFormat(price))
	}
}

// PriceToProbability converts an untagged price using the inference heuristic:
// price >= 2.0 is decimal, positive below 2.0 is American positive,
// negative is American negative.
func PriceToProbability(price float64) float64 {
	return ImpliedProbability(price, FormatUnknown)
}

// ImpliedProbability converts the quote's price under its tagged convention.
func (q Quote) ImpliedProbability() float64 {
	return ImpliedProbability(q.Price, q.Format)
}

// DecimalPrice returns the decimal-odds equivalent of a price, the total
// payout per unit staked. Returns 0 for unset prices.
func DecimalPrice(price float64, format Format) float64 {
	p := ImpliedProbability(price, format)
	if p <= 0 {
		return 0
	}
	return 1.0 / p
}
