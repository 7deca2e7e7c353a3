package arbitrage

import (
	"errors"
	"fmt"
	"time"
)

// RiskLevel grades how likely an opportunity is to be real and fillable.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// TimeSensitivity grades how quickly an opportunity must be acted on.
type TimeSensitivity string

const (
	SensitivityUrgent   TimeSensitivity = "urgent"
	SensitivityModerate TimeSensitivity = "moderate"
	SensitivityStable   TimeSensitivity = "stable"
)

// ErrInvalidBankroll is returned when stakes are requested for a
// non-positive bankroll.
var ErrInvalidBankroll = errors.New("bankroll must be positive")

// Opportunity is the immutable result of a successful scan of one game.
type Opportunity struct {
	ID           string `json:"id"`
	GameID       string `json:"game_id"`
	Sport        string `json:"sport"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
	CommenceTime string `json:"commence_time"`

	BestHomePrice     float64 `json:"best_home_price"`
	BestHomeBookmaker string  `json:"best_home_bookmaker"`
	BestAwayPrice     float64 `json:"best_away_price"`
	BestAwayBookmaker string  `json:"best_away_bookmaker"`

	// Implied probabilities of the best prices, kept so stake math does not
	// depend on which convention the prices were quoted in.
	HomeImpliedProb float64 `json:"home_implied_prob"`
	AwayImpliedProb float64 `json:"away_implied_prob"`

	// ProfitFraction is the guaranteed profit as a fraction of total stake.
	ProfitFraction float64 `json:"profit_fraction"`

	// Stake fractions sum to 1.0 and equalize the payout on both sides.
	StakeHomeFraction float64 `json:"stake_home_fraction"`
	StakeAwayFraction float64 `json:"stake_away_fraction"`

	RiskLevel       RiskLevel       `json:"risk_level"`
	TimeSensitivity TimeSensitivity `json:"time_sensitivity"`
	DetectedAt      time.Time       `json:"detected_at"`
}

// String returns a human-readable representation of the opportunity.
func (o *Opportunity) String() string {
	return fmt.Sprintf(
		"Opportunity[%s] %s vs %s home=%.2f@%s away=%.2f@%s profit=%.2f%% risk=%s",
		shortID(o.ID),
		o.HomeTeam,
		o.AwayTeam,
		o.BestHomePrice,
		o.BestHomeBookmaker,
		o.BestAwayPrice,
		o.BestAwayBookmaker,
		o.ProfitFraction*100,
		o.RiskLevel,
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// StakePlan is the result of sizing an opportunity against a bankroll.
type StakePlan struct {
	StakeHome              float64 `json:"stake_home"`
	StakeAway              float64 `json:"stake_away"`
	TotalStaked            float64 `json:"total_staked"`
	ExpectedProfit         float64 `json:"expected_profit"`
	ExpectedProfitFraction float64 `json:"expected_profit_fraction"`
	PayoutIfHome           float64 `json:"payout_if_home"`
	PayoutIfAway           float64 `json:"payout_if_away"`
}

// AllocateStakes splits a bankroll across both sides of an opportunity.
// The allocation pays out the same amount whichever side wins; both payouts
// equal bankroll * (1 + profit fraction) up to rounding.
func AllocateStakes(opp *Opportunity, bankroll float64) (*StakePlan, error) {
	if bankroll <= 0 {
		return nil, fmt.Errorf("%w: got %f", ErrInvalidBankroll, bankroll)
	}

	stakeHome := opp.StakeHomeFraction * bankroll
	stakeAway := opp.StakeAwayFraction * bankroll

	// Payout per unit staked is the decimal-equivalent price, 1/probability.
	payoutIfHome := stakeHome / opp.HomeImpliedProb
	payoutIfAway := stakeAway / opp.AwayImpliedProb

	return &StakePlan{
		StakeHome:              stakeHome,
		StakeAway:              stakeAway,
		TotalStaked:            stakeHome + stakeAway,
		ExpectedProfit:         payoutIfHome - bankroll,
		ExpectedProfitFraction: (payoutIfHome - bankroll) / bankroll,
		PayoutIfHome:           payoutIfHome,
		PayoutIfAway:           payoutIfAway,
	}, nil
}
