package arbitrage

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sportarb/oddsarb/internal/odds"
	"go.uber.org/zap"
)

// Engine detects two-way arbitrage across bookmakers. It is pure computation
// over caller-supplied games; the only state it carries is configuration.
type Engine struct {
	cfg    Config
	known  map[string]struct{}
	logger *zap.Logger
	now    func() time.Time
}

// Config holds engine configuration, immutable after construction.
type Config struct {
	// MinProfitThreshold discards edges too small to act on (default 0.01).
	MinProfitThreshold float64
	// MaxProfitThreshold discards edges too large to believe: almost
	// certainly a stale or fat-fingered quote (default 0.15).
	MaxProfitThreshold float64
	// KnownBookmakers are sources considered reliable for risk grading.
	KnownBookmakers []string
	Logger          *zap.Logger
}

// DefaultKnownBookmakers is the reliable-bookmaker set used when the config
// does not provide one.
var DefaultKnownBookmakers = []string{"DraftKings", "FanDuel", "BetMGM", "Caesars", "PointsBet"}

// New creates a new arbitrage engine.
func New(cfg Config) *Engine {
	if cfg.MinProfitThreshold == 0 {
		cfg.MinProfitThreshold = 0.01
	}
	if cfg.MaxProfitThreshold == 0 {
		cfg.MaxProfitThreshold = 0.15
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	bookmakers := cfg.KnownBookmakers
	if len(bookmakers) == 0 {
		bookmakers = DefaultKnownBookmakers
	}
	known := make(map[string]struct{}, len(bookmakers))
	for _, b := range bookmakers {
		known[b] = struct{}{}
	}

	return &Engine{
		cfg:    cfg,
		known:  known,
		logger: cfg.Logger,
		now:    time.Now,
	}
}

// bestQuote tracks the highest price seen for one side. The zero value means
// no valid quote was observed; strict greater-than keeps the first-seen
// quote on ties, so iteration order decides tie-breaks.
type bestQuote struct {
	price     float64
	decimal   float64
	prob      float64
	bookmaker string
}

func (b *bestQuote) consider(q odds.Quote) {
	prob := q.ImpliedProbability()
	if prob <= 0 {
		return
	}
	decimal := 1.0 / prob
	if decimal > b.decimal {
		b.price = q.Price
		b.decimal = decimal
		b.prob = prob
		b.bookmaker = q.Bookmaker
	}
}

// Scan checks a single game for a two-way arbitrage. It returns (nil, false)
// for every no-opportunity outcome: too few bookmakers, a side without a
// valid price, combined implied probability at or above 1.0, or a profit
// outside the configured thresholds.
func (e *Engine) Scan(game *odds.Game) (*Opportunity, bool) {
	start := time.Now()
	defer func() {
		ScanDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	// A single bookmaker's two prices always sum past 1.0 by construction
	// of the vig, so two distinct sources are the floor.
	if game.BookmakerCount() < 2 {
		OpportunitiesRejectedTotal.WithLabelValues("insufficient_bookmakers").Inc()
		return nil, false
	}

	var bestHome, bestAway bestQuote
	for _, q := range game.Quotes {
		switch q.Outcome {
		case game.HomeTeam:
			bestHome.consider(q)
		case game.AwayTeam:
			bestAway.consider(q)
		}
	}

	if bestHome.prob == 0 || bestAway.prob == 0 {
		OpportunitiesRejectedTotal.WithLabelValues("missing_side").Inc()
		return nil, false
	}

	total := bestHome.prob + bestAway.prob
	if total >= 1.0 {
		OpportunitiesRejectedTotal.WithLabelValues("no_edge").Inc()
		return nil, false
	}

	profit := 1.0/total - 1.0

	if profit < e.cfg.MinProfitThreshold {
		OpportunitiesRejectedTotal.WithLabelValues("below_min_profit").Inc()
		return nil, false
	}

	if profit > e.cfg.MaxProfitThreshold {
		e.logger.Debug("profit-above-max-threshold-likely-stale-quote",
			zap.String("game-id", game.ID),
			zap.Float64("profit-fraction", profit))
		OpportunitiesRejectedTotal.WithLabelValues("above_max_profit").Inc()
		return nil, false
	}

	opp := &Opportunity{
		ID:                uuid.New().String(),
		GameID:            game.ID,
		Sport:             game.Sport,
		HomeTeam:          game.HomeTeam,
		AwayTeam:          game.AwayTeam,
		CommenceTime:      game.CommenceTime,
		BestHomePrice:     bestHome.price,
		BestHomeBookmaker: bestHome.bookmaker,
		BestAwayPrice:     bestAway.price,
		BestAwayBookmaker: bestAway.bookmaker,
		HomeImpliedProb:   bestHome.prob,
		AwayImpliedProb:   bestAway.prob,
		ProfitFraction:    profit,
		StakeHomeFraction: bestHome.prob / total,
		StakeAwayFraction: bestAway.prob / total,
		RiskLevel:         e.assessRisk(profit, bestHome, bestAway),
		TimeSensitivity:   e.assessTimeSensitivity(game.CommenceTime, profit),
		DetectedAt:        e.now(),
	}

	OpportunitiesDetectedTotal.Inc()
	ProfitFraction.Observe(profit)

	e.logger.Info("arbitrage-opportunity-detected",
		zap.String("opportunity-id", opp.ID),
		zap.String("game-id", opp.GameID),
		zap.Float64("profit-fraction", opp.ProfitFraction),
		zap.String("risk-level", string(opp.RiskLevel)))

	return opp, true
}

// ScanAll scans every game and returns the opportunities sorted by profit
// fraction descending. The sort is stable, so tied profits keep their
// original relative order.
func (e *Engine) ScanAll(games []odds.Game) []*Opportunity {
	opportunities := make([]*Opportunity, 0)

	for i := range games {
		opp, found := e.Scan(&games[i])
		if found {
			opportunities = append(opportunities, opp)
		}
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].ProfitFraction > opportunities[j].ProfitFraction
	})

	return opportunities
}

// assessRisk grades an opportunity. Outsized profit usually means a stale or
// erroneous quote; extreme-favorite prices mean thin liquidity; unknown
// bookmakers mean uncertain settlement.
func (e *Engine) assessRisk(profit float64, home, away bestQuote) RiskLevel {
	if profit > 0.05 {
		return RiskHigh
	}

	if home.decimal < 1.10 || away.decimal < 1.10 {
		return RiskMedium
	}

	_, homeKnown := e.known[home.bookmaker]
	_, awayKnown := e.known[away.bookmaker]
	if !homeKnown || !awayKnown {
		return RiskMedium
	}

	return RiskLow
}

// assessTimeSensitivity grades urgency from the edge size and the time until
// the game starts. An unparseable commence time degrades to moderate.
func (e *Engine) assessTimeSensitivity(commenceTime string, profit float64) TimeSensitivity {
	start, err := time.Parse(time.RFC3339, commenceTime)
	if err != nil {
		return SensitivityModerate
	}

	hoursUntil := start.Sub(e.now()).Hours()

	// Large edges get arbitraged away quickly.
	if profit > 0.03 {
		return SensitivityUrgent
	}

	if hoursUntil < 2 {
		return SensitivityUrgent
	}

	if hoursUntil > 48 {
		return SensitivityStable
	}

	return SensitivityModerate
}
