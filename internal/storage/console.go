package storage

import (
	"context"
	"fmt"

	"github.com/sportarb/oddsarb/internal/arbitrage"
	"go.uber.org/zap"
)

// ConsoleStorage implements Storage by pretty-printing to console.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console storage.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-storage-initialized")
	return &ConsoleStorage{
		logger: logger,
	}
}

// SaveOpportunity pretty-prints an opportunity to console.
func (c *ConsoleStorage) SaveOpportunity(ctx context.Context, opp *arbitrage.Opportunity) error {
	fmt.Println("\n" + "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("🎯 ARBITRAGE OPPORTUNITY DETECTED\n")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Game:     %s vs %s (%s)\n", opp.HomeTeam, opp.AwayTeam, opp.Sport)
	fmt.Printf("Starts:   %s\n", opp.CommenceTime)
	fmt.Printf("Detected: %s\n", opp.DetectedAt.Format("2006-01-02 15:04:05"))
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("📊 BEST PRICES\n")
	fmt.Printf("  Home: %.2f @ %s\n", opp.BestHomePrice, opp.BestHomeBookmaker)
	fmt.Printf("  Away: %.2f @ %s\n", opp.BestAwayPrice, opp.BestAwayBookmaker)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("💰 PROFIT\n")
	fmt.Printf("  Guaranteed:  %.2f%% of stake\n", opp.ProfitFraction*100)
	fmt.Printf("  Split:       %.1f%% home / %.1f%% away\n", opp.StakeHomeFraction*100, opp.StakeAwayFraction*100)
	fmt.Printf("  Risk:        %s\n", opp.RiskLevel)
	fmt.Printf("  Urgency:     %s\n", opp.TimeSensitivity)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	return nil
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	c.logger.Info("closing-console-storage")
	return nil
}
