package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sportarb/oddsarb/internal/arbitrage"
	"github.com/sportarb/oddsarb/internal/odds"
	"github.com/sportarb/oddsarb/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a one-shot arbitrage scan and print the results",
	Long: `Fetches current odds, scans every game for two-way arbitrage, and
prints the detected opportunities with a risk-equalized stake split for the
given bankroll. Exits after a single pass.

Use --mock to scan deterministic mock odds regardless of ODDS_API_KEY.`,
	RunE: runScan,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("sport", "s", "", "Scan only a single sport key")
	scanCmd.Flags().Float64P("bankroll", "b", 1000.0, "Bankroll to size stakes against")
	scanCmd.Flags().Bool("mock", false, "Scan mock odds instead of the live provider")
}

func runScan(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	sport, _ := cmd.Flags().GetString("sport")
	bankroll, _ := cmd.Flags().GetFloat64("bankroll")
	useMock, _ := cmd.Flags().GetBool("mock")

	sports := cfg.OddsSports
	if sport != "" {
		sports = []string{sport}
	}

	collector := odds.NewCollector(&odds.CollectorConfig{
		Client:  odds.NewClient(cfg.OddsAPIURL, cfg.OddsAPIKey, logger),
		TTL:     cfg.OddsCacheTTL,
		Regions: cfg.OddsRegions,
		HasKey:  cfg.OddsAPIKey != "" && !useMock,
		Logger:  logger,
	})

	engine := arbitrage.New(arbitrage.Config{
		MinProfitThreshold: cfg.ArbMinProfit,
		MaxProfitThreshold: cfg.ArbMaxProfit,
		KnownBookmakers:    cfg.ArbKnownBookmakers,
		Logger:             logger,
	})

	history := arbitrage.NewHistory()
	gamesScanned := 0

	for _, s := range sports {
		games, err := collector.Games(cmd.Context(), s)
		if err != nil {
			return fmt.Errorf("fetch odds for %s: %w", s, err)
		}

		gamesScanned += len(games)
		for _, opp := range engine.ScanAll(games) {
			history.Add(opp)
			printOpportunity(opp, bankroll)
		}
	}

	printSummary(history.Summary(), gamesScanned)

	return nil
}

func printOpportunity(opp *arbitrage.Opportunity, bankroll float64) {
	fmt.Printf("\n%s\n", opp)
	fmt.Printf("  sport:    %s\n", opp.Sport)
	fmt.Printf("  starts:   %s\n", opp.CommenceTime)
	fmt.Printf("  urgency:  %s\n", opp.TimeSensitivity)

	plan, err := arbitrage.AllocateStakes(opp, bankroll)
	if err != nil {
		fmt.Printf("  stakes:   unavailable (%v)\n", err)
		return
	}

	fmt.Printf("  stakes:   %.2f on %s / %.2f on %s\n",
		plan.StakeHome, opp.HomeTeam, plan.StakeAway, opp.AwayTeam)
	fmt.Printf("  profit:   %.2f (%.2f%% of %.2f bankroll)\n",
		plan.ExpectedProfit, plan.ExpectedProfitFraction*100, bankroll)
}

func printSummary(summary *arbitrage.Summary, gamesScanned int) {
	fmt.Printf("\nScanned %d games: %d opportunities\n", gamesScanned, summary.TotalOpportunities)
	if summary.TotalOpportunities == 0 {
		return
	}

	fmt.Printf("  profit:   avg %.2f%% / min %.2f%% / max %.2f%%\n",
		summary.AvgProfit*100, summary.MinProfit*100, summary.MaxProfit*100)
	fmt.Printf("  by sport: %v\n", summary.BySport)
	fmt.Printf("  by risk:  %v\n", summary.ByRisk)
}
