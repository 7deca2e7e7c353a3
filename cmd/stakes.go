package cmd

import (
	"fmt"
	"time"

	"github.com/sportarb/oddsarb/internal/arbitrage"
	"github.com/sportarb/oddsarb/internal/odds"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var stakesCmd = &cobra.Command{
	Use:   "stakes",
	Short: "Size a two-way arbitrage from a pair of prices",
	Long: `Checks whether backing both sides at the given prices guarantees a
profit, and if so prints the stake split for the bankroll.

Prices are decimal by default; pass --format american for moneyline prices.
Omit --format to infer the convention from each price's magnitude.`,
	RunE: runStakes,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(stakesCmd)
	stakesCmd.Flags().Float64("home-price", 0, "Best available price on the home side")
	stakesCmd.Flags().Float64("away-price", 0, "Best available price on the away side")
	stakesCmd.Flags().String("home-bookmaker", "DraftKings", "Bookmaker quoting the home price")
	stakesCmd.Flags().String("away-bookmaker", "FanDuel", "Bookmaker quoting the away price")
	stakesCmd.Flags().String("format", "decimal", "Odds format: decimal, american, or infer")
	stakesCmd.Flags().Float64P("bankroll", "b", 1000.0, "Bankroll to size stakes against")
	_ = stakesCmd.MarkFlagRequired("home-price")
	_ = stakesCmd.MarkFlagRequired("away-price")
}

func runStakes(cmd *cobra.Command, args []string) error {
	homePrice, _ := cmd.Flags().GetFloat64("home-price")
	awayPrice, _ := cmd.Flags().GetFloat64("away-price")
	homeBook, _ := cmd.Flags().GetString("home-bookmaker")
	awayBook, _ := cmd.Flags().GetString("away-bookmaker")
	formatStr, _ := cmd.Flags().GetString("format")
	bankroll, _ := cmd.Flags().GetFloat64("bankroll")

	var format odds.Format
	switch formatStr {
	case "decimal":
		format = odds.FormatDecimal
	case "american":
		format = odds.FormatAmerican
	case "infer":
		format = odds.FormatUnknown
	default:
		return fmt.Errorf("unknown odds format %q", formatStr)
	}

	game := odds.Game{
		ID:           "manual",
		Sport:        "manual",
		HomeTeam:     "Home",
		AwayTeam:     "Away",
		CommenceTime: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		Quotes: []odds.Quote{
			{Bookmaker: homeBook, Outcome: "Home", Price: homePrice, Format: format},
			{Bookmaker: awayBook, Outcome: "Away", Price: awayPrice, Format: format},
		},
	}

	engine := arbitrage.New(arbitrage.Config{Logger: zap.NewNop()})

	opp, found := engine.Scan(&game)
	if !found {
		total := odds.ImpliedProbability(homePrice, format) + odds.ImpliedProbability(awayPrice, format)
		fmt.Printf("No arbitrage: combined implied probability %.4f\n", total)
		return nil
	}

	plan, err := arbitrage.AllocateStakes(opp, bankroll)
	if err != nil {
		return fmt.Errorf("allocate stakes: %w", err)
	}

	fmt.Printf("Arbitrage: %.2f%% guaranteed profit (risk %s)\n",
		opp.ProfitFraction*100, opp.RiskLevel)
	fmt.Printf("  stake %.2f at %.2f (%s)\n", plan.StakeHome, opp.BestHomePrice, opp.BestHomeBookmaker)
	fmt.Printf("  stake %.2f at %.2f (%s)\n", plan.StakeAway, opp.BestAwayPrice, opp.BestAwayBookmaker)
	fmt.Printf("  payout either way: %.2f (profit %.2f)\n", plan.PayoutIfHome, plan.ExpectedProfit)

	return nil
}
