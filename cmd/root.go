package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "oddsarb",
	Short: "Sports betting arbitrage scanner",
	Long: `Sports betting arbitrage scanner that fetches head-to-head odds from
multiple bookmakers, converts prices to implied probabilities, and flags
games where backing both sides guarantees a profit.

Odds come from The Odds API when ODDS_API_KEY is set; without a key the
scanner runs against deterministic mock odds.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
