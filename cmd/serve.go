package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sportarb/oddsarb/internal/app"
	"github.com/sportarb/oddsarb/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the arbitrage scanner service",
	Long: `Starts the arbitrage scanner service, which will:
1. Fetch head-to-head odds for every configured sport on a fixed interval
2. Scan each game for two-way arbitrage across bookmakers
3. Persist detected opportunities and stream them to websocket subscribers
4. Serve the scan API, Prometheus metrics and health probes over HTTP

Use --sport to restrict scanning to a single sport for debugging.`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("sport", "s", "", "Scan only a single sport key (for debugging)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; real environments set variables directly
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

	application, err := app.New(cfg, logger, &app.Options{
		SingleSport: sport,
	})
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	err = application.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	return nil
}
