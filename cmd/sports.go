package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sportarb/oddsarb/internal/odds"
	"github.com/sportarb/oddsarb/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List the sports available from the odds provider",
	RunE:  runSports,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(sportsCmd)
}

func runSports(cmd *cobra.Command, args []string) error {
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

	collector := odds.NewCollector(&odds.CollectorConfig{
		Client:  odds.NewClient(cfg.OddsAPIURL, cfg.OddsAPIKey, logger),
		TTL:     cfg.OddsCacheTTL,
		Regions: cfg.OddsRegions,
		HasKey:  cfg.OddsAPIKey != "",
		Logger:  logger,
	})

	sports, err := collector.Sports(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch sports: %w", err)
	}

	for _, s := range sports {
		status := "inactive"
		if s.Active {
			status = "active"
		}
		fmt.Printf("%-28s %-20s %s\n", s.Key, s.Title, status)
	}

	return nil
}
