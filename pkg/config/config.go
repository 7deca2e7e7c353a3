package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// Odds provider
	OddsAPIURL   string
	OddsAPIKey   string
	OddsRegions  string
	OddsSports   []string
	OddsCacheTTL time.Duration

	// Arbitrage engine
	ArbMinProfit       float64
	ArbMaxProfit       float64
	ArbKnownBookmakers []string

	// Scan loop
	ScanInterval time.Duration

	// Storage
	StorageMode  string // "postgres" or "console"
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		// Odds provider defaults
		OddsAPIURL:   getEnvOrDefault("ODDS_API_URL", "https://api.the-odds-api.com/v4"),
		OddsAPIKey:   os.Getenv("ODDS_API_KEY"),
		OddsRegions:  getEnvOrDefault("ODDS_REGIONS", "us"),
		OddsSports:   getSliceOrDefault("ODDS_SPORTS", []string{"americanfootball_nfl", "basketball_nba", "icehockey_nhl", "baseball_mlb"}),
		OddsCacheTTL: getDurationOrDefault("ODDS_CACHE_TTL", 5*time.Minute),

		// Arbitrage defaults
		ArbMinProfit:       getFloat64OrDefault("ARB_MIN_PROFIT", 0.01),
		ArbMaxProfit:       getFloat64OrDefault("ARB_MAX_PROFIT", 0.15),
		ArbKnownBookmakers: getSliceOrDefault("ARB_KNOWN_BOOKMAKERS", nil),

		// Scan loop defaults
		ScanInterval: getDurationOrDefault("SCAN_INTERVAL", 60*time.Second),

		// Storage defaults
		StorageMode:  getEnvOrDefault("STORAGE_MODE", "console"),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "oddsarb"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "oddsarb123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "oddsarb"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	if c.OddsAPIURL == "" {
		return fmt.Errorf("ODDS_API_URL cannot be empty")
	}

	if c.ArbMinProfit < 0 {
		return fmt.Errorf("ARB_MIN_PROFIT must be non-negative, got %f", c.ArbMinProfit)
	}

	if c.ArbMaxProfit <= c.ArbMinProfit {
		return fmt.Errorf("ARB_MAX_PROFIT must be greater than ARB_MIN_PROFIT, got %f <= %f", c.ArbMaxProfit, c.ArbMinProfit)
	}

	if c.StorageMode != "console" && c.StorageMode != "postgres" {
		return fmt.Errorf("STORAGE_MODE must be 'console' or 'postgres', got %q", c.StorageMode)
	}

	if len(c.OddsSports) == 0 {
		return fmt.Errorf("ODDS_SPORTS cannot be empty")
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getFloat64OrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return floatVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

func getSliceOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return defaultValue
	}

	return out
}
