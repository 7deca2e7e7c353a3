package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sportarb/oddsarb/internal/arbitrage"
	"go.uber.org/zap"
)

// PostgresStorage implements Storage using PostgreSQL.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL storage.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-storage-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// SaveOpportunity inserts an opportunity row.
func (p *PostgresStorage) SaveOpportunity(ctx context.Context, opp *arbitrage.Opportunity) error {
	query := `
		INSERT INTO arb_opportunities (
			id, game_id, sport, home_team, away_team, commence_time,
			best_home_price, best_home_bookmaker, best_away_price, best_away_bookmaker,
			profit_fraction, stake_home_fraction, stake_away_fraction,
			risk_level, time_sensitivity, detected_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
	`

	_, err := p.db.ExecContext(ctx, query,
		opp.ID,
		opp.GameID,
		opp.Sport,
		opp.HomeTeam,
		opp.AwayTeam,
		opp.CommenceTime,
		opp.BestHomePrice,
		opp.BestHomeBookmaker,
		opp.BestAwayPrice,
		opp.BestAwayBookmaker,
		opp.ProfitFraction,
		opp.StakeHomeFraction,
		opp.StakeAwayFraction,
		string(opp.RiskLevel),
		string(opp.TimeSensitivity),
		opp.DetectedAt,
	)

	if err != nil {
		return fmt.Errorf("insert opportunity: %w", err)
	}

	p.logger.Debug("opportunity-saved",
		zap.String("opportunity-id", opp.ID),
		zap.String("game-id", opp.GameID))

	return nil
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	p.logger.Info("closing-postgres-storage")
	return p.db.Close()
}
