package app

import (
	"context"
	"fmt"

	"github.com/sportarb/oddsarb/internal/arbitrage"
	"github.com/sportarb/oddsarb/internal/odds"
	"github.com/sportarb/oddsarb/internal/storage"
	"github.com/sportarb/oddsarb/pkg/cache"
	"github.com/sportarb/oddsarb/pkg/config"
	"github.com/sportarb/oddsarb/pkg/healthprobe"
	"github.com/sportarb/oddsarb/pkg/httpserver"
	"go.uber.org/zap"
)

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	probe := healthprobe.New()

	oddsCache, err := setupCache(logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	collector := setupCollector(cfg, logger, oddsCache)
	engine := setupEngine(cfg, logger)
	history := arbitrage.NewHistory()

	arbStorage, err := setupStorage(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	streamHub := httpserver.NewStreamHub(logger)

	sports := cfg.OddsSports
	if opts.SingleSport != "" {
		sports = []string{opts.SingleSport}
	}

	httpServer := setupHTTPServer(cfg, logger, probe, collector, engine, history, streamHub, sports)

	return &App{
		cfg:        cfg,
		logger:     logger,
		probe:      probe,
		httpServer: httpServer,
		collector:  collector,
		engine:     engine,
		sports:     sports,
		history:    history,
		storage:    arbStorage,
		streamHub:  streamHub,
		oddsCache:  oddsCache,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

func setupCache(logger *zap.Logger) (cache.Cache, error) {
	return cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 10000, // 10x expected max items (one entry per sport/region pair)
		MaxCost:     1000,
		BufferItems: 64,
		Logger:      logger,
	})
}

func setupCollector(cfg *config.Config, logger *zap.Logger, oddsCache cache.Cache) *odds.Collector {
	client := odds.NewClient(cfg.OddsAPIURL, cfg.OddsAPIKey, logger)

	return odds.NewCollector(&odds.CollectorConfig{
		Client:  client,
		Cache:   oddsCache,
		TTL:     cfg.OddsCacheTTL,
		Regions: cfg.OddsRegions,
		HasKey:  cfg.OddsAPIKey != "",
		Logger:  logger,
	})
}

func setupEngine(cfg *config.Config, logger *zap.Logger) *arbitrage.Engine {
	return arbitrage.New(arbitrage.Config{
		MinProfitThreshold: cfg.ArbMinProfit,
		MaxProfitThreshold: cfg.ArbMaxProfit,
		KnownBookmakers:    cfg.ArbKnownBookmakers,
		Logger:             logger,
	})
}

func setupStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	if cfg.StorageMode == "postgres" {
		pgStorage, err := storage.NewPostgresStorage(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create postgres storage: %w", err)
		}
		return pgStorage, nil
	}

	return storage.NewConsoleStorage(logger), nil
}

func setupHTTPServer(
	cfg *config.Config,
	logger *zap.Logger,
	probe *healthprobe.Probe,
	collector *odds.Collector,
	engine *arbitrage.Engine,
	history *arbitrage.History,
	streamHub *httpserver.StreamHub,
	sports []string,
) *httpserver.Server {
	return httpserver.New(&httpserver.Config{
		Port:      cfg.HTTPPort,
		Logger:    logger,
		Probe:     probe,
		Collector: collector,
		Engine:    engine,
		History:   history,
		StreamHub: streamHub,
		Sports:    sports,
	})
}

// Context returns the application context, cancelled on shutdown.
func (a *App) Context() context.Context {
	return a.ctx
}
