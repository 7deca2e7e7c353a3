package odds

import (
	"context"
	"fmt"
	"time"

	"github.com/sportarb/oddsarb/pkg/cache"
	"go.uber.org/zap"
)

// Collector supplies games to the arbitrage engine. It caches provider
// responses and degrades to mock data when no API key is configured or the
// provider fails, so a scan always has something to chew on.
type Collector struct {
	client  *Client
	mock    *MockProvider
	cache   cache.Cache
	ttl     time.Duration
	regions string
	hasKey  bool
	logger  *zap.Logger
}

// CollectorConfig holds collector configuration.
type CollectorConfig struct {
	Client  *Client
	Cache   cache.Cache
	TTL     time.Duration
	Regions string
	HasKey  bool
	Logger  *zap.Logger
}

// NewCollector creates a new collector.
func NewCollector(cfg *CollectorConfig) *Collector {
	return &Collector{
		client:  cfg.Client,
		mock:    NewMockProvider(),
		cache:   cfg.Cache,
		ttl:     cfg.TTL,
		regions: cfg.Regions,
		hasKey:  cfg.HasKey,
		logger:  cfg.Logger,
	}
}

// Games returns head-to-head games for the sport. Cached responses are
// served within the TTL; provider errors fall back to mock data rather than
// propagating, since a missing feed is not a reason to stop scanning.
func (c *Collector) Games(ctx context.Context, sport string) ([]Game, error) {
	if !c.hasKey {
		c.logger.Debug("no-api-key-using-mock-odds", zap.String("sport", sport))
		FetchesTotal.WithLabelValues("mock").Inc()
		return c.mock.Games(sport), nil
	}

	key := fmt.Sprintf("odds:%s:%s", sport, c.regions)

	if c.cache != nil {
		if cached, found := c.cache.Get(key); found {
			if games, ok := cached.([]Game); ok {
				FetchesTotal.WithLabelValues("cache").Inc()
				return games, nil
			}
		}
	}

	games, err := c.client.FetchGames(ctx, sport, c.regions)
	if err != nil {
		c.logger.Warn("odds-fetch-failed-using-mock",
			zap.String("sport", sport),
			zap.Error(err))
		FetchesTotal.WithLabelValues("mock").Inc()
		return c.mock.Games(sport), nil
	}

	if c.cache != nil {
		c.cache.Set(key, games, c.ttl)
	}

	return games, nil
}

// Sports returns the available sports from the provider, or the mock list
// when no API key is configured.
func (c *Collector) Sports(ctx context.Context) ([]Sport, error) {
	if !c.hasKey {
		return c.mock.Sports(), nil
	}

	sports, err := c.client.FetchSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch sports: %w", err)
	}

	return sports, nil
}
