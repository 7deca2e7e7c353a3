package odds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sportarb/oddsarb/pkg/cache"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) *cache.RistrettoCache {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	c, err := cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
		Logger:      logger,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	t.Cleanup(c.Close)
	return c.(*cache.RistrettoCache)
}

func TestCollector_NoAPIKeyUsesMock(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	collector := NewCollector(&CollectorConfig{
		Client:  NewClient("http://localhost:0", "", logger),
		Cache:   newTestCache(t),
		TTL:     time.Minute,
		Regions: "us",
		HasKey:  false,
		Logger:  logger,
	})

	games, err := collector.Games(context.Background(), "basketball_nba")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 5 {
		t.Fatalf("expected 5 mock games, got %d", len(games))
	}
	if games[0].Sport != "NBA" {
		t.Errorf("expected NBA, got %s", games[0].Sport)
	}
}

func TestCollector_CachesProviderResponses(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleOddsPayload))
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	testCache := newTestCache(t)
	collector := NewCollector(&CollectorConfig{
		Client:  NewClient(server.URL, "test-key", logger),
		Cache:   testCache,
		TTL:     time.Minute,
		Regions: "us",
		HasKey:  true,
		Logger:  logger,
	})

	first, err := collector.Games(context.Background(), "americanfootball_nfl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	testCache.Wait()

	second, err := collector.Games(context.Background(), "americanfootball_nfl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if requests != 1 {
		t.Errorf("expected 1 provider request, got %d", requests)
	}
	if len(first) != len(second) {
		t.Errorf("expected identical results, got %d and %d games", len(first), len(second))
	}
}

func TestCollector_ProviderFailureFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	collector := NewCollector(&CollectorConfig{
		Client:  NewClient(server.URL, "test-key", logger),
		Cache:   newTestCache(t),
		TTL:     time.Minute,
		Regions: "us",
		HasKey:  true,
		Logger:  logger,
	})

	games, err := collector.Games(context.Background(), "baseball_mlb")
	if err != nil {
		t.Fatalf("expected graceful fallback, got %v", err)
	}
	if len(games) != 5 {
		t.Fatalf("expected 5 mock games, got %d", len(games))
	}
}

func TestCollector_SportsWithoutKey(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	collector := NewCollector(&CollectorConfig{
		Client:  NewClient("http://localhost:0", "", logger),
		Cache:   newTestCache(t),
		TTL:     time.Minute,
		Regions: "us",
		HasKey:  false,
		Logger:  logger,
	})

	sports, err := collector.Sports(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sports) != 4 {
		t.Fatalf("expected 4 mock sports, got %d", len(sports))
	}
}
