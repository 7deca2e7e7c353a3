package app

import (
	"context"
	"sync"

	"github.com/sportarb/oddsarb/internal/arbitrage"
	"github.com/sportarb/oddsarb/internal/odds"
	"github.com/sportarb/oddsarb/internal/storage"
	"github.com/sportarb/oddsarb/pkg/cache"
	"github.com/sportarb/oddsarb/pkg/config"
	"github.com/sportarb/oddsarb/pkg/healthprobe"
	"github.com/sportarb/oddsarb/pkg/httpserver"
	"go.uber.org/zap"
)

// App is the main application orchestrator.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	probe      *healthprobe.Probe
	httpServer *httpserver.Server
	collector  *odds.Collector
	engine     *arbitrage.Engine
	sports     []string
	history    *arbitrage.History
	storage    storage.Storage
	streamHub  *httpserver.StreamHub
	oddsCache  cache.Cache
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// Options holds application options.
type Options struct {
	SingleSport string // For debugging: scan only this sport key
}
