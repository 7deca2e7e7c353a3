package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Run starts the application and blocks until shutdown.
func (a *App) Run() error {
	a.logger.Info("application-starting",
		zap.Strings("sports", a.cfg.OddsSports),
		zap.Float64("min-profit", a.cfg.ArbMinProfit),
		zap.Float64("max-profit", a.cfg.ArbMaxProfit),
		zap.Duration("scan-interval", a.cfg.ScanInterval),
		zap.String("storage-mode", a.cfg.StorageMode),
		zap.String("log-level", a.cfg.LogLevel))

	// Start HTTP server
	a.wg.Add(1)
	go a.runHTTPServer()

	// Give HTTP server a moment to start
	time.Sleep(100 * time.Millisecond)

	// Start scan loop
	a.wg.Add(1)
	go a.runScanLoop()

	a.probe.SetReady(true)

	a.logger.Info("application-ready",
		zap.String("http-addr", ":"+a.cfg.HTTPPort))

	return a.waitForShutdown()
}

func (a *App) runHTTPServer() {
	defer a.wg.Done()
	err := a.httpServer.Start()
	if err != nil {
		a.logger.Error("http-server-error", zap.Error(err))
	}
}

// runScanLoop scans every configured sport on a fixed interval. The first
// scan happens immediately so a fresh process reports opportunities without
// waiting out a full interval.
func (a *App) runScanLoop() {
	defer a.wg.Done()

	a.scanOnce(a.ctx)

	ticker := time.NewTicker(a.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.scanOnce(a.ctx)
		}
	}
}

func (a *App) scanOnce(ctx context.Context) {
	for _, sport := range a.sports {
		games, err := a.collector.Games(ctx, sport)
		if err != nil {
			a.logger.Error("scan-fetch-failed",
				zap.String("sport", sport),
				zap.Error(err))
			continue
		}

		opportunities := a.engine.ScanAll(games)

		a.logger.Debug("scan-complete",
			zap.String("sport", sport),
			zap.Int("games", len(games)),
			zap.Int("opportunities", len(opportunities)))

		for _, opp := range opportunities {
			a.history.Add(opp)
			a.streamHub.Broadcast(opp)

			err := a.storage.SaveOpportunity(ctx, opp)
			if err != nil {
				a.logger.Error("opportunity-save-failed",
					zap.String("opportunity-id", opp.ID),
					zap.Error(err))
			}
		}
	}
}

func (a *App) waitForShutdown() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		a.logger.Info("shutdown-signal-received", zap.String("signal", sig.String()))
	case <-a.ctx.Done():
		a.logger.Info("context-cancelled")
	}

	return a.Shutdown()
}
