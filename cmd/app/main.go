package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/config"
	"github.com/osse101/slotforge/internal/engine"
	"github.com/osse101/slotforge/internal/pool"
	"github.com/osse101/slotforge/internal/server"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -d .,../../internal/handler -o ../../docs --parseDependency

// @title slotforge API
// @version 1.0
// @description Slot-game mathematics engine: paytables, board pools, spins and RTP analysis.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	loader := catalog.NewLoader()
	pt, err := loader.Load(cfg.PaytablePath)
	if err != nil {
		slog.Error("Failed to load paytable", "path", cfg.PaytablePath, "error", err)
		os.Exit(1)
	}

	eng, err := engine.New(pt, engine.Options{
		Seed:      cfg.RNGSeed,
		Workers:   cfg.BuildWorkers,
		ChunkSize: cfg.BuildChunkSize,
		CacheSize: cfg.EvalCacheSize,
		CacheTTL:  cfg.EvalCacheTTL,
		Tolerance: cfg.RTPTolerance,
	})
	if err != nil {
		slog.Error("Failed to create engine", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.BuildOnStart {
		buildPools(ctx, eng, cfg.PoolTargetCount)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		DefaultTarget:  cfg.PoolTargetCount,
	}, eng, loader)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	if err := eng.Shutdown(shutdownCtx); err != nil {
		slog.Error("Engine shutdown failed", "error", err)
	}
}

// buildPools fills pools before serving. A failed build leaves the service
// up but unready; /readyz reports it and pools can be built over HTTP.
func buildPools(ctx context.Context, eng *engine.Engine, target int) {
	res, err := eng.BuildPools(ctx, target, func(p pool.Progress) {
		slog.Debug("Pool build progress",
			"outcome", p.OutcomeID,
			"generated", p.Generated,
			"target", p.Target,
			"attempts", p.Attempts)
	})
	if err != nil {
		slog.Error("Initial pool build failed", "error", err)
		return
	}
	for _, w := range res.Warnings {
		slog.Warn("Pool shortfall",
			"outcome", w.OutcomeID,
			"severity", w.Severity,
			"generated", w.Generated,
			"target", w.Target)
	}
	slog.Info("Pools ready",
		"boards", res.Set.TotalBoards(),
		"seed", res.Seed,
		"duration", res.Duration)
}
