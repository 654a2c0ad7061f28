package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skadix/skadix/internal/api"
	"github.com/skadix/skadix/internal/catalog"
	"github.com/skadix/skadix/internal/config"
	"github.com/skadix/skadix/internal/events"
	"github.com/skadix/skadix/internal/risk"
	"github.com/skadix/skadix/internal/scoring"
	"github.com/skadix/skadix/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if lvl := logLevel(cfg.Logging.Level); lvl != slog.LevelInfo {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
		slog.SetDefault(logger)
	}

	// The scorer trusts catalog entries; refuse to start with a bad catalog.
	if err := catalog.Validate(); err != nil {
		logger.Error("invalid scenario catalog", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scenario store
	var db store.Store
	switch cfg.Storage.Backend {
	case "postgres":
		db, err = store.NewPostgresStore(ctx, cfg.Database.URL)
	default:
		db, err = store.NewFileStore(cfg.Storage.Path, logger)
	}
	if err != nil {
		logger.Error("failed to open scenario store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("scenario store ready", "backend", cfg.Storage.Backend)

	// Event bus (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event bus, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event bus")
		}
	}

	// Scorer
	b := cfg.Scoring.Baseline
	scorer := scoring.NewScorer(scoring.Weights{
		Infrastructure: b.Infrastructure,
		Energy:         b.Energy,
		Risk:           b.Risk,
		Socioeconomic:  b.Socioeconomic,
		Connectivity:   b.Connectivity,
	}, logger)

	// Mock risk simulator
	sim := risk.NewSimulator(cfg.FetchDelay(), logger)
	defer sim.Stop()

	// API server
	router := api.NewRouter(db, scorer, sim, eventsClient, cfg, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
