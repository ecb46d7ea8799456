// Command api is the Pokédex Data API server.
//
// Usage:
//
//	pokedex-api
//	API_PORT=8080 DATABASE_URL=postgres://... pokedex-api

// @title Pokédex Data API
// @version 1.0.0
// @description Read-only API serving normalized Pokémon, species and evolution chain records sourced from PokéAPI. Responses are cached in memory and optionally in Postgres.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Pokédex Data
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/pokedex-data/internal/api"
	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/db"
	"github.com/albapepper/pokedex-data/internal/listener"
	"github.com/albapepper/pokedex-data/internal/logging"
	"github.com/albapepper/pokedex-data/internal/maintenance"
	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/pokedex"
	"github.com/albapepper/pokedex-data/internal/provider/pokeapi"
	"github.com/albapepper/pokedex-data/internal/store"

	_ "github.com/albapepper/pokedex-data/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logging.New("text", "info").Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var collector *metrics.Collector
	clientOpts := pokeapi.Options{
		BaseURL:           cfg.PokeAPIBaseURL,
		RequestsPerMinute: cfg.PokeAPIRequestsPerMinute,
		Timeout:           cfg.PokeAPITimeout,
		Logger:            logger,
	}
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector("pokedex")
		clientOpts.Observer = collector
	}

	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL)

	svcOpts := pokedex.Options{
		Upstream: pokeapi.NewClient(clientOpts),
		Cache:    appCache,
		Metrics:  collector,
		TTL:      cfg.CacheTTL,
		Logger:   logger,
	}
	deps := api.Deps{
		Cache:   appCache,
		Metrics: collector,
		Config:  cfg,
		Logger:  logger,
	}

	if cfg.HasDatabase() {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)

		st := store.New(pool.Pool, logger)
		svcOpts.Store = st
		deps.DB = pool

		// Invalidations issued by any instance (or the CLI) evict local entries.
		go listener.Start(ctx, cfg.DatabaseURL, appCache, logger)

		mcfg := maintenance.DefaultConfig()
		mcfg.PurgeInterval = cfg.CachePurgeInterval
		go maintenance.Start(ctx, st, mcfg, logger)
	} else {
		logger.Info("Persisted record cache disabled (no DATABASE_URL)")
	}

	deps.Service = pokedex.New(svcOpts)
	router := api.NewRouter(deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Pokédex Data API",
			"addr", srv.Addr,
			"environment", cfg.Environment,
			"metrics", cfg.MetricsEnabled,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
