// Package maintenance runs periodic background tasks as Go tickers against
// the persisted record cache.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/albapepper/pokedex-data/internal/store"
)

// Store is the persisted-cache surface the tasks need.
type Store interface {
	PurgeExpired(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (store.Stats, error)
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	PurgeInterval time.Duration // Expired record_cache rows
	StatsInterval time.Duration // Row count log line
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		PurgeInterval: 30 * time.Minute,
		StatsInterval: time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, st Store, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"purge", cfg.PurgeInterval,
		"stats", cfg.StatsInterval)

	done := make(chan struct{})
	running := 0

	if cfg.PurgeInterval > 0 {
		t := time.NewTicker(cfg.PurgeInterval)
		defer t.Stop()
		running++
		go runLoop(ctx, t.C, done, func() { purge(ctx, st, logger) })
	}

	if cfg.StatsInterval > 0 {
		t := time.NewTicker(cfg.StatsInterval)
		defer t.Stop()
		running++
		go runLoop(ctx, t.C, done, func() { logStats(ctx, st, logger) })
	}

	<-ctx.Done()
	for range running {
		<-done
	}
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, done chan<- struct{}, fn func()) {
	defer func() { done <- struct{}{} }()
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

func purge(ctx context.Context, st Store, logger *slog.Logger) {
	n, err := st.PurgeExpired(ctx)
	if err != nil {
		logger.Warn("Purge: failed to delete expired records", "error", err)
		return
	}
	if n > 0 {
		logger.Info("Purge: deleted expired records", "count", n)
	}
}

func logStats(ctx context.Context, st Store, logger *slog.Logger) {
	s, err := st.Stats(ctx)
	if err != nil {
		logger.Warn("Stats: failed to count records", "error", err)
		return
	}
	logger.Info("Record cache size", "total", s.TotalRows, "active", s.ActiveRows)
}
