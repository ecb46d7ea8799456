// Package listener provides a Postgres LISTEN/NOTIFY consumer for
// cross-instance cache invalidation. It holds a dedicated pgx connection
// (not from the pool) listening on the record_cache_invalidated channel.
//
// store.Delete and store.Flush fire pg_notify with the affected key (or "*"
// for everything); every instance, the sender included, drops the matching
// in-memory entries.
package listener

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/store"
)

const (
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// Invalidator is the in-memory cache surface the listener drives.
type Invalidator interface {
	Delete(key string) bool
	Flush()
}

// Start opens a dedicated connection and listens on the invalidation
// channel. It reconnects automatically on connection loss. Blocks until ctx
// is cancelled. Intended to be called with `go`.
func Start(ctx context.Context, dbURL string, inv Invalidator, logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, inv, logger)
		if ctx.Err() != nil {
			logger.Info("Invalidation listener stopped (context cancelled)")
			return
		}

		logger.Error("Invalidation listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled.
func listenLoop(ctx context.Context, dbURL string, inv Invalidator, logger *slog.Logger) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	_, err = conn.Exec(ctx, "LISTEN "+config.InvalidateChannel)
	if err != nil {
		return fmt.Errorf("LISTEN %s: %w", config.InvalidateChannel, err)
	}
	logger.Info("Invalidation listener connected", "channel", config.InvalidateChannel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		Apply(inv, notification.Payload, logger)
	}
}

// Apply handles one notification payload: "*" flushes the cache, anything
// else is a single cache key.
func Apply(inv Invalidator, payload string, logger *slog.Logger) {
	switch payload {
	case "":
		logger.Warn("Ignoring empty invalidation payload")
	case store.FlushAll:
		inv.Flush()
		logger.Info("Record cache flushed by notification")
	default:
		removed := inv.Delete(payload)
		logger.Debug("Record cache key invalidated", "key", payload, "present", removed)
	}
}
