// Package store persists serialized records in Postgres so that warm caches
// survive restarts and are shared between instances.
//
// Rows are keyed by the upstream request path, the same key the in-memory
// cache uses. Invalidations are broadcast with pg_notify so that peers can
// drop their memory copies.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/pokedex-data/internal/db"
)

// FlushAll is the notification payload that tells peers to drop every key.
const FlushAll = "*"

// Querier is satisfied by *pgxpool.Pool and pgxmock.PgxPoolIface.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Stats summarizes the persisted tier.
type Stats struct {
	TotalRows  int64 `json:"total_rows"`
	ActiveRows int64 `json:"active_rows"`
}

// Store is the Postgres-backed record cache.
type Store struct {
	q      Querier
	logger *slog.Logger
}

// New creates a store over q.
func New(q Querier, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{q: q, logger: logger.With("component", "store")}
}

// Get returns the unexpired payload for key. A missing or expired row is
// reported as ok=false with a nil error.
func (s *Store) Get(ctx context.Context, key string) (data []byte, etag string, ok bool, err error) {
	err = s.q.QueryRow(ctx, db.StmtCacheGet, key).Scan(&data, &etag)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", false, nil
	}
	if err != nil {
		return nil, "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return data, etag, true, nil
}

// Put upserts key with a fresh expiry.
func (s *Store) Put(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	if _, err := s.q.Exec(ctx, db.StmtCachePut, key, data, etag, time.Now().Add(ttl)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Delete removes key and notifies peers.
func (s *Store) Delete(ctx context.Context, key string) error {
	tag, err := s.q.Exec(ctx, db.StmtCacheDelete, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.logger.DebugContext(ctx, "record cache row deleted",
		"key", key, "rows", tag.RowsAffected())
	return s.notify(ctx, key)
}

// Flush removes every row and notifies peers.
func (s *Store) Flush(ctx context.Context) (int64, error) {
	tag, err := s.q.Exec(ctx, db.StmtCacheFlush)
	if err != nil {
		return 0, fmt.Errorf("flush: %w", err)
	}
	if err := s.notify(ctx, FlushAll); err != nil {
		return tag.RowsAffected(), err
	}
	return tag.RowsAffected(), nil
}

// PurgeExpired deletes expired rows and returns how many were removed.
// Peers are not notified; their memory entries expire on the same clock.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.q.Exec(ctx, db.StmtCachePurge)
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Stats counts total and unexpired rows.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.q.QueryRow(ctx, db.StmtCacheStats).Scan(&st.TotalRows, &st.ActiveRows); err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

func (s *Store) notify(ctx context.Context, payload string) error {
	if _, err := s.q.Exec(ctx, db.StmtCacheNotify, payload); err != nil {
		return fmt.Errorf("notify %q: %w", payload, err)
	}
	return nil
}
