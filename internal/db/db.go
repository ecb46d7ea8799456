// Package db provides a pgxpool-based connection pool with prepared statement
// registration, schema bootstrap and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/pokedex-data/internal/config"
)

// Schema creates the persisted record cache. Payloads are stored as bytea so
// the bytes (and therefore the ETag) survive a round trip exactly; jsonb
// would reorder object keys.
const Schema = `
CREATE TABLE IF NOT EXISTS ` + config.RecordCacheTable + ` (
	cache_key  text        PRIMARY KEY,
	payload    bytea       NOT NULL,
	etag       text        NOT NULL,
	fetched_at timestamptz NOT NULL DEFAULT now(),
	expires_at timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS record_cache_expires_at_idx ON ` + config.RecordCacheTable + ` (expires_at);
`

// Statement names, usable as the SQL argument of Exec/QueryRow on a pooled
// connection.
const (
	StmtHealthCheck = "health_check"
	StmtCacheGet    = "record_cache_get"
	StmtCachePut    = "record_cache_put"
	StmtCacheDelete = "record_cache_delete"
	StmtCacheFlush  = "record_cache_flush"
	StmtCachePurge  = "record_cache_purge_expired"
	StmtCacheStats  = "record_cache_stats"
	StmtCacheNotify = "record_cache_notify"
)

// Statements maps each statement name to its SQL.
var Statements = map[string]string{
	StmtHealthCheck: "SELECT 1",

	StmtCacheGet: `SELECT payload, etag FROM record_cache
		WHERE cache_key = $1 AND expires_at > now()`,
	StmtCachePut: `INSERT INTO record_cache (cache_key, payload, etag, fetched_at, expires_at)
		VALUES ($1, $2, $3, now(), $4)
		ON CONFLICT (cache_key) DO UPDATE
		SET payload = EXCLUDED.payload, etag = EXCLUDED.etag,
		    fetched_at = EXCLUDED.fetched_at, expires_at = EXCLUDED.expires_at`,
	StmtCacheDelete: "DELETE FROM record_cache WHERE cache_key = $1",
	StmtCacheFlush:  "DELETE FROM record_cache",
	StmtCachePurge:  "DELETE FROM record_cache WHERE expires_at <= now()",
	StmtCacheStats: `SELECT count(*), count(*) FILTER (WHERE expires_at > now())
		FROM record_cache`,
	StmtCacheNotify: "SELECT pg_notify('" + config.InvalidateChannel + "', $1)",
}

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool. The schema is ensured on
// every new connection before statements are prepared against it.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, Schema); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, StmtHealthCheck).Scan(&n)
}

// Migrate applies the schema explicitly. Idempotent.
func (p *Pool) Migrate(ctx context.Context) error {
	return Migrate(ctx, p.Pool)
}

// Execer is the subset of pgx shared by pools, connections and mocks.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Migrate applies the schema through any Execer.
func Migrate(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// registerPreparedStatements registers every statement the store uses.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	for name, sql := range Statements {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
