// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/pokedex.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Table and channel names shared by db, store and listener.
const (
	RecordCacheTable   = "record_cache"
	InvalidateChannel  = "record_cache_invalidated"
	DefaultPokeAPIBase = "https://pokeapi.co/api/v2"
)

// --------------------------------------------------------------------------
// Config is populated from environment variables.
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// Logging
	LogFormat string // text, json
	LogLevel  string

	// CORS
	CORSAllowOrigins []string

	// Upstream
	PokeAPIBaseURL           string
	PokeAPIRequestsPerMinute int
	PokeAPITimeout           time.Duration

	// Cache
	CacheEnabled       bool
	CacheTTL           time.Duration
	CachePurgeInterval time.Duration

	// Database (optional persisted cache tier)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Metrics
	MetricsEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	debug := envBool("DEBUG", false)
	defaultLevel := "info"
	if debug {
		defaultLevel = "debug"
	}

	cfg := &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       debug,

		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "text")),
		LogLevel:  envOr("LOG_LEVEL", defaultLevel),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:4321",
			"http://localhost:5173",
		}),

		PokeAPIBaseURL:           envOr("POKEAPI_BASE_URL", DefaultPokeAPIBase),
		PokeAPIRequestsPerMinute: envInt("POKEAPI_REQUESTS_PER_MINUTE", 300),
		PokeAPITimeout:           envDuration("POKEAPI_TIMEOUT", 15*time.Second),

		CacheEnabled:       envBool("CACHE_ENABLED", true),
		CacheTTL:           envDuration("CACHE_TTL", time.Hour),
		CachePurgeInterval: envDuration("CACHE_PURGE_INTERVAL", 30*time.Minute),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 5),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		MetricsEnabled: envBool("METRICS_ENABLED", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.APIPort < 1 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("API_PORT %d out of range", c.APIPort))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.PokeAPIRequestsPerMinute <= 0 {
		errs = append(errs, errors.New("POKEAPI_REQUESTS_PER_MINUTE must be positive"))
	}
	if c.PokeAPITimeout <= 0 {
		errs = append(errs, errors.New("POKEAPI_TIMEOUT must be positive"))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive"))
	}
	if c.DBPoolMinConns > c.DBPoolMaxConns {
		errs = append(errs, fmt.Errorf("DB_POOL_MIN_CONNS (%d) exceeds DB_POOL_MAX_CONNS (%d)",
			c.DBPoolMinConns, c.DBPoolMaxConns))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether the persisted cache tier is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go duration syntax ("90s", "1h") or a bare number of
// seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
