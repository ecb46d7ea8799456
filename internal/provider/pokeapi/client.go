// Package pokeapi fetches and normalizes data from PokéAPI.
//
// PokéAPI is unauthenticated and asks clients to pace themselves, so every
// request goes through a token bucket limiter. Responses are validated
// against the fields the normalizers depend on before being reshaped into
// provider records.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// DefaultBaseURL is the public PokéAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Observer receives one call per upstream request. Implemented by
// metrics.Collector.
type Observer interface {
	ObserveUpstream(resource string, status int, elapsed time.Duration)
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL           string
	RequestsPerMinute int
	Timeout           time.Duration
	Logger            *slog.Logger
	Observer          Observer
}

// Client is the HTTP client for PokéAPI endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
	observer   Observer
}

// NewClient creates a PokéAPI client with rate limiting.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 300
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	rps := float64(opts.RequestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), max(1, opts.RequestsPerMinute/60)),
		logger:     opts.Logger.With("adapter", "pokeapi"),
		observer:   opts.Observer,
	}
}

// get performs a rate-limited GET of path and decodes the body into out.
// All failures are returned as *provider.UpstreamFetchError.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &provider.UpstreamFetchError{Path: path, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return &provider.UpstreamFetchError{Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(path, 0, start)
		return &provider.UpstreamFetchError{Path: path, Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.observe(path, resp.StatusCode, start)
	if err != nil {
		return &provider.UpstreamFetchError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &provider.UpstreamFetchError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Err:        errors.New(truncate(body, 200)),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &provider.UpstreamFetchError{Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.DebugContext(ctx, "pokeapi response",
		slog.String("path", path),
		slog.Int("bytes", len(body)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

func (c *Client) observe(path string, status int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(resourceOf(path), status, time.Since(start))
}

// resourceOf reduces "pokemon-species/25" to "pokemon-species" so metric
// label cardinality stays bounded.
func resourceOf(path string) string {
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		return path[:i]
	}
	return path
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
