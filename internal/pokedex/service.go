// Package pokedex is the data access layer the HTTP handlers and the CLI
// talk to. Records are fetched from PokéAPI at most once per TTL: lookups go
// to the in-memory cache, then to the persisted store, then upstream.
// Concurrent requests for the same key share a single upstream call.
//
// Cache keys are the upstream request paths ("pokemon/25"), so a key read
// from a log line can be fed straight to Invalidate.
package pokedex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/provider"
	"github.com/albapepper/pokedex-data/internal/provider/pokeapi"
)

// ErrInvalidID is returned for identifiers below 1.
var ErrInvalidID = errors.New("invalid id")

// Upstream is the PokéAPI surface the service needs. Implemented by
// *pokeapi.Client.
type Upstream interface {
	GetPokemon(ctx context.Context, id int) (*provider.Pokemon, error)
	GetSpecies(ctx context.Context, id int) (*provider.Species, error)
	GetEvolutionChain(ctx context.Context, id int) (*provider.EvolutionChain, error)
	ListSpecies(ctx context.Context) ([]provider.Resource, error)
}

// Store is the optional persisted cache tier. Implemented by *store.Store.
type Store interface {
	Get(ctx context.Context, key string) (data []byte, etag string, ok bool, err error)
	Put(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) (int64, error)
}

// Payload is a serialized record ready to be written to an HTTP response.
type Payload struct {
	Data []byte
	ETag string
	Hit  bool // served from the memory or persisted cache
}

// Options configures a Service. Upstream and Cache are required.
type Options struct {
	Upstream Upstream
	Cache    *cache.Cache
	Store    Store // nil disables the persisted tier
	Metrics  *metrics.Collector
	TTL      time.Duration
	Logger   *slog.Logger
}

// Service is the data access façade.
type Service struct {
	upstream Upstream
	cache    *cache.Cache
	store    Store
	metrics  *metrics.Collector
	ttl      time.Duration
	group    singleflight.Group
	logger   *slog.Logger
}

// New creates a Service.
func New(opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = cache.TTLRecord
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		upstream: opts.Upstream,
		cache:    opts.Cache,
		store:    opts.Store,
		metrics:  opts.Metrics,
		ttl:      opts.TTL,
		logger:   opts.Logger.With("component", "pokedex"),
	}
}

// --------------------------------------------------------------------------
// Serialized accessors
// --------------------------------------------------------------------------

// PokemonPayload returns the serialized Pokémon record for id.
func (s *Service) PokemonPayload(ctx context.Context, id int) (Payload, error) {
	if err := checkID(id); err != nil {
		return Payload{}, err
	}
	return s.fetch(ctx, pokeapi.PokemonPath(id), s.ttl, func(ctx context.Context) ([]byte, error) {
		p, err := s.upstream.GetPokemon(ctx, id)
		if err != nil {
			return nil, err
		}
		return provider.Encode(p)
	})
}

// SpeciesPayload returns the serialized species record for id.
func (s *Service) SpeciesPayload(ctx context.Context, id int) (Payload, error) {
	if err := checkID(id); err != nil {
		return Payload{}, err
	}
	return s.fetch(ctx, pokeapi.SpeciesPath(id), s.ttl, func(ctx context.Context) ([]byte, error) {
		sp, err := s.upstream.GetSpecies(ctx, id)
		if err != nil {
			return nil, err
		}
		return provider.Encode(sp)
	})
}

// EvolutionChainPayload returns the serialized evolution chain for id.
func (s *Service) EvolutionChainPayload(ctx context.Context, id int) (Payload, error) {
	if err := checkID(id); err != nil {
		return Payload{}, err
	}
	return s.fetch(ctx, pokeapi.EvolutionChainPath(id), s.ttl, func(ctx context.Context) ([]byte, error) {
		c, err := s.upstream.GetEvolutionChain(ctx, id)
		if err != nil {
			return nil, err
		}
		return provider.Encode(c)
	})
}

// --------------------------------------------------------------------------
// Typed accessors
// --------------------------------------------------------------------------

// Pokemon returns the Pokémon record for id.
func (s *Service) Pokemon(ctx context.Context, id int) (*provider.Pokemon, error) {
	p, err := s.PokemonPayload(ctx, id)
	if err != nil {
		return nil, err
	}
	return provider.Decode[provider.Pokemon](p.Data)
}

// Species returns the species record for id.
func (s *Service) Species(ctx context.Context, id int) (*provider.Species, error) {
	p, err := s.SpeciesPayload(ctx, id)
	if err != nil {
		return nil, err
	}
	return provider.Decode[provider.Species](p.Data)
}

// EvolutionChain returns the evolution chain for id.
func (s *Service) EvolutionChain(ctx context.Context, id int) (*provider.EvolutionChain, error) {
	p, err := s.EvolutionChainPayload(ctx, id)
	if err != nil {
		return nil, err
	}
	return provider.Decode[provider.EvolutionChain](p.Data)
}

// --------------------------------------------------------------------------
// Invalidation
// --------------------------------------------------------------------------

// Invalidate drops key from memory and from the persisted tier. Peers learn
// about it through the store's notification.
func (s *Service) Invalidate(ctx context.Context, key string) error {
	s.cache.Delete(key)
	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	return nil
}

// InvalidateAll empties both cache tiers.
func (s *Service) InvalidateAll(ctx context.Context) error {
	s.cache.Flush()
	if s.store == nil {
		return nil
	}
	n, err := s.store.Flush(ctx)
	if err != nil {
		return fmt.Errorf("invalidate all: %w", err)
	}
	s.logger.InfoContext(ctx, "record cache flushed", "rows", n)
	return nil
}

// --------------------------------------------------------------------------
// Fetch-or-cache
// --------------------------------------------------------------------------

// fetch returns the payload for key from the first tier that has it. On a
// full miss it calls load once per key across concurrent callers, caches the
// bytes in memory and writes them through to the store.
func (s *Service) fetch(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) (Payload, error) {
	if data, etag, ok := s.cache.Get(key); ok {
		s.metrics.ObserveCacheLookup(metrics.TierMemory, metrics.ResultHit)
		return Payload{Data: data, ETag: etag, Hit: true}, nil
	}
	s.metrics.ObserveCacheLookup(metrics.TierMemory, metrics.ResultMiss)

	// The shared call outlives any single caller's cancellation; the HTTP
	// client timeout bounds it.
	ch := s.group.DoChan(key, func() (any, error) {
		return s.fill(context.WithoutCancel(ctx), key, ttl, load)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Payload{}, res.Err
		}
		return res.Val.(Payload), nil
	case <-ctx.Done():
		return Payload{}, ctx.Err()
	}
}

func (s *Service) fill(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) (Payload, error) {
	if s.store != nil {
		data, _, ok, err := s.store.Get(ctx, key)
		switch {
		case err != nil:
			s.metrics.ObserveCacheLookup(metrics.TierStore, metrics.ResultError)
			s.logger.WarnContext(ctx, "store read failed", "key", key, "error", err)
		case ok:
			s.metrics.ObserveCacheLookup(metrics.TierStore, metrics.ResultHit)
			etag := s.cache.Set(key, data, ttl)
			return Payload{Data: data, ETag: etag, Hit: true}, nil
		default:
			s.metrics.ObserveCacheLookup(metrics.TierStore, metrics.ResultMiss)
		}
	}

	start := time.Now()
	data, err := load(ctx)
	if err != nil {
		return Payload{}, err
	}
	etag := s.cache.Set(key, data, ttl)
	s.logger.DebugContext(ctx, "record fetched",
		"key", key, "bytes", len(data), "elapsed", time.Since(start))

	if s.store != nil {
		err := s.store.Put(ctx, key, data, etag, ttl)
		s.metrics.ObserveStoreWrite(err)
		if err != nil {
			s.logger.WarnContext(ctx, "store write failed", "key", key, "error", err)
		}
	}
	return Payload{Data: data, ETag: etag}, nil
}

func checkID(id int) error {
	if id < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}
