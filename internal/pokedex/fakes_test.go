package pokedex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUpstream serves canned records and counts calls per key.
type fakeUpstream struct {
	pokemon map[int]*provider.Pokemon
	species map[int]*provider.Species
	chains  map[int]*provider.EvolutionChain
	index   []provider.Resource

	err     error         // returned by every call when set
	release chan struct{} // when set, calls block until closed

	mu    sync.Mutex
	calls map[string]int
	total atomic.Int32
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		pokemon: map[int]*provider.Pokemon{},
		species: map[int]*provider.Species{},
		chains:  map[int]*provider.EvolutionChain{},
		calls:   map[string]int{},
	}
}

func (f *fakeUpstream) record(key string) error {
	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()
	f.total.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func (f *fakeUpstream) callsFor(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func notFound(path string) error {
	return &provider.UpstreamFetchError{Path: path, StatusCode: 404, Err: errors.New("not found")}
}

func (f *fakeUpstream) GetPokemon(_ context.Context, id int) (*provider.Pokemon, error) {
	key := fmt.Sprintf("pokemon/%d", id)
	if err := f.record(key); err != nil {
		return nil, err
	}
	p, ok := f.pokemon[id]
	if !ok {
		return nil, notFound(key)
	}
	return p, nil
}

func (f *fakeUpstream) GetSpecies(_ context.Context, id int) (*provider.Species, error) {
	key := fmt.Sprintf("pokemon-species/%d", id)
	if err := f.record(key); err != nil {
		return nil, err
	}
	s, ok := f.species[id]
	if !ok {
		return nil, notFound(key)
	}
	return s, nil
}

func (f *fakeUpstream) GetEvolutionChain(_ context.Context, id int) (*provider.EvolutionChain, error) {
	key := fmt.Sprintf("evolution-chain/%d", id)
	if err := f.record(key); err != nil {
		return nil, err
	}
	c, ok := f.chains[id]
	if !ok {
		return nil, notFound(key)
	}
	return c, nil
}

func (f *fakeUpstream) ListSpecies(context.Context) ([]provider.Resource, error) {
	if err := f.record("pokemon-species?limit=100000"); err != nil {
		return nil, err
	}
	return f.index, nil
}

// fakeStore is an in-memory Store.
type fakeStore struct {
	mu      sync.Mutex
	rows    map[string][]byte
	getErr  error
	putErr  error
	puts    int
	deleted []string
	flushed int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string][]byte{}}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, "", false, s.getErr
	}
	data, ok := s.rows[key]
	if !ok {
		return nil, "", false, nil
	}
	return data, cache.ComputeETag(data), true, nil
}

func (s *fakeStore) Put(_ context.Context, key string, data []byte, _ string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	s.rows[key] = data
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStore) Flush(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.rows))
	clear(s.rows)
	s.flushed++
	return n, nil
}

// Eevee family plus Pikachu.
func seededUpstream() *fakeUpstream {
	f := newFakeUpstream()

	f.pokemon[25] = &provider.Pokemon{ID: 25, Name: "pikachu", SpeciesID: 25, Height: 4, Weight: 60,
		Types: []string{"electric"}, Abilities: []string{"static", "lightning-rod"},
		DefaultSprites: provider.BuildGameSprites(provider.DefaultGameLabel, provider.SpriteVariants{Default: "https://img/25.png"})}
	f.pokemon[133] = &provider.Pokemon{ID: 133, Name: "eevee", SpeciesID: 133, Types: []string{"normal"}}
	f.pokemon[134] = &provider.Pokemon{ID: 134, Name: "vaporeon", SpeciesID: 134, Types: []string{"water"}}
	f.pokemon[135] = &provider.Pokemon{ID: 135, Name: "jolteon", SpeciesID: 135, Types: []string{"electric"}}

	def := func(id int, name string) *provider.Resource { return &provider.Resource{ID: id, Name: name} }
	f.species[25] = &provider.Species{ID: 25, Name: "pikachu", EvolutionChainID: 10, DefaultVariety: def(25, "pikachu")}
	f.species[133] = &provider.Species{ID: 133, Name: "eevee", EvolutionChainID: 67, DefaultVariety: def(133, "eevee")}
	f.species[134] = &provider.Species{ID: 134, Name: "vaporeon", EvolutionChainID: 67, DefaultVariety: def(134, "vaporeon")}
	f.species[135] = &provider.Species{ID: 135, Name: "jolteon", EvolutionChainID: 67, DefaultVariety: def(135, "jolteon")}

	f.chains[10] = &provider.EvolutionChain{ID: 10, Chain: &provider.ChainLink{
		SpeciesID: 172, SpeciesName: "pichu", EvolvesTo: []provider.ChainLink{
			{SpeciesID: 25, SpeciesName: "pikachu", EvolvesTo: []provider.ChainLink{
				{SpeciesID: 26, SpeciesName: "raichu", EvolvesTo: []provider.ChainLink{}},
			}},
		}}}
	f.chains[67] = &provider.EvolutionChain{ID: 67, Chain: &provider.ChainLink{
		SpeciesID: 133, SpeciesName: "eevee", EvolvesTo: []provider.ChainLink{
			{SpeciesID: 134, SpeciesName: "vaporeon", EvolvesTo: []provider.ChainLink{}},
			{SpeciesID: 135, SpeciesName: "jolteon", EvolvesTo: []provider.ChainLink{}},
		}}}

	f.index = []provider.Resource{
		{ID: 1, Name: "bulbasaur"}, {ID: 25, Name: "pikachu"}, {ID: 26, Name: "raichu"},
		{ID: 133, Name: "eevee"}, {ID: 172, Name: "pichu"}, {ID: 669, Name: "flabébé"},
	}
	return f
}

func newTestService(t *testing.T, up Upstream, st Store) *Service {
	t.Helper()
	c := cache.New(true)
	t.Cleanup(c.Close)
	return New(Options{Upstream: up, Cache: c, Store: st, Logger: newTestLogger()})
}
