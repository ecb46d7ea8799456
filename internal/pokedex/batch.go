package pokedex

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// MaxBatch bounds the number of IDs accepted by PokemonBatch.
const MaxBatch = 50

// batchConcurrency caps in-flight fetches per batch. The upstream limiter
// paces them anyway; this only bounds goroutines.
const batchConcurrency = 8

// ErrBatchTooLarge is returned when a batch exceeds MaxBatch.
var ErrBatchTooLarge = errors.New("batch too large")

// ExpandedRelatives carries full species records of a species' neighbours.
type ExpandedRelatives struct {
	EvolvesFrom []*provider.Species `json:"evolves_from"`
	EvolvesTo   []*provider.Species `json:"evolves_to"`
}

// PokemonBatch fetches several Pokémon concurrently. The result has the
// order of ids; the first failure cancels the rest and is returned.
func (s *Service) PokemonBatch(ctx context.Context, ids []int) ([]*provider.Pokemon, error) {
	if len(ids) > MaxBatch {
		return nil, fmt.Errorf("%w: %d ids, max %d", ErrBatchTooLarge, len(ids), MaxBatch)
	}
	for _, id := range ids {
		if err := checkID(id); err != nil {
			return nil, err
		}
	}
	return fetchAll(ctx, ids, s.Pokemon)
}

// Relatives returns the direct evolution neighbours of a species.
func (s *Service) Relatives(ctx context.Context, speciesID int) (provider.Relatives, error) {
	sp, err := s.Species(ctx, speciesID)
	if err != nil {
		return provider.Relatives{}, err
	}
	chain, err := s.EvolutionChain(ctx, sp.EvolutionChainID)
	if err != nil {
		return provider.Relatives{}, err
	}
	return provider.FindRelatives(chain, speciesID), nil
}

// RelativeSpecies is Relatives with every neighbour resolved to its species
// record. Neighbours are fetched concurrently; order is preserved.
func (s *Service) RelativeSpecies(ctx context.Context, speciesID int) (ExpandedRelatives, error) {
	rel, err := s.Relatives(ctx, speciesID)
	if err != nil {
		return ExpandedRelatives{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	var out ExpandedRelatives
	g.Go(func() error {
		var err error
		out.EvolvesFrom, err = fetchAll(gctx, resourceIDs(rel.EvolvesFrom), s.Species)
		return err
	})
	g.Go(func() error {
		var err error
		out.EvolvesTo, err = fetchAll(gctx, resourceIDs(rel.EvolvesTo), s.Species)
		return err
	})
	if err := g.Wait(); err != nil {
		return ExpandedRelatives{}, err
	}
	return out, nil
}

// fetchAll runs get for every id with bounded concurrency and returns the
// results in input order.
func fetchAll[T any](ctx context.Context, ids []int, get func(context.Context, int) (*T, error)) ([]*T, error) {
	out := make([]*T, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			v, err := get(gctx, id)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func resourceIDs(rs []provider.Resource) []int {
	ids := make([]int, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}
