package pokedex

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// WarmResult tracks counts and errors from a warm run.
type WarmResult struct {
	SpeciesWarmed int
	PokemonWarmed int
	ChainsWarmed  int
	Errors        []string
	Duration      time.Duration
}

// Add merges another WarmResult into this one.
func (r *WarmResult) Add(other WarmResult) {
	r.SpeciesWarmed += other.SpeciesWarmed
	r.PokemonWarmed += other.PokemonWarmed
	r.ChainsWarmed += other.ChainsWarmed
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *WarmResult) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the warm run.
func (r *WarmResult) Summary() string {
	return fmt.Sprintf(
		"species=%d pokemon=%d chains=%d errors=%d duration=%s",
		r.SpeciesWarmed, r.PokemonWarmed, r.ChainsWarmed,
		len(r.Errors), r.Duration.Round(time.Millisecond),
	)
}

// Warm prefetches species from..to (inclusive) with their default Pokémon
// and evolution chain, using a pool of workers. Failures are collected, not
// returned; a cancelled ctx stops handing out new IDs.
func (s *Service) Warm(ctx context.Context, from, to, workers int) WarmResult {
	start := time.Now()
	var result WarmResult

	if from < 1 || to < from {
		result.AddErrorf("invalid range %d..%d", from, to)
		return result
	}

	// Worker pool: one channel of species IDs, N workers
	total := to - from + 1
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	ch := make(chan int)
	go func() {
		defer close(ch)
		for id := from; id <= to; id++ {
			select {
			case ch <- id:
			case <-ctx.Done():
				return
			}
		}
	}()

	var mu sync.Mutex
	var wg sync.WaitGroup
	seenChains := make(map[int]bool)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ch {
				r, chainID := s.warmOne(ctx, id)

				mu.Lock()
				if chainID > 0 && !seenChains[chainID] {
					seenChains[chainID] = true
					r.ChainsWarmed = 1
				}
				result.Add(r)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		result.AddErrorf("warm interrupted: %v", err)
	}
	result.Duration = time.Since(start)

	s.logger.InfoContext(ctx, "Warm run complete", "summary", result.Summary())
	return result
}

// warmOne fetches one species, its default Pokémon and its chain. It returns
// the chain ID when the chain was fetched successfully.
func (s *Service) warmOne(ctx context.Context, id int) (WarmResult, int) {
	var r WarmResult

	sp, err := s.Species(ctx, id)
	if err != nil {
		r.AddErrorf("species %d: %v", id, err)
		return r, 0
	}
	r.SpeciesWarmed++

	pokemonID := id
	if sp.DefaultVariety != nil {
		pokemonID = sp.DefaultVariety.ID
	}
	if _, err := s.Pokemon(ctx, pokemonID); err != nil {
		r.AddErrorf("pokemon %d: %v", pokemonID, err)
	} else {
		r.PokemonWarmed++
	}

	if _, err := s.EvolutionChain(ctx, sp.EvolutionChainID); err != nil {
		r.AddErrorf("evolution chain %d: %v", sp.EvolutionChainID, err)
		return r, 0
	}
	return r, sp.EvolutionChainID
}
