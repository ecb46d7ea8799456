package pokedex

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/provider"
	"github.com/albapepper/pokedex-data/internal/provider/pokeapi"
	"github.com/albapepper/pokedex-data/internal/textutil"
)

// Search limits.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SpeciesIndex returns every species {id, name} in upstream order.
func (s *Service) SpeciesIndex(ctx context.Context) ([]provider.Resource, error) {
	p, err := s.fetch(ctx, pokeapi.SpeciesIndexPath, cache.TTLSpeciesIndex, func(ctx context.Context) ([]byte, error) {
		list, err := s.upstream.ListSpecies(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(list)
	})
	if err != nil {
		return nil, err
	}

	var list []provider.Resource
	if err := json.Unmarshal(p.Data, &list); err != nil {
		return nil, fmt.Errorf("decode species index: %w", err)
	}
	return list, nil
}

// Search returns species whose name contains the letters of query in order,
// in upstream order, at most limit of them. A blank query matches nothing.
// limit is clamped to [1, MaxSearchLimit]; zero selects DefaultSearchLimit.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]provider.Resource, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []provider.Resource{}, nil
	}
	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}

	index, err := s.SpeciesIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]provider.Resource, 0, min(limit, len(index)))
	for _, r := range index {
		if textutil.ContainsBrokenSubstring(strings.ToLower(r.Name), query) {
			out = append(out, r)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
