package pokeapi

import (
	"context"
	"fmt"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// EvolutionChainPath is the upstream path of an evolution chain; also used
// as its cache key.
func EvolutionChainPath(id int) string { return fmt.Sprintf("evolution-chain/%d", id) }

// GetEvolutionChain fetches one evolution chain and normalizes it.
func (c *Client) GetEvolutionChain(ctx context.Context, id int) (*provider.EvolutionChain, error) {
	var raw apiEvolutionChain
	if err := c.get(ctx, EvolutionChainPath(id), &raw); err != nil {
		return nil, err
	}
	chain, err := NormalizeEvolutionChain(&raw)
	if err != nil {
		return nil, fmt.Errorf("normalize evolution chain %d: %w", id, err)
	}
	return chain, nil
}

// NormalizeEvolutionChain builds the internal tree from the upstream one.
// It fails if any species reference is malformed or a species occurs twice.
func NormalizeEvolutionChain(raw *apiEvolutionChain) (*provider.EvolutionChain, error) {
	if err := validatePayload("evolution-chain", raw); err != nil {
		return nil, err
	}

	chain := &provider.EvolutionChain{ID: raw.ID}
	if raw.Chain != nil {
		root, err := normalizeChainLink(raw.Chain)
		if err != nil {
			return nil, err
		}
		chain.Chain = &root
	}

	if err := chain.Validate(); err != nil {
		return nil, err
	}
	return chain, nil
}

func normalizeChainLink(raw *apiChainLink) (provider.ChainLink, error) {
	id, err := provider.ExtractID(raw.Species.URL)
	if err != nil {
		return provider.ChainLink{}, fmt.Errorf("species %q reference: %w", raw.Species.Name, err)
	}

	link := provider.ChainLink{
		SpeciesID:   id,
		SpeciesName: raw.Species.Name,
		EvolvesTo:   make([]provider.ChainLink, 0, len(raw.EvolvesTo)),
	}
	for i := range raw.EvolvesTo {
		child, err := normalizeChainLink(&raw.EvolvesTo[i])
		if err != nil {
			return provider.ChainLink{}, err
		}
		link.EvolvesTo = append(link.EvolvesTo, child)
	}
	return link, nil
}
