package pokeapi

import (
	"context"
	"fmt"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// SpeciesIndexPath lists every species in one page. PokéAPI caps nothing
// below this limit, so no further pagination is needed.
const SpeciesIndexPath = "pokemon-species?limit=100000"

// ListSpecies fetches the {id, name} index of every species in upstream order.
func (c *Client) ListSpecies(ctx context.Context) ([]provider.Resource, error) {
	var raw apiResourceList
	if err := c.get(ctx, SpeciesIndexPath, &raw); err != nil {
		return nil, err
	}
	return NormalizeResourceList("pokemon-species", &raw)
}

// NormalizeResourceList extracts the ID of every entry of a named resource list.
func NormalizeResourceList(resource string, raw *apiResourceList) ([]provider.Resource, error) {
	if err := validatePayload(resource, raw); err != nil {
		return nil, err
	}
	out := make([]provider.Resource, 0, len(raw.Results))
	for _, r := range raw.Results {
		id, err := provider.ExtractID(r.URL)
		if err != nil {
			return nil, fmt.Errorf("%s %q reference: %w", resource, r.Name, err)
		}
		out = append(out, provider.Resource{ID: id, Name: r.Name})
	}
	return out, nil
}
