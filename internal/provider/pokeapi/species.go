package pokeapi

import (
	"context"
	"fmt"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// genusLocale is the language whose genus becomes the short description.
const genusLocale = "en"

// SpeciesPath is the upstream path of a species; also used as its cache key.
func SpeciesPath(id int) string { return fmt.Sprintf("pokemon-species/%d", id) }

// GetSpecies fetches one species and normalizes it.
func (c *Client) GetSpecies(ctx context.Context, id int) (*provider.Species, error) {
	var raw apiSpecies
	if err := c.get(ctx, SpeciesPath(id), &raw); err != nil {
		return nil, err
	}
	sp, err := NormalizeSpecies(&raw)
	if err != nil {
		return nil, fmt.Errorf("normalize species %d: %w", id, err)
	}
	return sp, nil
}

// NormalizeSpecies maps an upstream species payload onto the canonical
// record. A missing English genus or default variety is not an error.
func NormalizeSpecies(raw *apiSpecies) (*provider.Species, error) {
	if err := validatePayload("pokemon-species", raw); err != nil {
		return nil, err
	}

	sp := &provider.Species{
		ID:             raw.ID,
		Name:           raw.Name,
		GenerationName: raw.Generation.Name,
		Varieties:      make([]provider.Resource, 0, len(raw.Varieties)),
	}

	for _, g := range raw.Genera {
		if g.Language.Name == genusLocale {
			sp.ShortDesc = g.Genus
			break
		}
	}

	var err error
	if sp.GenerationID, err = provider.ExtractID(raw.Generation.URL); err != nil {
		return nil, fmt.Errorf("generation reference: %w", err)
	}
	if sp.EvolutionChainID, err = provider.ExtractID(raw.EvolutionChain.URL); err != nil {
		return nil, fmt.Errorf("evolution chain reference: %w", err)
	}

	defaultIdx := -1
	for i, v := range raw.Varieties {
		id, err := provider.ExtractID(v.Pokemon.URL)
		if err != nil {
			return nil, fmt.Errorf("variety %q reference: %w", v.Pokemon.Name, err)
		}
		sp.Varieties = append(sp.Varieties, provider.Resource{ID: id, Name: v.Pokemon.Name})
		if v.IsDefault && defaultIdx < 0 {
			defaultIdx = i
		}
	}
	if defaultIdx >= 0 {
		def := sp.Varieties[defaultIdx]
		sp.DefaultVariety = &def
	}

	return sp, nil
}
