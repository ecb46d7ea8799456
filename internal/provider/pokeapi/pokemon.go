package pokeapi

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/albapepper/pokedex-data/internal/provider"
)

// PokemonPath is the upstream path of a Pokémon; also used as its cache key.
func PokemonPath(id int) string { return fmt.Sprintf("pokemon/%d", id) }

// GetPokemon fetches one Pokémon and normalizes it.
func (c *Client) GetPokemon(ctx context.Context, id int) (*provider.Pokemon, error) {
	var raw apiPokemon
	if err := c.get(ctx, PokemonPath(id), &raw); err != nil {
		return nil, err
	}

	pk, err := NormalizePokemon(&raw)
	if err != nil {
		return nil, fmt.Errorf("normalize pokemon %d: %w", id, err)
	}

	for _, t := range pk.Types {
		if !provider.IsKnownType(t) {
			c.logger.WarnContext(ctx, "unknown type name from upstream",
				slog.Int("pokemon_id", pk.ID), slog.String("type", t))
		}
	}
	return pk, nil
}

// NormalizePokemon maps an upstream Pokémon payload onto the canonical
// record. Types are ordered by slot ascending; abilities keep upstream order.
func NormalizePokemon(raw *apiPokemon) (*provider.Pokemon, error) {
	if err := validatePayload("pokemon", raw); err != nil {
		return nil, err
	}

	speciesID, err := provider.ExtractID(raw.Species.URL)
	if err != nil {
		return nil, fmt.Errorf("species reference: %w", err)
	}

	types := slices.Clone(raw.Types)
	slices.SortStableFunc(types, func(a, b apiPokemonType) int {
		return cmp.Compare(a.Slot, b.Slot)
	})
	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, t.Type.Name)
	}

	abilities := make([]string, 0, len(raw.Abilities))
	for _, a := range raw.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}

	src := spriteSource(raw.Sprites)

	return &provider.Pokemon{
		ID:             raw.ID,
		Name:           raw.Name,
		SpeciesID:      speciesID,
		Height:         raw.Height,
		Weight:         raw.Weight,
		Types:          typeNames,
		Abilities:      abilities,
		DefaultSprites: provider.BuildGameSprites(provider.DefaultGameLabel, src.Root),
		SpriteOptions:  provider.BuildSpriteTree(src),
	}, nil
}

// spriteSource converts the raw sprite object, keeping upstream key order.
func spriteSource(raw *apiSprites) provider.SpriteSource {
	src := provider.SpriteSource{Root: variants(raw.apiSpriteVariants)}
	if raw.Versions == nil {
		return src
	}
	for gen := raw.Versions.Oldest(); gen != nil; gen = gen.Next() {
		version := provider.SpriteVersion{Key: gen.Key}
		if gen.Value != nil {
			for game := gen.Value.Oldest(); game != nil; game = game.Next() {
				version.Games = append(version.Games, provider.SpriteVersionGame{
					Key:      game.Key,
					Variants: variants(game.Value),
				})
			}
		}
		src.Versions = append(src.Versions, version)
	}
	return src
}

func variants(v apiSpriteVariants) provider.SpriteVariants {
	return provider.SpriteVariants{
		Default:       deref(v.FrontDefault),
		DefaultFemale: deref(v.FrontFemale),
		Shiny:         deref(v.FrontShiny),
		ShinyFemale:   deref(v.FrontShinyFemale),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
