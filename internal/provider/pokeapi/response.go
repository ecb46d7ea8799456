package pokeapi

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Raw PokéAPI response shapes. Only the fields the normalizers read are
// declared; validate tags mark the ones they cannot do without.

type apiResource struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

type apiURLRef struct {
	URL string `json:"url" validate:"required"`
}

type apiResourceList struct {
	Count   int           `json:"count"`
	Results []apiResource `json:"results" validate:"dive"`
}

// --------------------------------------------------------------------------
// pokemon/{id}
// --------------------------------------------------------------------------

type apiPokemon struct {
	ID        int                 `json:"id" validate:"required"`
	Name      string              `json:"name" validate:"required"`
	Height    int                 `json:"height"`
	Weight    int                 `json:"weight"`
	Species   *apiResource        `json:"species" validate:"required"`
	Types     []apiPokemonType    `json:"types" validate:"dive"`
	Abilities []apiPokemonAbility `json:"abilities" validate:"dive"`
	Sprites   *apiSprites         `json:"sprites" validate:"required"`
}

type apiPokemonType struct {
	Slot int          `json:"slot" validate:"min=1"`
	Type *apiResource `json:"type" validate:"required"`
}

type apiPokemonAbility struct {
	Ability  *apiResource `json:"ability" validate:"required"`
	IsHidden bool         `json:"is_hidden"`
	Slot     int          `json:"slot"`
}

type apiSpriteVariants struct {
	FrontDefault     *string `json:"front_default"`
	FrontFemale      *string `json:"front_female"`
	FrontShiny       *string `json:"front_shiny"`
	FrontShinyFemale *string `json:"front_shiny_female"`
}

// apiSpriteGames keeps games in the order upstream declares them.
type apiSpriteGames = orderedmap.OrderedMap[string, apiSpriteVariants]

type apiSprites struct {
	apiSpriteVariants
	Versions *orderedmap.OrderedMap[string, *apiSpriteGames] `json:"versions" validate:"-"`
}

// --------------------------------------------------------------------------
// pokemon-species/{id}
// --------------------------------------------------------------------------

type apiSpecies struct {
	ID             int          `json:"id" validate:"required"`
	Name           string       `json:"name" validate:"required"`
	Genera         []apiGenus   `json:"genera" validate:"dive"`
	Generation     *apiResource `json:"generation" validate:"required"`
	EvolutionChain *apiURLRef   `json:"evolution_chain" validate:"required"`
	Varieties      []apiVariety `json:"varieties" validate:"dive"`
}

type apiGenus struct {
	Genus    string       `json:"genus"`
	Language *apiResource `json:"language" validate:"required"`
}

type apiVariety struct {
	IsDefault bool         `json:"is_default"`
	Pokemon   *apiResource `json:"pokemon" validate:"required"`
}

// --------------------------------------------------------------------------
// evolution-chain/{id}
// --------------------------------------------------------------------------

type apiEvolutionChain struct {
	ID    int           `json:"id" validate:"required"`
	Chain *apiChainLink `json:"chain"`
}

type apiChainLink struct {
	Species   *apiResource   `json:"species" validate:"required"`
	EvolvesTo []apiChainLink `json:"evolves_to" validate:"dive"`
}
