// Package provider defines the canonical records that upstream payloads are
// normalized into. These structs are the contract between the PokéAPI
// adapter and everything downstream: the façade caches them, the API serves
// them, the CLI prints them.
//
// The JSON encoding of each record is both the wire format returned by the
// API and the format stored in the response caches.
package provider

import (
	"encoding/json"
	"fmt"
)

// Resource is an {id, name} reference to another upstream object.
type Resource struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Pokemon is the canonical Pokémon record.
type Pokemon struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SpeciesID int    `json:"species_id"`
	// Height in decimetres, as reported upstream.
	Height int `json:"height"`
	// Weight in hectograms, as reported upstream.
	Weight         int           `json:"weight"`
	Types          []string      `json:"types"`
	Abilities      []string      `json:"abilities"`
	DefaultSprites SpriteGame    `json:"default_sprites"`
	SpriteOptions  SpriteOptions `json:"sprite_options"`
}

// Species is the canonical Pokémon species record.
type Species struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	ShortDesc        string     `json:"short_desc"`
	GenerationID     int        `json:"generation_id"`
	GenerationName   string     `json:"generation_name"`
	EvolutionChainID int        `json:"evolution_chain_id"`
	Varieties        []Resource `json:"varieties"`
	DefaultVariety   *Resource  `json:"default_variety"`
}

// EvolutionChain is the canonical evolution chain record. Chain is nil when
// upstream has no root link.
type EvolutionChain struct {
	ID    int        `json:"id"`
	Chain *ChainLink `json:"chain"`
}

// ChainLink is one node of an evolution tree.
type ChainLink struct {
	SpeciesID   int         `json:"species_id"`
	SpeciesName string      `json:"species_name"`
	EvolvesTo   []ChainLink `json:"evolves_to"`
}

// Resource returns the {id, name} reference for the link's species.
func (l *ChainLink) Resource() Resource {
	return Resource{ID: l.SpeciesID, Name: l.SpeciesName}
}

// Record is implemented by the three cacheable record types.
type Record interface {
	Pokemon | Species | EvolutionChain
}

// Encode serializes a record into its canonical JSON form.
func Encode[T Record](r *T) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", r, err)
	}
	return data, nil
}

// Decode rebuilds a record from its canonical JSON form. Decode(Encode(r))
// is structurally equal to r.
func Decode[T Record](data []byte) (*T, error) {
	var r T
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode %T: %w", r, err)
	}
	return &r, nil
}
