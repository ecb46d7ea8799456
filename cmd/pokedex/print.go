package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/albapepper/pokedex-data/internal/provider"
	"github.com/albapepper/pokedex-data/internal/textutil"
)

// displayName turns "mr-mime" into "Mr Mime".
func displayName(s string) string {
	return textutil.Capitalize(strings.ReplaceAll(s, "-", " "))
}

func displayNames(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = displayName(n)
	}
	return strings.Join(out, ", ")
}

func printPokemon(w io.Writer, p *provider.Pokemon, u provider.UnitSystem) {
	fmt.Fprintf(w, "#%d %s\n", p.ID, displayName(p.Name))
	fmt.Fprintf(w, "  Types:     %s\n", displayNames(p.Types))
	fmt.Fprintf(w, "  Abilities: %s\n", displayNames(p.Abilities))
	fmt.Fprintf(w, "  Height:    %s\n", provider.FormatHeight(p.Height, u))
	fmt.Fprintf(w, "  Weight:    %s\n", provider.FormatWeight(p.Weight, u))
	if it, ok := p.DefaultSprites.Item(provider.SpriteDefault); ok {
		fmt.Fprintf(w, "  Sprite:    %s\n", it.URL)
	}
	fmt.Fprintf(w, "  Sprite sets: %d generations\n", len(p.SpriteOptions))
}

func printSpecies(w io.Writer, sp *provider.Species) {
	fmt.Fprintf(w, "#%d %s", sp.ID, displayName(sp.Name))
	if sp.ShortDesc != "" {
		fmt.Fprintf(w, " (%s)", sp.ShortDesc)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Generation:      %s\n", displayName(sp.GenerationName))
	fmt.Fprintf(w, "  Evolution chain: %d\n", sp.EvolutionChainID)
	for _, v := range sp.Varieties {
		marker := " "
		if sp.DefaultVariety != nil && v.ID == sp.DefaultVariety.ID {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %d %s\n", marker, v.ID, displayName(v.Name))
	}
}

func printChain(w io.Writer, c *provider.EvolutionChain) {
	fmt.Fprintf(w, "Evolution chain %d\n", c.ID)
	if c.Chain == nil {
		return
	}
	depth := map[*provider.ChainLink]int{}
	c.Chain.Walk(func(link, parent *provider.ChainLink) bool {
		d := 0
		if parent != nil {
			d = depth[parent] + 1
		}
		depth[link] = d
		fmt.Fprintf(w, "%s%s (#%d)\n", strings.Repeat("  ", d+1), displayName(link.SpeciesName), link.SpeciesID)
		return true
	})
}

func printRelatives(w io.Writer, rel provider.Relatives) {
	fmt.Fprintf(w, "Evolves from: %s\n", resourceList(rel.EvolvesFrom))
	fmt.Fprintf(w, "Evolves to:   %s\n", resourceList(rel.EvolvesTo))
}

func printResources(w io.Writer, rs []provider.Resource) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}
	for _, r := range rs {
		fmt.Fprintf(w, "%5d  %s\n", r.ID, displayName(r.Name))
	}
}

func resourceList(rs []provider.Resource) string {
	if len(rs) == 0 {
		return "-"
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = fmt.Sprintf("%s (#%d)", displayName(r.Name), r.ID)
	}
	return strings.Join(out, ", ")
}
