package provider

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Item keys and their display labels, in the order they are emitted.
const (
	SpriteDefault       = "default"
	SpriteDefaultFemale = "default-female"
	SpriteShiny         = "shiny"
	SpriteShinyFemale   = "shiny-female"
)

var spriteLabels = map[string]string{
	SpriteDefault:       "Default",
	SpriteDefaultFemale: "Default (Female)",
	SpriteShiny:         "Shiny",
	SpriteShinyFemale:   "Shiny (Female)",
}

// Keys and labels of the synthetic generation/game holding the root-level
// sprites.
const (
	DefaultGenerationKey   = "default"
	DefaultGenerationLabel = "Default Generation"
	DefaultGameKey         = "default"
	DefaultGameLabel       = "Default Game"
)

// iconsGameKey is the upstream pseudo-game holding menu icons.
const iconsGameKey = "icons"

// SpriteVariants is one set of front sprite URLs. Empty string means absent.
type SpriteVariants struct {
	Default       string
	DefaultFemale string
	Shiny         string
	ShinyFemale   string
}

// IsEmpty reports whether no variant has a URL.
func (v SpriteVariants) IsEmpty() bool {
	return v.Default == "" && v.DefaultFemale == "" && v.Shiny == "" && v.ShinyFemale == ""
}

// SpriteSource is the builder input: the root variant set plus the
// generation → game → variants map, both in upstream order.
type SpriteSource struct {
	Root     SpriteVariants
	Versions []SpriteVersion
}

// SpriteVersion is one upstream generation and its games.
type SpriteVersion struct {
	Key   string
	Games []SpriteVersionGame
}

// SpriteVersionGame is one upstream game's variant set.
type SpriteVersionGame struct {
	Key      string
	Variants SpriteVariants
}

// --------------------------------------------------------------------------
// Output tree
// --------------------------------------------------------------------------

// SpriteItem is a single labeled sprite URL. Key is carried by the parent
// object in JSON.
type SpriteItem struct {
	Key   string `json:"-"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SpriteGame is a dropdown group of sprites for one game. Key is empty for
// a group that does not live inside a generation.
type SpriteGame struct {
	Key   string
	Label string
	Items []SpriteItem
}

// SpriteGeneration is a dropdown group of games.
type SpriteGeneration struct {
	Key   string
	Label string
	Games []SpriteGame
}

// SpriteOptions is the generation → game → sprite tree. It encodes as a JSON
// object whose key order is the slice order.
type SpriteOptions []SpriteGeneration

// Item returns the sprite stored under key.
func (g *SpriteGame) Item(key string) (SpriteItem, bool) {
	for _, it := range g.Items {
		if it.Key == key {
			return it, true
		}
	}
	return SpriteItem{}, false
}

// Game returns the game stored under key.
func (g *SpriteGeneration) Game(key string) (*SpriteGame, bool) {
	for i := range g.Games {
		if g.Games[i].Key == key {
			return &g.Games[i], true
		}
	}
	return nil, false
}

// Generation returns the generation stored under key.
func (o SpriteOptions) Generation(key string) (*SpriteGeneration, bool) {
	for i := range o {
		if o[i].Key == key {
			return &o[i], true
		}
	}
	return nil, false
}

// --------------------------------------------------------------------------
// Builders
// --------------------------------------------------------------------------

// BuildGameSprites returns a group with one item per non-empty URL in v.
// A group with no items is a valid result.
func BuildGameSprites(label string, v SpriteVariants) SpriteGame {
	game := SpriteGame{Label: label, Items: make([]SpriteItem, 0, 4)}
	add := func(key, url string) {
		if url == "" {
			return
		}
		game.Items = append(game.Items, SpriteItem{Key: key, Label: spriteLabels[key], URL: url})
	}
	add(SpriteDefault, v.Default)
	add(SpriteDefaultFemale, v.DefaultFemale)
	add(SpriteShiny, v.Shiny)
	add(SpriteShinyFemale, v.ShinyFemale)
	return game
}

// BuildSpriteTree flattens src into dropdown options. The synthetic default
// generation always comes first, even when the root has no sprites. Upstream
// games keyed "icons" or without any sprite are skipped, and generations
// left without games are omitted.
func BuildSpriteTree(src SpriteSource) SpriteOptions {
	defaultGame := BuildGameSprites(DefaultGameLabel, src.Root)
	defaultGame.Key = DefaultGameKey

	opts := SpriteOptions{{
		Key:   DefaultGenerationKey,
		Label: DefaultGenerationLabel,
		Games: []SpriteGame{defaultGame},
	}}

	for _, version := range src.Versions {
		var games []SpriteGame
		for _, g := range version.Games {
			if g.Key == iconsGameKey || g.Variants.IsEmpty() {
				continue
			}
			game := BuildGameSprites(g.Key, g.Variants)
			game.Key = g.Key
			games = append(games, game)
		}
		if len(games) == 0 {
			continue
		}
		opts = append(opts, SpriteGeneration{Key: version.Key, Label: version.Key, Games: games})
	}
	return opts
}

// --------------------------------------------------------------------------
// JSON
// --------------------------------------------------------------------------

type spriteGameJSON struct {
	Label string                                     `json:"label"`
	Items *orderedmap.OrderedMap[string, SpriteItem] `json:"items"`
}

func (g SpriteGame) MarshalJSON() ([]byte, error) {
	out := spriteGameJSON{Label: g.Label}
	if g.Items != nil {
		out.Items = orderedmap.New[string, SpriteItem](len(g.Items))
		for _, it := range g.Items {
			out.Items.Set(it.Key, it)
		}
	}
	return json.Marshal(out)
}

func (g *SpriteGame) UnmarshalJSON(data []byte) error {
	var in spriteGameJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	g.Label = in.Label
	g.Items = nil
	if in.Items != nil {
		g.Items = make([]SpriteItem, 0, in.Items.Len())
		for pair := in.Items.Oldest(); pair != nil; pair = pair.Next() {
			it := pair.Value
			it.Key = pair.Key
			g.Items = append(g.Items, it)
		}
	}
	return nil
}

type spriteGenerationJSON struct {
	Label string                                     `json:"label"`
	Items *orderedmap.OrderedMap[string, SpriteGame] `json:"items"`
}

func (g SpriteGeneration) MarshalJSON() ([]byte, error) {
	out := spriteGenerationJSON{Label: g.Label}
	if g.Games != nil {
		out.Items = orderedmap.New[string, SpriteGame](len(g.Games))
		for _, game := range g.Games {
			out.Items.Set(game.Key, game)
		}
	}
	return json.Marshal(out)
}

func (g *SpriteGeneration) UnmarshalJSON(data []byte) error {
	var in spriteGenerationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	g.Label = in.Label
	g.Games = nil
	if in.Items != nil {
		g.Games = make([]SpriteGame, 0, in.Items.Len())
		for pair := in.Items.Oldest(); pair != nil; pair = pair.Next() {
			game := pair.Value
			game.Key = pair.Key
			g.Games = append(g.Games, game)
		}
	}
	return nil
}

func (o SpriteOptions) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	om := orderedmap.New[string, SpriteGeneration](len(o))
	for _, gen := range o {
		om.Set(gen.Key, gen)
	}
	return json.Marshal(om)
}

func (o *SpriteOptions) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = nil
		return nil
	}
	om := orderedmap.New[string, SpriteGeneration]()
	if err := json.Unmarshal(data, om); err != nil {
		return err
	}
	out := make(SpriteOptions, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		gen := pair.Value
		gen.Key = pair.Key
		out = append(out, gen)
	}
	*o = out
	return nil
}
