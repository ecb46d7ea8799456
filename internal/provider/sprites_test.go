package provider

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGameSprites_AllEmpty(t *testing.T) {
	t.Parallel()

	game := BuildGameSprites("red-blue", SpriteVariants{})
	assert.Equal(t, "red-blue", game.Label)
	assert.NotNil(t, game.Items)
	assert.Empty(t, game.Items)
}

func TestBuildGameSprites_SingleVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		variants  SpriteVariants
		wantKey   string
		wantLabel string
	}{
		{name: "default", variants: SpriteVariants{Default: "d.png"}, wantKey: SpriteDefault, wantLabel: "Default"},
		{name: "female", variants: SpriteVariants{DefaultFemale: "d.png"}, wantKey: SpriteDefaultFemale, wantLabel: "Default (Female)"},
		{name: "shiny", variants: SpriteVariants{Shiny: "d.png"}, wantKey: SpriteShiny, wantLabel: "Shiny"},
		{name: "shiny female", variants: SpriteVariants{ShinyFemale: "d.png"}, wantKey: SpriteShinyFemale, wantLabel: "Shiny (Female)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			game := BuildGameSprites("g", tt.variants)
			require.Len(t, game.Items, 1)
			assert.Equal(t, SpriteItem{Key: tt.wantKey, Label: tt.wantLabel, URL: "d.png"}, game.Items[0])
		})
	}
}

func TestBuildGameSprites_FixedOrder(t *testing.T) {
	t.Parallel()

	game := BuildGameSprites("g", SpriteVariants{
		ShinyFemale:   "sf.png",
		Shiny:         "s.png",
		DefaultFemale: "df.png",
		Default:       "d.png",
	})
	keys := make([]string, 0, len(game.Items))
	for _, it := range game.Items {
		keys = append(keys, it.Key)
	}
	assert.Equal(t, []string{SpriteDefault, SpriteDefaultFemale, SpriteShiny, SpriteShinyFemale}, keys)
}

func TestBuildSpriteTree(t *testing.T) {
	t.Parallel()

	src := SpriteSource{
		Root: SpriteVariants{Default: "root.png", Shiny: "root-shiny.png"},
		Versions: []SpriteVersion{
			{Key: "generation-vii", Games: []SpriteVersionGame{
				{Key: "icons", Variants: SpriteVariants{Default: "icon.png"}},
				{Key: "ultra-sun-ultra-moon", Variants: SpriteVariants{Default: "usum.png"}},
			}},
			{Key: "generation-i", Games: []SpriteVersionGame{
				{Key: "yellow", Variants: SpriteVariants{Default: "y.png"}},
				{Key: "red-blue", Variants: SpriteVariants{Default: "rb.png"}},
			}},
			{Key: "generation-viii", Games: []SpriteVersionGame{
				{Key: "icons", Variants: SpriteVariants{Default: "icon8.png"}},
			}},
			{Key: "generation-ix", Games: []SpriteVersionGame{
				{Key: "scarlet-violet", Variants: SpriteVariants{}},
			}},
		},
	}

	got := BuildSpriteTree(src)

	gens := make([]string, 0, len(got))
	for _, g := range got {
		gens = append(gens, g.Key)
	}
	// Upstream order, not alphabetical; empty and icons-only generations dropped.
	assert.Equal(t, []string{DefaultGenerationKey, "generation-vii", "generation-i"}, gens)

	def, ok := got.Generation(DefaultGenerationKey)
	require.True(t, ok)
	assert.Equal(t, DefaultGenerationLabel, def.Label)
	defGame, ok := def.Game(DefaultGameKey)
	require.True(t, ok)
	assert.Equal(t, DefaultGameLabel, defGame.Label)
	assert.Len(t, defGame.Items, 2)

	gen7, ok := got.Generation("generation-vii")
	require.True(t, ok)
	_, ok = gen7.Game("icons")
	assert.False(t, ok, "icons must be excluded")
	require.Len(t, gen7.Games, 1)

	gen1, ok := got.Generation("generation-i")
	require.True(t, ok)
	assert.Equal(t, "generation-i", gen1.Label)
	require.Len(t, gen1.Games, 2)
	assert.Equal(t, "yellow", gen1.Games[0].Key)
	assert.Equal(t, "red-blue", gen1.Games[1].Key)
	item, ok := gen1.Games[1].Item(SpriteDefault)
	require.True(t, ok)
	assert.Equal(t, "rb.png", item.URL)
}

func TestBuildSpriteTree_DefaultAlwaysPresent(t *testing.T) {
	t.Parallel()

	got := BuildSpriteTree(SpriteSource{})
	require.Len(t, got, 1)
	require.Len(t, got[0].Games, 1)
	assert.Empty(t, got[0].Games[0].Items)
}

func TestSpriteOptions_JSONKeepsOrder(t *testing.T) {
	t.Parallel()

	opts := BuildSpriteTree(SpriteSource{
		Root: SpriteVariants{Default: "a"},
		Versions: []SpriteVersion{
			{Key: "generation-v", Games: []SpriteVersionGame{{Key: "black-white", Variants: SpriteVariants{Shiny: "b"}}}},
			{Key: "generation-ii", Games: []SpriteVersionGame{{Key: "gold", Variants: SpriteVariants{Default: "c"}}}},
		},
	})

	data, err := json.Marshal(opts)
	require.NoError(t, err)

	want := `{"default":{"label":"Default Generation","items":{"default":{"label":"Default Game","items":{"default":{"label":"Default","url":"a"}}}}},` +
		`"generation-v":{"label":"generation-v","items":{"black-white":{"label":"black-white","items":{"shiny":{"label":"Shiny","url":"b"}}}}},` +
		`"generation-ii":{"label":"generation-ii","items":{"gold":{"label":"gold","items":{"default":{"label":"Default","url":"c"}}}}}}`
	assert.JSONEq(t, want, string(data))
	assert.Less(t, strings.Index(string(data), "generation-v"), strings.Index(string(data), "generation-ii"))

	var back SpriteOptions
	require.NoError(t, json.Unmarshal(data, &back))
	if diff := cmp.Diff(opts, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
