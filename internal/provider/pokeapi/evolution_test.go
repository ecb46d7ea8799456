package pokeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pokedex-data/internal/provider"
)

const evolutionFixture = `{
	"id": 67,
	"baby_trigger_item": null,
	"chain": {
		"is_baby": false,
		"species": {"name": "eevee", "url": "https://pokeapi.co/api/v2/pokemon-species/133/"},
		"evolution_details": [],
		"evolves_to": [
			{"species": {"name": "vaporeon", "url": "https://pokeapi.co/api/v2/pokemon-species/134/"}, "evolves_to": []},
			{"species": {"name": "jolteon", "url": "https://pokeapi.co/api/v2/pokemon-species/135/"}, "evolves_to": []},
			{"species": {"name": "flareon", "url": "https://pokeapi.co/api/v2/pokemon-species/136/"}, "evolves_to": []}
		]
	}
}`

func decodeChain(t *testing.T, body string) *apiEvolutionChain {
	t.Helper()
	var raw apiEvolutionChain
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return &raw
}

func TestNormalizeEvolutionChain(t *testing.T) {
	t.Parallel()

	chain, err := NormalizeEvolutionChain(decodeChain(t, evolutionFixture))
	require.NoError(t, err)

	assert.Equal(t, 67, chain.ID)
	require.NotNil(t, chain.Chain)
	assert.Equal(t, 133, chain.Chain.SpeciesID)
	assert.Equal(t, "eevee", chain.Chain.SpeciesName)
	assert.Equal(t, []int{133, 134, 135, 136}, chain.SpeciesIDs())

	rel := provider.FindRelatives(chain, 135)
	assert.Equal(t, []provider.Resource{{ID: 133, Name: "eevee"}}, rel.EvolvesFrom)
	assert.Empty(t, rel.EvolvesTo)
}

func TestNormalizeEvolutionChain_NullRoot(t *testing.T) {
	t.Parallel()

	chain, err := NormalizeEvolutionChain(decodeChain(t, `{"id": 5, "chain": null}`))
	require.NoError(t, err)
	assert.Nil(t, chain.Chain)
}

func TestNormalizeEvolutionChain_MalformedLeaf(t *testing.T) {
	t.Parallel()

	raw := decodeChain(t, evolutionFixture)
	raw.Chain.EvolvesTo[2].Species.URL = "https://pokeapi.co/api/v2/pokemon-species/flareon/"

	_, err := NormalizeEvolutionChain(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrMalformedReference)
}

func TestNormalizeEvolutionChain_DuplicateSpecies(t *testing.T) {
	t.Parallel()

	raw := decodeChain(t, evolutionFixture)
	raw.Chain.EvolvesTo[1].Species.URL = "https://pokeapi.co/api/v2/pokemon-species/133/"

	_, err := NormalizeEvolutionChain(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrMalformedChain)
}

func TestNormalizeEvolutionChain_MissingSpecies(t *testing.T) {
	t.Parallel()

	_, err := NormalizeEvolutionChain(decodeChain(t, `{"id": 5, "chain": {"evolves_to": []}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrInvalidPayload)
}

func TestClient_ListSpecies(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon-species", r.URL.Path)
		assert.Equal(t, "100000", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"count": 2, "results": [
			{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"},
			{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon-species/2/"}
		]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL, nil).ListSpecies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []provider.Resource{{ID: 1, Name: "bulbasaur"}, {ID: 2, Name: "ivysaur"}}, got)
}
