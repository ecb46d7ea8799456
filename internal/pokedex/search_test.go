package pokedex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/pokedex-data/internal/provider"
)

func names(rs []provider.Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestService_Search(t *testing.T) {
	up := seededUpstream()
	svc := newTestService(t, up, nil)
	ctx := context.Background()

	tests := []struct {
		query string
		limit int
		want  []string
	}{
		{query: "pchu", want: []string{"pikachu", "pichu"}},
		{query: "PIKA", want: []string{"pikachu"}},
		{query: "  chu ", limit: 1, want: []string{"pikachu"}},
		{query: "fbb", want: []string{"flabébé"}},
		{query: "a", limit: 2, want: []string{"bulbasaur", "pikachu"}},
		{query: "e", want: []string{"eevee"}},
		{query: "zzz", want: []string{}},
		{query: "   ", want: []string{}},
	}

	for _, tt := range tests {
		got, err := svc.Search(ctx, tt.query, tt.limit)
		require.NoError(t, err, "query %q", tt.query)
		assert.Equal(t, tt.want, names(got), "query %q limit %d", tt.query, tt.limit)
	}

	assert.Equal(t, 1, up.callsFor("pokemon-species?limit=100000"))
}

func TestService_SearchLimitClamp(t *testing.T) {
	up := seededUpstream()
	up.index = nil
	for i := 1; i <= MaxSearchLimit+10; i++ {
		up.index = append(up.index, provider.Resource{ID: i, Name: "mon"})
	}
	svc := newTestService(t, up, nil)

	got, err := svc.Search(context.Background(), "mon", 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultSearchLimit)

	got, err = svc.Search(context.Background(), "mon", 1000)
	require.NoError(t, err)
	assert.Len(t, got, MaxSearchLimit)
}

func TestService_SearchUpstreamError(t *testing.T) {
	up := seededUpstream()
	up.err = errors.New("boom")
	svc := newTestService(t, up, nil)

	_, err := svc.Search(context.Background(), "pika", 5)
	assert.EqualError(t, err, "boom")
}
