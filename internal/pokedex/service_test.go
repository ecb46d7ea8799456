package pokedex

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/provider"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestService_PokemonPayload_CachesUpstream(t *testing.T) {
	up := seededUpstream()
	svc := newTestService(t, up, nil)
	ctx := context.Background()

	first, err := svc.PokemonPayload(ctx, 25)
	require.NoError(t, err)
	assert.False(t, first.Hit)
	assert.Equal(t, cache.ComputeETag(first.Data), first.ETag)

	second, err := svc.PokemonPayload(ctx, 25)
	require.NoError(t, err)
	assert.True(t, second.Hit)
	assert.Equal(t, first.ETag, second.ETag)
	assert.Equal(t, first.Data, second.Data)

	assert.Equal(t, 1, up.callsFor("pokemon/25"))
}

func TestService_TypedAccessorsRoundTrip(t *testing.T) {
	up := seededUpstream()
	svc := newTestService(t, up, nil)
	ctx := context.Background()

	pk, err := svc.Pokemon(ctx, 25)
	require.NoError(t, err)
	if diff := cmp.Diff(up.pokemon[25], pk); diff != "" {
		t.Errorf("Pokemon mismatch (-want +got):\n%s", diff)
	}

	sp, err := svc.Species(ctx, 133)
	require.NoError(t, err)
	if diff := cmp.Diff(up.species[133], sp); diff != "" {
		t.Errorf("Species mismatch (-want +got):\n%s", diff)
	}

	chain, err := svc.EvolutionChain(ctx, 67)
	require.NoError(t, err)
	if diff := cmp.Diff(up.chains[67], chain); diff != "" {
		t.Errorf("EvolutionChain mismatch (-want +got):\n%s", diff)
	}
}

func TestService_InvalidID(t *testing.T) {
	up := seededUpstream()
	svc := newTestService(t, up, nil)

	for _, id := range []int{0, -1} {
		_, err := svc.PokemonPayload(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidID)
		_, err = svc.Species(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidID)
		_, err = svc.EvolutionChain(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidID)
	}
	assert.Zero(t, up.total.Load())
}

func TestService_UpstreamErrorPropagates(t *testing.T) {
	up := seededUpstream()
	svc := newTestService(t, up, nil)

	_, err := svc.Pokemon(context.Background(), 9999)
	var fe *provider.UpstreamFetchError
	require.ErrorAs(t, err, &fe)
	assert.True(t, fe.NotFound())
	assert.Equal(t, "pokemon/9999", fe.Path)

	// Failures are not cached.
	_, err = svc.Pokemon(context.Background(), 9999)
	require.Error(t, err)
	assert.Equal(t, 2, up.callsFor("pokemon/9999"))
}

func TestService_DataIntegrityErrorPropagates(t *testing.T) {
	up := seededUpstream()
	up.err = &provider.MalformedReferenceError{URL: "https://pokeapi.co/api/v2/pokemon/abc/"}
	svc := newTestService(t, up, nil)

	_, err := svc.SpeciesPayload(context.Background(), 1)
	assert.ErrorIs(t, err, provider.ErrMalformedReference)
	assert.True(t, provider.IsDataIntegrity(err))
}

func TestService_ConcurrentRequestsShareOneUpstreamCall(t *testing.T) {
	up := seededUpstream()
	up.release = make(chan struct{})
	svc := newTestService(t, up, nil)

	const n = 10
	var wg sync.WaitGroup
	etags := make([]string, n)
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := svc.PokemonPayload(context.Background(), 25)
			etags[i], errs[i] = p.ETag, err
		}()
	}

	require.Eventually(t, func() bool { return up.total.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(up.release)
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, etags[0], etags[i])
	}
	assert.Equal(t, 1, up.callsFor("pokemon/25"))
}

func TestService_CallerCancellation(t *testing.T) {
	up := seededUpstream()
	up.release = make(chan struct{})
	svc := newTestService(t, up, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.PokemonPayload(ctx, 25)
		done <- err
	}()

	require.Eventually(t, func() bool { return up.total.Load() == 1 }, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	// The shared fetch still completes and fills the cache.
	close(up.release)
	require.Eventually(t, func() bool {
		p, err := svc.PokemonPayload(context.Background(), 25)
		return err == nil && p.Hit
	}, time.Second, time.Millisecond)
}

func TestService_StoreTier(t *testing.T) {
	t.Run("write through on miss", func(t *testing.T) {
		up := seededUpstream()
		st := newFakeStore()
		svc := newTestService(t, up, st)

		p, err := svc.SpeciesPayload(context.Background(), 25)
		require.NoError(t, err)
		assert.Equal(t, p.Data, st.rows["pokemon-species/25"])
	})

	t.Run("store hit skips upstream", func(t *testing.T) {
		up := seededUpstream()
		st := newFakeStore()
		data, err := provider.Encode(up.pokemon[133])
		require.NoError(t, err)
		st.rows["pokemon/133"] = data
		svc := newTestService(t, up, st)

		p, err := svc.PokemonPayload(context.Background(), 133)
		require.NoError(t, err)
		assert.True(t, p.Hit)
		assert.Equal(t, data, p.Data)
		assert.Zero(t, up.total.Load())
	})

	t.Run("store errors are not returned", func(t *testing.T) {
		up := seededUpstream()
		st := newFakeStore()
		st.getErr = errors.New("connection refused")
		st.putErr = errors.New("connection refused")
		svc := newTestService(t, up, st)

		p, err := svc.PokemonPayload(context.Background(), 25)
		require.NoError(t, err)
		assert.False(t, p.Hit)
		assert.Equal(t, 1, st.puts)
		assert.Equal(t, 1, up.callsFor("pokemon/25"))
	})
}

func TestService_Invalidate(t *testing.T) {
	up := seededUpstream()
	st := newFakeStore()
	svc := newTestService(t, up, st)
	ctx := context.Background()

	_, err := svc.PokemonPayload(ctx, 25)
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(ctx, "pokemon/25"))
	assert.Equal(t, []string{"pokemon/25"}, st.deleted)

	p, err := svc.PokemonPayload(ctx, 25)
	require.NoError(t, err)
	assert.False(t, p.Hit)
	assert.Equal(t, 2, up.callsFor("pokemon/25"))

	require.NoError(t, svc.InvalidateAll(ctx))
	assert.Equal(t, 1, st.flushed)
	assert.Empty(t, st.rows)
}

func TestService_InvalidateWithoutStore(t *testing.T) {
	svc := newTestService(t, seededUpstream(), nil)
	assert.NoError(t, svc.Invalidate(context.Background(), "pokemon/1"))
	assert.NoError(t, svc.InvalidateAll(context.Background()))
}
