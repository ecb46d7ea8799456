package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCache_SetGet(t *testing.T) {
	c := New(true)
	defer c.Close()

	etag := c.Set("pokemon/1", []byte(`{"id":1}`), time.Minute)
	assert.Equal(t, ComputeETag([]byte(`{"id":1}`)), etag)

	data, gotTag, ok := c.Get("pokemon/1")
	require.True(t, ok)
	assert.Equal(t, `{"id":1}`, string(data))
	assert.Equal(t, etag, gotTag)

	_, _, ok = c.Get("pokemon/2")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New(true)
	defer c.Close()

	c.Set("k", []byte("v"), -time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_keys"])
	assert.Equal(t, 1, stats["expired_keys"])

	c.evict()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestCache_EvictLoop(t *testing.T) {
	c := newCache(true, 10*time.Millisecond)
	defer c.Close()

	c.Set("k", []byte("v"), time.Millisecond)
	assert.Eventually(t, func() bool {
		return c.Stats()["total_keys"] == 0
	}, time.Second, 5*time.Millisecond)
}

func TestCache_Disabled(t *testing.T) {
	c := New(false)
	defer c.Close()

	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
	assert.False(t, c.Enabled())
}

func TestCache_Delete(t *testing.T) {
	c := New(true)
	defer c.Close()

	c.Set("pokemon/1", []byte("a"), time.Minute)
	c.Set("pokemon/2", []byte("b"), time.Minute)
	c.Set("pokemon-species/1", []byte("c"), time.Minute)
	c.Set("evolution-chain/1", []byte("d"), time.Minute)

	assert.True(t, c.Delete("evolution-chain/1"))
	assert.False(t, c.Delete("evolution-chain/1"))
	assert.Equal(t, 2, c.DeletePrefix("pokemon/"))

	_, _, ok := c.Get("pokemon-species/1")
	assert.True(t, ok)

	c.Flush()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestCache_CloseTwice(t *testing.T) {
	c := New(true)
	c.Close()
	c.Close()
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))

	assert.False(t, CheckETagMatch("", etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch(`W/"aaaa", `+etag, etag))
	assert.False(t, CheckETagMatch(`W/"aaaa"`, etag))
}
