package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "count", 42, 0))

	var got int
	found, err := c.Get(ctx, "count", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	var got int
	found, err := c.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, got)
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "value", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var got string
	found, err := c.Get(ctx, "short", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))
	require.NoError(t, c.Delete(ctx, "a", "b", "not-there"))

	var got int
	found, _ := c.Get(ctx, "a", &got)
	assert.False(t, found)
	found, _ = c.Get(ctx, "b", &got)
	assert.False(t, found)
}

func TestMemoryCacheDeletePattern(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "books:count:author:1", 3, 0))
	require.NoError(t, c.Set(ctx, "books:count:author:2", 5, 0))
	require.NoError(t, c.Set(ctx, "books:count", 8, 0))

	require.NoError(t, c.DeletePattern(ctx, "books:count:author:*"))

	var got int
	found, _ := c.Get(ctx, "books:count:author:1", &got)
	assert.False(t, found)
	found, _ = c.Get(ctx, "books:count", &got)
	assert.True(t, found)
}
