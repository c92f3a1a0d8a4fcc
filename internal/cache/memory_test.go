package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, c.Set(ctx, "k", payload{Name: "kitchen"}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, "kitchen", got.Name)
}

func TestMemoryCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var got string
	assert.ErrorIs(t, c.Get(ctx, "absent", &got), ErrMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var got string
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrMiss)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, c.Delete(ctx, "a", "b", "never-existed"))

	var got int
	assert.ErrorIs(t, c.Get(ctx, "a", &got), ErrMiss)
	assert.ErrorIs(t, c.Get(ctx, "b", &got), ErrMiss)
}

func TestPageKeys(t *testing.T) {
	keys := PageKeys("categories", 10, 20)
	assert.Len(t, keys, 10)
	assert.Equal(t, "categories_page_1_size_20", keys[0])
	assert.Equal(t, "categories_page_10_size_20", keys[9])
}

func TestPageKeySeparatesPageSizes(t *testing.T) {
	assert.NotEqual(t, PageKey("projects", 1, 5), PageKey("projects", 1, 50))
}
