package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

func TestQueryCache_SetGetInvalidate(t *testing.T) {
	c := New(Config{Size: 10, TTL: time.Minute})
	items := []domain.Item{{ID: 1, Name: "Iron Ore", Price: 10, Category: "Material"}}

	c.Set(KeyItems, items)

	got, ok := Get[[]domain.Item](c, KeyItems)
	assert.True(t, ok)
	assert.Equal(t, items, got)

	c.Invalidate(KeyItems, KeyRecipes)

	got, ok = Get[[]domain.Item](c, KeyItems)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestQueryCache_WrongTypeMisses(t *testing.T) {
	c := New(Config{Size: 10, TTL: time.Minute})
	c.Set(KeyInventory, "not a slice")

	_, ok := Get[[]domain.InventoryRecord](c, KeyInventory)
	assert.False(t, ok)
	assert.Equal(t, 0, c.GetStats().Size, "mismatched entry is dropped")
}

func TestQueryCache_Stats(t *testing.T) {
	c := New(Config{Size: 10, TTL: time.Minute})

	stats := c.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)

	Get[[]domain.Recipe](c, KeyRecipes)
	c.Set(KeyRecipes, []domain.Recipe{})
	Get[[]domain.Recipe](c, KeyRecipes)

	stats = c.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)

	c.Clear()
	assert.Equal(t, 0, c.GetStats().Size)
}

func TestQueryCache_Expires(t *testing.T) {
	c := New(Config{Size: 10, TTL: 20 * time.Millisecond})
	c.Set(KeyItems, []domain.Item{})

	assert.Eventually(t, func() bool {
		_, ok := Get[[]domain.Item](c, KeyItems)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestGet_NilCache(t *testing.T) {
	_, ok := Get[[]domain.Item](nil, KeyItems)
	assert.False(t, ok)
}

func TestQueryCache_SetIfCurrent(t *testing.T) {
	c := New(Config{Size: 10, TTL: time.Minute})
	items := []domain.Item{{ID: 1, Name: "Iron Ore", Category: "Material"}}

	gen := c.Generation()
	c.Invalidate(KeyItems)
	assert.False(t, c.SetIfCurrent(KeyItems, items, gen), "read started before a write must not be stored")
	_, ok := Get[[]domain.Item](c, KeyItems)
	assert.False(t, ok)

	gen = c.Generation()
	assert.True(t, c.SetIfCurrent(KeyItems, items, gen))
	got, ok := Get[[]domain.Item](c, KeyItems)
	assert.True(t, ok)
	assert.Equal(t, items, got)

	gen = c.Generation()
	c.Clear()
	assert.False(t, c.SetIfCurrent(KeyItems, items, gen))
}

func TestQueryCache_NilSetIfCurrent(t *testing.T) {
	var c *QueryCache
	assert.Equal(t, uint64(0), c.Generation())
	assert.False(t, c.SetIfCurrent(KeyItems, []domain.Item{}, 0))
}
