package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Config configures the query cache
type Config struct {
	Size int
	TTL  time.Duration
}

// entry wraps a cached value with version metadata
type entry struct {
	version  string
	value    any
	cachedAt time.Time
}

// Stats reports cache effectiveness
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// QueryCache is a read-through cache keyed by query identity.
// It is never the source of truth: every successful write invalidates it.
type QueryCache struct {
	lru    *expirable.LRU[string, *entry]
	hits   atomic.Int64
	misses atomic.Int64

	// mu orders generation bumps against guarded stores.
	mu         sync.Mutex
	generation uint64
}

// New creates a query cache. Non-positive values fall back to defaults.
func New(cfg Config) *QueryCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL * time.Second
	}
	return &QueryCache{
		lru: expirable.NewLRU[string, *entry](cfg.Size, nil, cfg.TTL),
	}
}

// Set stores a value under key with the current schema version
func (c *QueryCache) Set(key string, value any) {
	if c == nil {
		return
	}
	c.lru.Add(key, &entry{
		version:  SchemaVersion,
		value:    value,
		cachedAt: time.Now(),
	})
}

// Generation returns the invalidation counter. Capture it before reading
// from the store and pass it to SetIfCurrent.
func (c *QueryCache) Generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// SetIfCurrent stores value only if no invalidation happened since gen was
// captured. It reports whether the value was stored.
func (c *QueryCache) SetIfCurrent(key string, value any, gen uint64) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return false
	}
	c.Set(key, value)
	return true
}

// Invalidate removes the given keys
func (c *QueryCache) Invalidate(keys ...string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	for _, k := range keys {
		c.lru.Remove(k)
	}
}

// Clear removes all entries
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}

// GetStats returns hit/miss counters and the current size
func (c *QueryCache) GetStats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

func (c *QueryCache) lookup(key string) (any, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	if e.version != SchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return e.value, true
}

// Get returns the cached value for key when present and of type T.
// A nil cache always misses.
func Get[T any](c *QueryCache, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	v, ok := c.lookup(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		c.Invalidate(key)
		return zero, false
	}
	return typed, true
}
