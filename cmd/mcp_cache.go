package cmd

import (
	"sync"
	"time"

	"github.com/mj1618/wintree/internal/output"
	"github.com/mj1618/wintree/internal/platform"
)

// mcpCacheKey identifies a unique listing scope.
type mcpCacheKey struct {
	All      bool
	Parent   platform.Handle
	NoIgnore bool
	PID      int
	Class    string
	Title    string
	HasBBox  bool
	BBox     [4]int
}

func newMCPCacheKey(opts platform.ListOptions) mcpCacheKey {
	key := mcpCacheKey{
		All:      opts.All,
		Parent:   opts.Parent,
		NoIgnore: opts.NoIgnore,
		PID:      opts.PID,
		Class:    opts.Class,
		Title:    opts.Title,
	}
	if opts.BBox != nil {
		key.HasBBox = true
		key.BBox = *opts.BBox
	}
	return key
}

// mcpCacheEntry holds a cached listing with its timestamp.
type mcpCacheEntry struct {
	result    output.ListResult
	timestamp time.Time
}

// mcpListCache provides a TTL-based cache for window listings.
type mcpListCache struct {
	mu      sync.Mutex
	entries map[mcpCacheKey]mcpCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// newMCPListCache creates a new cache. A ttl of 0 disables caching.
func newMCPListCache(ttl time.Duration) *mcpListCache {
	return &mcpListCache{
		entries: make(map[mcpCacheKey]mcpCacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// list returns the cached listing for opts if within TTL, otherwise calls
// fetch and caches a successful result.
func (c *mcpListCache) list(opts platform.ListOptions, fetch func(platform.ListOptions) (output.ListResult, error)) (output.ListResult, error) {
	if c.ttl <= 0 {
		return fetch(opts)
	}

	key := newMCPCacheKey(opts)

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		result := entry.result
		c.mu.Unlock()
		return result, nil
	}
	c.mu.Unlock()

	result, err := fetch(opts)
	if err != nil {
		return result, err
	}

	c.mu.Lock()
	c.entries[key] = mcpCacheEntry{result: result, timestamp: c.now()}
	c.mu.Unlock()

	return result, nil
}

// invalidateAll clears the entire cache.
func (c *mcpListCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[mcpCacheKey]mcpCacheEntry)
}
