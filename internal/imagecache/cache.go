// Package imagecache holds composited frame images keyed by their full
// rendering parameters. It is the one concurrent structure in the app:
// concurrent reads, serialized writes, bounded by entry count and total byte
// cost, and cleared wholesale on a low-memory signal.
package imagecache

import "sync"

// Key identifies one rendered composition.
type Key struct {
	Image      string
	FrameStyle string
	Background string
	Scale      float64
	OffsetX    float64
	OffsetY    float64
}

type entry struct {
	data []byte
	cost int
}

// Cache is a bounded key→bytes cache. Past its caps it evicts arbitrary
// entries until the new value fits; there is no LRU or other ordering.
type Cache struct {
	mu         sync.RWMutex
	entries    map[Key]entry
	cost       int
	maxEntries int
	maxCost    int
}

// New creates a cache bounded by maxEntries entries and maxCost total bytes.
// Non-positive bounds mean unbounded in that dimension.
func New(maxEntries, maxCost int) *Cache {
	return &Cache{
		entries:    make(map[Key]entry),
		maxEntries: maxEntries,
		maxCost:    maxCost,
	}
}

// Get returns the cached bytes for k, if present.
func (c *Cache) Get(k Key) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[k]
	return e.data, ok
}

// Set stores data under k, evicting arbitrary entries as needed to respect
// the caps. A value larger than the total cost cap is not stored.
func (c *Cache) Set(k Key, data []byte) {
	cost := len(data)
	if c.maxCost > 0 && cost > c.maxCost {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[k]; ok {
		c.cost -= old.cost
		delete(c.entries, k)
	}

	for (c.maxEntries > 0 && len(c.entries) >= c.maxEntries) ||
		(c.maxCost > 0 && c.cost+cost > c.maxCost) {
		evicted := false
		for victim, e := range c.entries {
			c.cost -= e.cost
			delete(c.entries, victim)
			evicted = true
			break
		}
		if !evicted {
			break
		}
	}

	c.entries[k] = entry{data: data, cost: cost}
	c.cost += cost
}

// Clear empties the cache. Wired to the low-memory signal.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]entry)
	c.cost = 0
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Cost returns the total byte cost of cached entries.
func (c *Cache) Cost() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cost
}
