// Package gencache memoizes generation results per (tile, session seed)
// key. Generation is pure, so a hit is always byte-identical to a fresh
// run; a miss just means the caller generates and adds. The cache is
// bounded: evicting a tile only costs a re-generation when it is
// revisited.
package gencache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"citygen/pkg/building"
)

// Key identifies one generation pass.
type Key struct {
	TileX int
	TileY int
	Seed  uint64
}

// DefaultCapacity holds roughly a 11x11 tile neighborhood.
const DefaultCapacity = 128

// Cache is a bounded LRU of generated descriptor sets. Descriptors are
// immutable, so cached slices are shared, not copied; callers must not
// modify them.
type Cache struct {
	entries *lru.Cache[Key, []building.Descriptor]
}

// New creates a cache with the given capacity; non-positive capacities
// fall back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New[Key, []building.Descriptor](capacity)
	if err != nil {
		// lru.New only errors on non-positive size, which the guard
		// above rules out.
		panic(err)
	}
	return &Cache{entries: entries}
}

// Get returns the cached descriptors for the key, if present.
func (c *Cache) Get(k Key) ([]building.Descriptor, bool) {
	return c.entries.Get(k)
}

// Add stores a generation result.
func (c *Cache) Add(k Key, descs []building.Descriptor) {
	c.entries.Add(k, descs)
}

// Len returns the number of cached tiles.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached tile; the next queries regenerate.
func (c *Cache) Purge() {
	c.entries.Purge()
}
