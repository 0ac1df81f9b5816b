// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/hueshift/hueshift/palette"

// DefaultCacheSize is the default capacity of a [Cache].
const DefaultCacheSize = 64

// Cache is a bounded memoizer of seed to palette derivations.
// When full, the oldest inserted entry is evicted. It is not safe for
// concurrent use on its own; the [Publisher] guards its cache with the
// publisher lock.
type Cache struct {
	capacity int
	entries  map[string]*palette.Palette
	order    []string
}

// NewCache returns a new [Cache] with the given capacity,
// or [DefaultCacheSize] if it is not positive.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*palette.Palette, capacity),
	}
}

// Get returns the cached palette for the given seed, if present.
func (c *Cache) Get(seed string) (*palette.Palette, bool) {
	p, ok := c.entries[seed]
	return p, ok
}

// Add inserts the palette for the given seed, evicting the oldest
// entry if the cache is full. Re-adding an existing seed replaces the
// value without refreshing its insertion order.
func (c *Cache) Add(seed string, p *palette.Palette) {
	if _, ok := c.entries[seed]; ok {
		c.entries[seed] = p
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[seed] = p
	c.order = append(c.order, seed)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Palette returns the palette for the given seed,
// deriving and caching it on a miss.
func (c *Cache) Palette(seed string) (*palette.Palette, error) {
	if p, ok := c.Get(seed); ok {
		return p, nil
	}
	p, err := palette.New(seed)
	if err != nil {
		return nil, err
	}
	c.Add(seed, p)
	return p, nil
}
