package payout

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/slotforge/internal/domain"
)

// cacheKey addresses one pooled board.
type cacheKey struct {
	Outcome int
	Index   int
}

// cachedBreakdown carries the pool generation it was computed under.
type cachedBreakdown struct {
	Generation uint64
	Win        domain.WinBreakdown
}

// Cache memoises pooled-board evaluations with an expiring LRU. Entries from
// an older pool generation are treated as misses and dropped on sight.
type Cache struct {
	lru *expirable.LRU[cacheKey, *cachedBreakdown]
}

// NewCache creates a cache holding at most size entries for ttl each.
// A zero ttl disables expiry.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[cacheKey, *cachedBreakdown](size, nil, ttl),
	}
}

// Get returns the breakdown for a pooled board if it was stored under generation.
func (c *Cache) Get(generation uint64, outcome, index int) (domain.WinBreakdown, bool) {
	key := cacheKey{Outcome: outcome, Index: index}
	entry, found := c.lru.Get(key)
	if !found {
		return domain.WinBreakdown{}, false
	}
	if entry.Generation != generation {
		c.lru.Remove(key)
		return domain.WinBreakdown{}, false
	}
	return entry.Win, true
}

// Set stores a breakdown for a pooled board.
func (c *Cache) Set(generation uint64, outcome, index int, win domain.WinBreakdown) {
	c.lru.Add(cacheKey{Outcome: outcome, Index: index}, &cachedBreakdown{Generation: generation, Win: win})
}

// Len is the number of entries, including ones not yet evicted as stale.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.lru.Purge()
}
