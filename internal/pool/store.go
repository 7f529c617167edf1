package pool

import (
	"sync/atomic"
)

// Store publishes pool generations. Readers always see either the previous
// or the next complete Set, never a partial rebuild.
type Store struct {
	current atomic.Pointer[Set]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load returns the published set, or nil when pools are not built.
func (s *Store) Load() *Set {
	return s.current.Load()
}

// Publish swaps set in, replacing every pool at once.
func (s *Store) Publish(set *Set) {
	s.current.Store(set)
}

// PublishIf swaps set in only if old is still the published set.
func (s *Store) PublishIf(old, set *Set) bool {
	return s.current.CompareAndSwap(old, set)
}

// Clear drops all pools.
func (s *Store) Clear() {
	s.current.Store(nil)
}

// IsReady reports whether any published pool holds a board.
func (s *Store) IsReady() bool {
	return s.current.Load().IsReady()
}
