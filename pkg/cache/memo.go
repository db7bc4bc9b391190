// Package cache provides typed in-process memo stores.
//
// The tiling solver enumerates placements of the same piece inside the same
// remainder many times over; a [Memo] keyed by the two shapes' hashes lets
// it do that work once per search. Two implementations exist:
//
//   - [MemoryMemo]: bounded, least-recently-used, safe for concurrent use
//   - [NullMemo]: stores nothing, for benchmarking the uncached search
//
// Values are shared between callers, so stored values must be treated as
// read-only.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Memo is a key/value store with no expiry.
type Memo[K comparable, V any] interface {
	// Get returns the value stored for key and whether it was present.
	Get(key K) (V, bool)

	// Set stores value under key, possibly evicting older entries.
	Set(key K, value V)

	// Len returns the number of stored entries.
	Len() int
}

// DefaultCapacity is used when NewMemoryMemo is given a capacity <= 0.
const DefaultCapacity = 4096

// MemoryMemo is an LRU memo bounded to a fixed number of entries.
type MemoryMemo[K comparable, V any] struct {
	capacity int
	lru      *lru.Cache[K, V]
}

// NewMemoryMemo creates an LRU memo holding at most capacity entries.
func NewMemoryMemo[K comparable, V any](capacity int) *MemoryMemo[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// lru.New only fails for a non-positive size.
	c, _ := lru.New[K, V](capacity)
	return &MemoryMemo[K, V]{capacity: capacity, lru: c}
}

// Get retrieves a value and marks it as recently used.
func (m *MemoryMemo[K, V]) Get(key K) (V, bool) {
	return m.lru.Get(key)
}

// Set stores a value, evicting the least recently used entry when full.
func (m *MemoryMemo[K, V]) Set(key K, value V) {
	m.lru.Add(key, value)
}

// Len returns the number of stored entries.
func (m *MemoryMemo[K, V]) Len() int {
	return m.lru.Len()
}

// Ensure MemoryMemo implements Memo.
var _ Memo[string, int] = (*MemoryMemo[string, int])(nil)
