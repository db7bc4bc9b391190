// Package observability provides hooks for progress reporting, metrics and
// logging around the tiling search.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about searches and placement-memo operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The core library never logs; it calls hooks, and the CLI registers a hook
// that logs.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnSearchStart(ctx, runID, targetSize, pieces)
//	// ... search ...
//	observability.Search().OnSearchComplete(ctx, runID, solutions, stats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SearchStats counts the work done by one search.
type SearchStats struct {
	Nodes      int64 // placements expanded
	Placements int64 // placements enumerated (memo misses only)
	MemoHits   int64
	MemoMisses int64
}

// Add returns the field-wise sum of s and o.
func (s SearchStats) Add(o SearchStats) SearchStats {
	return SearchStats{
		Nodes:      s.Nodes + o.Nodes,
		Placements: s.Placements + o.Placements,
		MemoHits:   s.MemoHits + o.MemoHits,
		MemoMisses: s.MemoMisses + o.MemoMisses,
	}
}

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from the tiling solver.
// Implementations must be safe for concurrent use: OnSolution fires from
// worker goroutines.
type SearchHooks interface {
	// OnSearchStart fires once before any placement is tried.
	OnSearchStart(ctx context.Context, runID string, targetSize, pieces int)

	// OnSolution fires when a new distinct solution is found; found is the
	// running total.
	OnSolution(ctx context.Context, runID string, found int)

	// OnSearchComplete fires once when the search returns.
	OnSearchComplete(ctx context.Context, runID string, solutions int, stats SearchStats, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from memo operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write of size entries.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, string, int, int) {}
func (NoopSearchHooks) OnSolution(context.Context, string, int)         {}
func (NoopSearchHooks) OnSearchComplete(context.Context, string, int, SearchStats, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any search runs.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	cacheHooks = NoopCacheHooks{}
}
