package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Search hooks
	s := NoopSearchHooks{}
	s.OnSearchStart(ctx, "run", 8, 2)
	s.OnSolution(ctx, "run", 1)
	s.OnSearchComplete(ctx, "run", 3, SearchStats{Nodes: 6}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "placements")
	c.OnCacheMiss(ctx, "placements")
	c.OnCacheSet(ctx, "placements", 12)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Search() should return NoopSearchHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customSearch := &testSearchHooks{}
	SetSearchHooks(customSearch)
	if Search() != customSearch {
		t.Error("SetSearchHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Reset() should restore NoopSearchHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testSearchHooks{}
	SetSearchHooks(custom)
	SetSearchHooks(nil)
	if Search() != custom {
		t.Error("SetSearchHooks(nil) should keep the registered hooks")
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should keep the default hooks")
	}
}

func TestSearchStatsAdd(t *testing.T) {
	a := SearchStats{Nodes: 1, Placements: 2, MemoHits: 3, MemoMisses: 4}
	b := SearchStats{Nodes: 10, Placements: 20, MemoHits: 30, MemoMisses: 40}
	got := a.Add(b)
	want := SearchStats{Nodes: 11, Placements: 22, MemoHits: 33, MemoMisses: 44}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

type testSearchHooks struct{ NoopSearchHooks }
type testCacheHooks struct{ NoopCacheHooks }
