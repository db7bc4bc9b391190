package polycube

import (
	"context"
	stderrors "errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/polycube/pkg/cache"
	"github.com/matzehuels/polycube/pkg/errors"
	"github.com/matzehuels/polycube/pkg/observability"
)

// memoKeyType labels placement memo events in cache hooks.
const memoKeyType = "placements"

// Stats counts the work done by a solver.
type Stats = observability.SearchStats

// PlacementKey identifies the placement list of one piece inside one
// container.
type PlacementKey struct {
	Piece, Container Hash
}

// Solver searches for exact covers. The zero value is ready to use; a Solver
// may run several searches, concurrently or not, and shares its memo among
// them.
type Solver struct {
	// Workers bounds how many placements of the first piece are explored
	// at once. Zero means runtime.GOMAXPROCS(0); 1 searches sequentially.
	Workers int

	// MaxSolutions stops the search once this many distinct solutions were
	// found. Zero means no limit. With Workers > 1 which solutions make the
	// cut depends on scheduling.
	MaxSolutions int

	// Memo caches placement lists. Nil gets an LRU of DefaultMemoCapacity
	// on first use.
	Memo cache.Memo[PlacementKey, []*Block]

	once   sync.Once
	mu     sync.Mutex
	totals Stats
}

// DefaultMemoCapacity is the placement memo size of a zero Solver.
const DefaultMemoCapacity = 4096

// NewSolver returns a Solver with default settings.
func NewSolver() *Solver {
	return &Solver{}
}

func (s *Solver) init() {
	s.once.Do(func() {
		if s.Memo == nil {
			s.Memo = cache.NewMemoryMemo[PlacementKey, []*Block](DefaultMemoCapacity)
		}
	})
}

func (s *Solver) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Stats returns the work done by all searches run so far.
func (s *Solver) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Solve returns every distinct way to tile target with components in order;
// see [Block.WaysToExactlyCover] for the exact contract.
//
// ctx is checked before each placement is expanded. Cancellation returns
// ctx.Err(); an expired deadline returns a TIMEOUT error wrapping it. An
// empty component returns UNDEFINED_GEOMETRY. The returned blocks are owned
// by the caller.
func (s *Solver) Solve(ctx context.Context, target *Block, components []*Block) ([]Solution, error) {
	s.init()
	for i, c := range components {
		if c.IsEmpty() {
			return nil, errors.New(errors.ErrCodeUndefinedGeometry, "component %d is empty", i)
		}
	}

	run := &searchRun{
		id:     uuid.NewString(),
		solver: s,
		found:  make(map[Hash]struct{}),
	}
	hooks := observability.Search()
	hooks.OnSearchStart(ctx, run.id, target.Size(), len(components))
	start := time.Now()

	solutions, err := run.solve(ctx, target, components)

	stats := run.snapshot()
	s.mu.Lock()
	s.totals = s.totals.Add(stats)
	s.mu.Unlock()
	hooks.OnSearchComplete(ctx, run.id, len(solutions), stats, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return solutions, nil
}

// SolveAllOf is [Solver.Solve] for searches that must use every component.
// It returns no solutions without searching when the component voxel
// counts do not add up to the target's.
func (s *Solver) SolveAllOf(ctx context.Context, target *Block, components []*Block) ([]Solution, error) {
	total := 0
	for _, c := range components {
		total += c.Len()
	}
	if total != target.Len() {
		return nil, nil
	}
	return s.Solve(ctx, target, components)
}

// searchRun is the state of one Solve call.
type searchRun struct {
	id     string
	solver *Solver

	nodes, placements, hits, misses atomic.Int64

	mu    sync.Mutex
	found map[Hash]struct{}
	stop  atomic.Bool
}

func (r *searchRun) snapshot() Stats {
	return Stats{
		Nodes:      r.nodes.Load(),
		Placements: r.placements.Load(),
		MemoHits:   r.hits.Load(),
		MemoMisses: r.misses.Load(),
	}
}

// solve fans the placements of the first component out to workers. Each
// branch owns its remainder; results are merged in placement order.
func (r *searchRun) solve(ctx context.Context, target *Block, components []*Block) ([]Solution, error) {
	if len(components) == 0 {
		return nil, nil
	}
	placements, err := r.placementsOf(ctx, components[0], target)
	if err != nil {
		return nil, err
	}

	branches := make([][]Solution, len(placements))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.solver.workers())
	for i, p := range placements {
		g.Go(func() error {
			solutions, err := r.branch(gctx, target, p, components[1:])
			if err != nil {
				return err
			}
			for _, sol := range solutions {
				r.record(gctx, sol)
			}
			branches[i] = solutions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, r.contextError(err)
	}
	return r.merge(branches), nil
}

// branch expands one placement p of the current head inside target.
func (r *searchRun) branch(ctx context.Context, target, p *Block, tail []*Block) ([]Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.stop.Load() {
		return nil, nil
	}
	r.nodes.Add(1)

	if p.EqualsExact(target) {
		return []Solution{{p}}, nil
	}
	rest, err := target.Minus(p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "placement outside its container")
	}
	sub, err := r.cover(ctx, rest, tail)
	if err != nil {
		return nil, err
	}

	out := make([]Solution, 0, len(sub))
	for _, s := range sub {
		sol := make(Solution, 0, len(s)+1)
		sol = append(sol, p)
		out = append(out, append(sol, s...))
	}
	return out, nil
}

// cover is the sequential search below the first level.
func (r *searchRun) cover(ctx context.Context, target *Block, components []*Block) ([]Solution, error) {
	if len(components) == 0 {
		return nil, nil
	}
	placements, err := r.placementsOf(ctx, components[0], target)
	if err != nil {
		return nil, err
	}

	var out []Solution
	seen := make(map[Hash]struct{})
	for _, p := range placements {
		solutions, err := r.branch(ctx, target, p, components[1:])
		if err != nil {
			return nil, err
		}
		for _, sol := range solutions {
			sig := sol.Signature()
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			out = append(out, sol)
		}
	}
	return out, nil
}

func (r *searchRun) placementsOf(ctx context.Context, piece, container *Block) ([]*Block, error) {
	key := PlacementKey{Piece: piece.CanonicalHash(), Container: container.CanonicalHash()}
	memo := r.solver.Memo
	if ps, ok := memo.Get(key); ok {
		r.hits.Add(1)
		observability.Cache().OnCacheHit(ctx, memoKeyType)
		return ps, nil
	}
	r.misses.Add(1)
	observability.Cache().OnCacheMiss(ctx, memoKeyType)

	ps, err := piece.AllPositionsInside(container, true)
	if err != nil {
		return nil, err
	}
	r.placements.Add(int64(len(ps)))
	memo.Set(key, ps)
	observability.Cache().OnCacheSet(ctx, memoKeyType, len(ps))
	return ps, nil
}

// record counts a complete solution and trips the stop flag at MaxSolutions.
func (r *searchRun) record(ctx context.Context, sol Solution) {
	sig := sol.Signature()
	r.mu.Lock()
	_, dup := r.found[sig]
	if !dup {
		r.found[sig] = struct{}{}
	}
	n := len(r.found)
	r.mu.Unlock()
	if dup {
		return
	}

	observability.Search().OnSolution(ctx, r.id, n)
	if limit := r.solver.MaxSolutions; limit > 0 && n >= limit {
		r.stop.Store(true)
	}
}

// merge concatenates branch results, drops repeated signatures and copies
// the survivors so callers never share blocks with the memo.
func (r *searchRun) merge(branches [][]Solution) []Solution {
	limit := r.solver.MaxSolutions
	var out []Solution
	seen := make(map[Hash]struct{})
	for _, solutions := range branches {
		for _, sol := range solutions {
			sig := sol.Signature()
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			out = append(out, sol.Copy())
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}

func (r *searchRun) contextError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "search %s exceeded its deadline", r.id)
	}
	return err
}
