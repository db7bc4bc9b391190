package polycube

import (
	"context"
	"slices"
)

// Solution is one tiling: placed pieces in component order whose union is
// the target.
type Solution []*Block

// Signature identifies the tiling regardless of piece order. It hashes the
// sorted, concatenated canonical hashes of the pieces, so two solutions
// placing the same voxel sets share a signature.
func (s Solution) Signature() Hash {
	hashes := make([]Hash, len(s))
	for i, p := range s {
		hashes[i] = p.CanonicalHash()
	}
	slices.SortFunc(hashes, compareHashes)

	h := newHasher(solutionDomainKey)
	for _, ph := range hashes {
		h.Write(ph[:])
	}
	return sum(h)
}

// Union returns the pieces merged into one block. Overlapping pieces yield
// INVALID_OVERLAP.
func (s Solution) Union() (*Block, error) {
	acc := New()
	for _, p := range s {
		next, err := acc.Plus(p)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// Copy returns a deep copy of s.
func (s Solution) Copy() Solution {
	out := make(Solution, len(s))
	for i, p := range s {
		out[i] = p.Copy()
	}
	return out
}

// WaysToExactlyCover returns every distinct way to tile b with components,
// placed in order. A solution ends as soon as a placement fills what is
// left of b, so trailing components may go unused; an empty component list
// has no solutions.
//
// It runs a default [Solver] without a deadline. Use [Solver.Solve] to bound
// the search with a context.
func (b *Block) WaysToExactlyCover(components []*Block) ([]Solution, error) {
	return NewSolver().Solve(context.Background(), b, components)
}

// WaysToExactlyCoverAllOf is [Block.WaysToExactlyCover] with a pre-check:
// when the voxel counts of components do not add up to b's, there is no
// solution and no search is run.
func (b *Block) WaysToExactlyCoverAllOf(components []*Block) ([]Solution, error) {
	return NewSolver().SolveAllOf(context.Background(), b, components)
}
