package contact

import (
	"cmp"
	"slices"

	"github.com/matzehuels/polycube/pkg/polycube"
)

// Edge records that pieces A and B (A < B) touch across Faces unit faces.
type Edge struct {
	A, B  int
	Faces int
}

// Contacts returns the face contacts between the pieces of sol, ordered by
// (A, B). Pieces that only meet at an edge or a corner do not touch. A voxel
// claimed by several pieces belongs to the last one.
func Contacts(sol polycube.Solution) []Edge {
	owner := make(map[polycube.Voxel]int)
	for i, p := range sol {
		for _, v := range p.Voxels() {
			owner[v] = i
		}
	}

	counts := make(map[[2]int]int)
	for v, i := range owner {
		// Only the positive neighbours, so each shared face counts once.
		for _, n := range [3]polycube.Voxel{
			{X: v.X + 1, Y: v.Y, Z: v.Z},
			{X: v.X, Y: v.Y + 1, Z: v.Z},
			{X: v.X, Y: v.Y, Z: v.Z + 1},
		} {
			j, ok := owner[n]
			if !ok || j == i {
				continue
			}
			counts[[2]int{min(i, j), max(i, j)}]++
		}
	}

	edges := make([]Edge, 0, len(counts))
	for k, n := range counts {
		edges = append(edges, Edge{A: k[0], B: k[1], Faces: n})
	}
	slices.SortFunc(edges, func(x, y Edge) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})
	return edges
}
