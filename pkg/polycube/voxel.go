package polycube

import (
	"cmp"
	"fmt"
	"math"
)

// Voxel is a unit cube at an integer lattice position.
type Voxel struct {
	X, Y, Z int
}

// Add returns v shifted by d.
func (v Voxel) Add(d Voxel) Voxel {
	return Voxel{X: v.X + d.X, Y: v.Y + d.Y, Z: v.Z + d.Z}
}

// Neighbors returns the six face-adjacent positions of v.
func (v Voxel) Neighbors() [6]Voxel {
	return [6]Voxel{
		{v.X - 1, v.Y, v.Z}, {v.X + 1, v.Y, v.Z},
		{v.X, v.Y - 1, v.Z}, {v.X, v.Y + 1, v.Z},
		{v.X, v.Y, v.Z - 1}, {v.X, v.Y, v.Z + 1},
	}
}

func (v Voxel) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// compareVoxels orders voxels by x ascending, then y descending, then z
// ascending. Canonical hashes depend on exactly this order.
func compareVoxels(a, b Voxel) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Y, a.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}

// Coord is an untrusted coordinate triple as read from a file or flag.
// See [FromCoords] for how it becomes a [Voxel].
type Coord struct {
	X, Y, Z float64
}

// Finite reports whether all three components are finite.
func (c Coord) Finite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0) &&
		!math.IsNaN(c.Z) && !math.IsInf(c.Z, 0)
}

// lattice component bounds; float64 represents every integer in this range exactly.
const (
	maxCoord = 1 << 40
	minCoord = -maxCoord
)

func toLattice(f float64) (int, bool) {
	if f != math.Trunc(f) || f > maxCoord || f < minCoord {
		return 0, false
	}
	return int(f), true
}
