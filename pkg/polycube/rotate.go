package polycube

import (
	"fmt"
	"slices"
	"sync"
)

// quarterTurns is the number of ticks in a full turn about one axis.
const quarterTurns = 4

// normTicks reduces ticks to 0..3; negative ticks turn the other way.
func normTicks(ticks int) int {
	return ((ticks % quarterTurns) + quarterTurns) % quarterTurns
}

// Unit quarter turns. XY turns about z, XZ about y, YZ about x; each is
// clockwise when viewed from the positive end of its axis.
func tickXY(v Voxel) Voxel { return Voxel{X: v.Y, Y: -v.X, Z: v.Z} }
func tickXZ(v Voxel) Voxel { return Voxel{X: v.Z, Y: v.Y, Z: -v.X} }
func tickYZ(v Voxel) Voxel { return Voxel{X: v.X, Y: -v.Z, Z: v.Y} }

func (b *Block) turn(tick func(Voxel) Voxel, ticks int) *Block {
	for range normTicks(ticks) {
		for i, v := range b.voxels {
			b.voxels[i] = tick(v)
		}
	}
	return b
}

// RotateXY applies ticks quarter turns in the XY plane, in place, and returns b.
func (b *Block) RotateXY(ticks int) *Block { return b.turn(tickXY, ticks) }

// RotateXZ applies ticks quarter turns in the XZ plane, in place, and returns b.
func (b *Block) RotateXZ(ticks int) *Block { return b.turn(tickXZ, ticks) }

// RotateYZ applies ticks quarter turns in the YZ plane, in place, and returns b.
func (b *Block) RotateYZ(ticks int) *Block { return b.turn(tickYZ, ticks) }

// Ticks is a composition of quarter turns: first XY, then XZ, then YZ.
type Ticks struct {
	XY, XZ, YZ int
}

func (t Ticks) String() string {
	return fmt.Sprintf("xy=%d xz=%d yz=%d", t.XY, t.XZ, t.YZ)
}

// TickTriples returns all 64 tick compositions in search order: XY outermost,
// YZ innermost. Several triples realise the same rotation.
func TickTriples() []Ticks {
	out := make([]Ticks, 0, quarterTurns*quarterTurns*quarterTurns)
	for xy := range quarterTurns {
		for xz := range quarterTurns {
			for yz := range quarterTurns {
				out = append(out, Ticks{XY: xy, XZ: xz, YZ: yz})
			}
		}
	}
	return out
}

// Rotation is a proper rotation of the lattice, stored as an integer matrix.
type Rotation struct {
	// Ticks is the first triple in [TickTriples] order that realises
	// this rotation.
	Ticks Ticks
	m     [3][3]int
}

// RotationOf returns the rotation realised by t.
func RotationOf(t Ticks) Rotation {
	basis := [3]Voxel{{X: 1}, {Y: 1}, {Z: 1}}
	r := Rotation{Ticks: t}
	for col, v := range basis {
		for range normTicks(t.XY) {
			v = tickXY(v)
		}
		for range normTicks(t.XZ) {
			v = tickXZ(v)
		}
		for range normTicks(t.YZ) {
			v = tickYZ(v)
		}
		r.m[0][col], r.m[1][col], r.m[2][col] = v.X, v.Y, v.Z
	}
	return r
}

// Apply returns v rotated by r.
func (r Rotation) Apply(v Voxel) Voxel {
	return Voxel{
		X: r.m[0][0]*v.X + r.m[0][1]*v.Y + r.m[0][2]*v.Z,
		Y: r.m[1][0]*v.X + r.m[1][1]*v.Y + r.m[1][2]*v.Z,
		Z: r.m[2][0]*v.X + r.m[2][1]*v.Y + r.m[2][2]*v.Z,
	}
}

// Matrix returns the rotation matrix (rows).
func (r Rotation) Matrix() [3][3]int { return r.m }

// Same reports whether r and o are the same rotation, however reached.
func (r Rotation) Same(o Rotation) bool { return r.m == o.m }

// IsIdentity reports whether r leaves every voxel in place.
func (r Rotation) IsIdentity() bool {
	return r.m == [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (r Rotation) String() string { return r.Ticks.String() }

// Rotate applies r to every voxel in place and returns b.
func (b *Block) Rotate(r Rotation) *Block {
	for i, v := range b.voxels {
		b.voxels[i] = r.Apply(v)
	}
	return b
}

var rotationTable = sync.OnceValue(func() []Rotation {
	var out []Rotation
	seen := make(map[[3][3]int]struct{})
	for _, t := range TickTriples() {
		r := RotationOf(t)
		if _, ok := seen[r.m]; ok {
			continue
		}
		seen[r.m] = struct{}{}
		out = append(out, r)
	}
	return out
})

// Rotations returns the 24 proper rotations of the cube in first-reached
// [TickTriples] order. The identity comes first.
func Rotations() []Rotation {
	return slices.Clone(rotationTable())
}

// Normalize translates b in place so its bounding box starts at the origin
// and returns b. Empty blocks are left alone.
func (b *Block) Normalize() *Block {
	bb, err := b.BoundingBox()
	if err != nil {
		return b
	}
	return b.Translate(-bb.XMin, -bb.YMin, -bb.ZMin)
}

// orientations returns one rotated copy of b per distinct shape, where
// shapes equal up to translation count once. Order follows [Rotations].
func (b *Block) orientations() []*Block {
	var out []*Block
	seen := make(map[Hash]struct{})
	for _, r := range rotationTable() {
		o := b.Copy().Rotate(r)
		key := o.Copy().Normalize().CanonicalHash()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, o)
	}
	return out
}

// Orientations returns the distinct orientations of b, each normalized to
// the origin. A shape with no rotational symmetry has 24.
func (b *Block) Orientations() []*Block {
	out := b.orientations()
	for _, o := range out {
		o.Normalize()
	}
	return out
}
