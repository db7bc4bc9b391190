package polycube

import (
	"slices"

	"github.com/matzehuels/polycube/pkg/errors"
)

// Block is a rigid shape made of voxels.
//
// The voxel list keeps whatever was passed to [New], duplicates included;
// every set operation treats a repeated voxel as one occupied cell. A nil
// *Block reads as empty.
type Block struct {
	voxels []Voxel
}

// New returns a block holding a copy of voxels.
func New(voxels ...Voxel) *Block {
	return &Block{voxels: slices.Clone(voxels)}
}

// FromCoords builds a block from untrusted coordinates.
//
// Any coord with a NaN or infinite component is silently dropped. A finite
// component that is not an integer, or lies outside ±2^40, is rejected with
// INVALID_INPUT since blocks live on the integer lattice.
func FromCoords(coords []Coord) (*Block, error) {
	b := &Block{voxels: make([]Voxel, 0, len(coords))}
	for i, c := range coords {
		if !c.Finite() {
			continue
		}
		x, okX := toLattice(c.X)
		y, okY := toLattice(c.Y)
		z, okZ := toLattice(c.Z)
		if !okX || !okY || !okZ {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"coordinate %d (%g, %g, %g) is not on the integer lattice", i, c.X, c.Y, c.Z)
		}
		b.voxels = append(b.voxels, Voxel{X: x, Y: y, Z: z})
	}
	return b, nil
}

func (b *Block) list() []Voxel {
	if b == nil {
		return nil
	}
	return b.voxels
}

// Copy returns an independent block with the same voxel list.
func (b *Block) Copy() *Block {
	return New(b.list()...)
}

// Len returns the length of the voxel list, duplicates included.
func (b *Block) Len() int {
	return len(b.list())
}

// Size returns the number of distinct occupied cells.
func (b *Block) Size() int {
	return len(b.set())
}

// IsEmpty reports whether the block has no voxels.
func (b *Block) IsEmpty() bool {
	return b.Len() == 0
}

// Voxels returns a copy of the voxel list in its current order.
func (b *Block) Voxels() []Voxel {
	return slices.Clone(b.list())
}

// Sorted returns the distinct voxels in canonical order: x ascending, then
// y descending, then z ascending. This is also back-to-front drawing order
// for the isometric renderer.
func (b *Block) Sorted() []Voxel {
	out := slices.Clone(b.list())
	slices.SortFunc(out, compareVoxels)
	return slices.Compact(out)
}

// Contains reports whether v is one of the block's voxels.
func (b *Block) Contains(v Voxel) bool {
	return slices.Contains(b.list(), v)
}

// voxelSet is the hash view of a block used by the set algebra.
type voxelSet map[Voxel]struct{}

func (b *Block) set() voxelSet {
	s := make(voxelSet, b.Len())
	for _, v := range b.list() {
		s[v] = struct{}{}
	}
	return s
}

func (b *Block) within(s voxelSet) bool {
	for _, v := range b.list() {
		if _, ok := s[v]; !ok {
			return false
		}
	}
	return true
}

func (b *Block) touches(s voxelSet) bool {
	for _, v := range b.list() {
		if _, ok := s[v]; ok {
			return true
		}
	}
	return false
}

// distinct returns the voxel list with repeats removed, first occurrence wins.
func (b *Block) distinct() []Voxel {
	seen := make(voxelSet, b.Len())
	out := make([]Voxel, 0, b.Len())
	for _, v := range b.list() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// IsSubsetOf reports whether every voxel of b is in outer.
// An empty block is a subset of anything.
func (b *Block) IsSubsetOf(outer *Block) bool {
	return b.within(outer.set())
}

// IsDisjointFrom reports whether b and other share no voxel.
// An empty block is disjoint from anything.
func (b *Block) IsDisjointFrom(other *Block) bool {
	return !b.touches(other.set())
}

// Minus returns the voxels of b that are not in inner, as a new block.
// inner must be a subset of b, otherwise INVALID_OVERLAP is returned.
func (b *Block) Minus(inner *Block) (*Block, error) {
	if !inner.IsSubsetOf(b) {
		return nil, errors.New(errors.ErrCodeInvalidOverlap,
			"minus: block of %d voxels is not contained in block of %d voxels", inner.Size(), b.Size())
	}
	drop := inner.set()
	out := &Block{voxels: make([]Voxel, 0, b.Len())}
	for _, v := range b.distinct() {
		if _, ok := drop[v]; !ok {
			out.voxels = append(out.voxels, v)
		}
	}
	return out, nil
}

// Plus returns the union of b and other as a new block.
// The blocks must be disjoint, otherwise INVALID_OVERLAP is returned.
func (b *Block) Plus(other *Block) (*Block, error) {
	if !b.IsDisjointFrom(other) {
		return nil, errors.New(errors.ErrCodeInvalidOverlap,
			"plus: blocks of %d and %d voxels overlap", b.Size(), other.Size())
	}
	out := &Block{voxels: make([]Voxel, 0, b.Len()+other.Len())}
	out.voxels = append(out.voxels, b.distinct()...)
	out.voxels = append(out.voxels, other.distinct()...)
	return out, nil
}

// EqualsExact reports whether b and other occupy exactly the same cells,
// with no translation or rotation allowed.
func (b *Block) EqualsExact(other *Block) bool {
	if !other.IsSubsetOf(b) {
		return false
	}
	// other ⊆ b, so b − other is empty iff b ⊆ other.
	return b.IsSubsetOf(other)
}

// Translate shifts every voxel by (dx, dy, dz) in place and returns b.
func (b *Block) Translate(dx, dy, dz int) *Block {
	d := Voxel{X: dx, Y: dy, Z: dz}
	for i, v := range b.voxels {
		b.voxels[i] = v.Add(d)
	}
	return b
}

// BoundingBox is the smallest axis-aligned box containing a block.
// Bounds are inclusive.
type BoundingBox struct {
	XMin, XMax int
	YMin, YMax int
	ZMin, ZMax int
}

// BoundingBox returns the block's bounds, or UNDEFINED_GEOMETRY when the
// block is empty.
func (b *Block) BoundingBox() (BoundingBox, error) {
	vs := b.list()
	if len(vs) == 0 {
		return BoundingBox{}, errors.New(errors.ErrCodeUndefinedGeometry, "bounding box of an empty block")
	}
	bb := BoundingBox{
		XMin: vs[0].X, XMax: vs[0].X,
		YMin: vs[0].Y, YMax: vs[0].Y,
		ZMin: vs[0].Z, ZMax: vs[0].Z,
	}
	for _, v := range vs[1:] {
		bb.XMin, bb.XMax = min(bb.XMin, v.X), max(bb.XMax, v.X)
		bb.YMin, bb.YMax = min(bb.YMin, v.Y), max(bb.YMax, v.Y)
		bb.ZMin, bb.ZMax = min(bb.ZMin, v.Z), max(bb.ZMax, v.Z)
	}
	return bb, nil
}

// Dims returns the box extent along each axis.
func (bb BoundingBox) Dims() (w, h, d int) {
	return bb.XMax - bb.XMin + 1, bb.YMax - bb.YMin + 1, bb.ZMax - bb.ZMin + 1
}

// Contains reports whether v lies inside the box.
func (bb BoundingBox) Contains(v Voxel) bool {
	return v.X >= bb.XMin && v.X <= bb.XMax &&
		v.Y >= bb.YMin && v.Y <= bb.YMax &&
		v.Z >= bb.ZMin && v.Z <= bb.ZMax
}

// Union returns the smallest box containing both bb and o.
func (bb BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		XMin: min(bb.XMin, o.XMin), XMax: max(bb.XMax, o.XMax),
		YMin: min(bb.YMin, o.YMin), YMax: max(bb.YMax, o.YMax),
		ZMin: min(bb.ZMin, o.ZMin), ZMax: max(bb.ZMax, o.ZMax),
	}
}
