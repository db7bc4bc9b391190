package polycube

import "github.com/matzehuels/polycube/pkg/errors"

// AllPositionsInside returns every distinct placement of b whose voxels all
// lie in outer. Each placement is a new block.
//
// With rotate false only translations are tried: offsets range over the
// positions that keep b's bounding box inside outer's, scanning z, then y,
// then x. With rotate true the same scan runs for every orientation of b and
// placements are deduplicated by [Block.CanonicalHash], keeping the first.
//
// An empty b has no bounding box and yields UNDEFINED_GEOMETRY. An empty
// outer has room for nothing and yields no placements.
func (b *Block) AllPositionsInside(outer *Block, rotate bool) ([]*Block, error) {
	if b.IsEmpty() {
		return nil, errors.New(errors.ErrCodeUndefinedGeometry, "placements of an empty block")
	}
	outerBox, err := outer.BoundingBox()
	if err != nil {
		return nil, nil
	}
	outerSet := outer.set()

	if !rotate {
		return b.translationsInside(outerBox, outerSet), nil
	}

	var out []*Block
	seen := make(map[Hash]struct{})
	for _, o := range b.orientations() {
		for _, p := range o.translationsInside(outerBox, outerSet) {
			h := p.CanonicalHash()
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, p)
		}
	}
	return out, nil
}

// translationsInside scans the offsets that keep b's bounding box within
// outerBox and keeps those whose voxels are all in outerSet. b must not be
// empty.
func (b *Block) translationsInside(outerBox BoundingBox, outerSet voxelSet) []*Block {
	box, _ := b.BoundingBox()
	var out []*Block
	for dz := outerBox.ZMin - box.ZMin; dz <= outerBox.ZMax-box.ZMax; dz++ {
		for dy := outerBox.YMin - box.YMin; dy <= outerBox.YMax-box.YMax; dy++ {
			for dx := outerBox.XMin - box.XMin; dx <= outerBox.XMax-box.XMax; dx++ {
				if b.fitsAt(Voxel{X: dx, Y: dy, Z: dz}, outerSet) {
					out = append(out, b.Copy().Translate(dx, dy, dz))
				}
			}
		}
	}
	return out
}

func (b *Block) fitsAt(d Voxel, outerSet voxelSet) bool {
	for _, v := range b.voxels {
		if _, ok := outerSet[v.Add(d)]; !ok {
			return false
		}
	}
	return true
}

// CongruentTo reports whether other is b moved by some rotation and
// translation. Voxel list lengths must match; then b must fit inside other
// in exactly one distinct placement. Two empty blocks are congruent.
func (b *Block) CongruentTo(other *Block) bool {
	if b.Len() != other.Len() {
		return false
	}
	if b.IsEmpty() {
		return true
	}
	placements, err := b.AllPositionsInside(other, true)
	return err == nil && len(placements) == 1
}
