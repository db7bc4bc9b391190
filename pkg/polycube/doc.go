// Package polycube models rigid sets of unit cubes on the integer lattice and
// searches for the ways a list of pieces can exactly tile a target shape.
//
// # Blocks
//
// A [Block] is a set of [Voxel] positions. Two families of operations exist
// and they differ in ownership:
//
//   - Geometric transforms ([Block.Translate], [Block.RotateXY],
//     [Block.RotateXZ], [Block.RotateYZ], [Block.Rotate]) mutate the receiver
//     in place and return it, so calls chain builder-style. Call [Block.Copy]
//     first when the original must survive.
//   - Set algebra ([Block.Plus], [Block.Minus], [Block.Copy]) never touches
//     its operands and returns a new, independently owned block.
//
// Plus requires disjoint operands and Minus requires the argument to be a
// subset of the receiver; violations return an INVALID_OVERLAP error from
// the errors package. Asking an empty block for its bounding box returns
// UNDEFINED_GEOMETRY.
//
// # Identity
//
// [Block.CanonicalHash] is an order-independent BLAKE3 digest of the distinct
// voxels. Equal hashes mean identical voxel sets; it says nothing about
// congruence. [Block.CongruentTo] answers the rotation+translation question.
//
// # Rotations
//
// Quarter turns about the three axes generate the 24 proper rotations of the
// cube. Enumerating 4×4×4 tick triples visits each rotation several times;
// [Rotations] returns the deduplicated table.
//
// # Tiling
//
// [Block.AllPositionsInside] lists every distinct placement of a piece inside
// a container. [Solver] builds on it to find every way of covering a target
// with the given pieces, used in order:
//
//	cube := polycube.New(...)
//	solutions, err := cube.WaysToExactlyCover([]*polycube.Block{o, o})
//
// A solution is recorded as soon as a placement fills the remaining target
// exactly, so it may use only a prefix of the pieces. Use
// [Block.WaysToExactlyCoverAllOf] to require every piece.
package polycube
