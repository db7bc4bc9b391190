// Package shapes is a catalog of named polycubes: the eight tetracubes, the
// unit cube, and generated cubes and boxes.
//
// Names are matched case-insensitively. Besides the fixed entries, "cubeN"
// resolves to an N×N×N cube and "boxWxHxD" to a W×H×D box, each with its
// minimum corner at the origin:
//
//	o, _ := shapes.Lookup("O")
//	target, _ := shapes.Lookup("box2x4x1")
//	solutions, _ := target.WaysToExactlyCover([]*polycube.Block{o, o})
//
// Every lookup returns a fresh block the caller may mutate.
package shapes

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/polycube/pkg/errors"
	"github.com/matzehuels/polycube/pkg/polycube"
)

// Shape is a catalog entry.
type Shape struct {
	Name        string
	Description string
	Voxels      []polycube.Voxel
}

// Block returns a new block holding the shape's voxels.
func (s Shape) Block() *polycube.Block {
	return polycube.New(s.Voxels...)
}

func v(x, y, z int) polycube.Voxel { return polycube.Voxel{X: x, Y: y, Z: z} }

var catalog = []Shape{
	{"I", "straight tetracube", []polycube.Voxel{v(-1, 0, 0), v(0, 0, 0), v(1, 0, 0), v(2, 0, 0)}},
	{"O", "square tetracube", []polycube.Voxel{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0), v(1, 1, 0)}},
	{"L", "L tetracube", []polycube.Voxel{v(-1, 0, 0), v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)}},
	{"T", "T tetracube", []polycube.Voxel{v(-1, 0, 0), v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)}},
	{"N", "skew tetracube", []polycube.Voxel{v(-1, 0, 0), v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)}},
	{"TowerL", "left-handed screw tetracube", []polycube.Voxel{v(0, 0, 0), v(-1, 0, 0), v(0, 1, 0), v(-1, 0, 1)}},
	{"TowerR", "right-handed screw tetracube", []polycube.Voxel{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0), v(1, 0, 1)}},
	{"Tripod", "branch tetracube", []polycube.Voxel{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0), v(0, 0, 1)}},
	{"Unit", "single voxel", []polycube.Voxel{v(0, 0, 0)}},
}

var (
	cubePattern = regexp.MustCompile(`^cube([0-9]+)$`)
	boxPattern  = regexp.MustCompile(`^box([0-9]+)x([0-9]+)x([0-9]+)$`)
)

// Catalog returns the fixed catalog entries in display order.
func Catalog() []Shape {
	out := make([]Shape, len(catalog))
	for i, s := range catalog {
		out[i] = Shape{Name: s.Name, Description: s.Description, Voxels: slices.Clone(s.Voxels)}
	}
	return out
}

// Names returns the fixed catalog names in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}

// Tetracubes returns the eight tetracubes as fresh blocks, in catalog order.
func Tetracubes() []*polycube.Block {
	out := make([]*polycube.Block, 0, 8)
	for _, s := range catalog[:8] {
		out = append(out, s.Block())
	}
	return out
}

// Lookup resolves name to a new block. Unknown names return NOT_FOUND;
// malformed names and out-of-range dimensions return INVALID_SHAPE.
func Lookup(name string) (*polycube.Block, error) {
	if err := errors.ValidateShapeName(name); err != nil {
		return nil, err
	}
	lower := strings.ToLower(name)
	for _, s := range catalog {
		if strings.ToLower(s.Name) == lower {
			return s.Block(), nil
		}
	}

	if m := cubePattern.FindStringSubmatch(lower); m != nil {
		n, err := edge(m[1])
		if err != nil {
			return nil, err
		}
		return Cube(n)
	}
	if m := boxPattern.FindStringSubmatch(lower); m != nil {
		dims := make([]int, 3)
		for i, s := range m[1:] {
			n, err := edge(s)
			if err != nil {
				return nil, err
			}
			dims[i] = n
		}
		return Box(dims[0], dims[1], dims[2])
	}
	return nil, errors.New(errors.ErrCodeNotFound, "unknown shape %q (available: %s, cubeN, boxWxHxD)",
		name, strings.Join(Names(), ", "))
}

func edge(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidShape, err, "bad dimension %q", s)
	}
	return n, nil
}

// Cube returns an n×n×n cube.
func Cube(n int) (*polycube.Block, error) {
	return Box(n, n, n)
}

// Box returns a w×h×d box with voxels listed x-major.
func Box(w, h, d int) (*polycube.Block, error) {
	for _, n := range []int{w, h, d} {
		if err := errors.ValidateBoxEdge(n); err != nil {
			return nil, err
		}
	}
	voxels := make([]polycube.Voxel, 0, w*h*d)
	for x := range w {
		for y := range h {
			for z := range d {
				voxels = append(voxels, v(x, y, z))
			}
		}
	}
	return polycube.New(voxels...), nil
}
