// Package iso draws blocks as pseudo-isometric SVG images.
//
// Every voxel is drawn as two offset squares, a back face and a front face,
// joined by four side faces. Higher z slices are shifted left and down by a
// few percent of the canvas so depth reads at a glance. Voxels are painted
// in canonical order (x ascending, y descending, z ascending) and the faces
// of each voxel back, bottom, left, right, top, front, which is enough for
// later voxels to cover the hidden faces of earlier ones.
package iso

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/render"
)

const (
	// DefaultSize is the canvas edge in pixels.
	DefaultSize = 250

	// fill is the share of a lattice cell a drawn cube spans.
	fill = 0.9

	// Per-z shift as a share of the canvas.
	depthShiftX = 0.02
	depthShiftY = 0.01
)

// Faces holds the fill colour of each cube face.
type Faces struct {
	Back, Bottom, Left, Right, Top, Front string
}

// DefaultFaces is the grey-green scheme used for single blocks.
var DefaultFaces = Faces{
	Back:   "#000000",
	Bottom: "#0000FF",
	Left:   "#00FF00",
	Right:  "#778877",
	Top:    "#AABBAA",
	Front:  "#CCDDCC",
}

// piecePalette tints the visible faces of successive solution pieces.
var piecePalette = []struct{ right, top, front string }{
	{"#778877", "#AABBAA", "#CCDDCC"},
	{"#886f5a", "#c9a27e", "#e8c9a8"},
	{"#5a6f88", "#7ea2c9", "#a8c9e8"},
	{"#885a7b", "#c97eb4", "#e8a8d6"},
	{"#7b885a", "#b4c97e", "#d6e8a8"},
	{"#5a8882", "#7ec9bf", "#a8e8df"},
	{"#88805a", "#c9bb7e", "#e8dca8"},
	{"#6a5a88", "#957ec9", "#bba8e8"},
}

// PieceFaces returns the face colours for the i-th piece of a solution.
func PieceFaces(i int) Faces {
	p := piecePalette[i%len(piecePalette)]
	f := DefaultFaces
	f.Right, f.Top, f.Front = p.right, p.top, p.front
	return f
}

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	size  int
	faces Faces
}

// WithSize sets the canvas edge in pixels (default [DefaultSize]).
func WithSize(px int) Option {
	return func(r *renderer) {
		if px > 0 {
			r.size = px
		}
	}
}

// WithFaces overrides the face colours of a single-block drawing.
func WithFaces(f Faces) Option { return func(r *renderer) { r.faces = f } }

func newRenderer(opts ...Option) renderer {
	r := renderer{size: DefaultSize, faces: DefaultFaces}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws b. An empty block yields an empty canvas.
func RenderSVG(b *polycube.Block, opts ...Option) []byte {
	r := newRenderer(opts...)
	cubes := make([]cube, 0, b.Len())
	for _, v := range b.Sorted() {
		cubes = append(cubes, cube{v: v, piece: -1, faces: r.faces})
	}
	bb, err := b.BoundingBox()
	return r.render(cubes, bb, err == nil)
}

// RenderSolutionSVG draws every piece of sol in one picture, each piece
// tinted with [PieceFaces]. Overlapping pieces are drawn as given; later
// pieces win.
func RenderSolutionSVG(sol polycube.Solution, opts ...Option) []byte {
	r := newRenderer(opts...)
	owner := make(map[polycube.Voxel]int)
	var voxels []polycube.Voxel
	for i, p := range sol {
		for _, v := range p.Voxels() {
			voxels = append(voxels, v)
			owner[v] = i
		}
	}
	all := polycube.New(voxels...)

	var cubes []cube
	for _, v := range all.Sorted() {
		i := owner[v]
		cubes = append(cubes, cube{v: v, piece: i, faces: PieceFaces(i)})
	}
	bb, err := all.BoundingBox()
	return r.render(cubes, bb, err == nil)
}

// RenderPNG draws b and converts it with [render.ToPNG].
func RenderPNG(ctx context.Context, b *polycube.Block, scale float64, opts ...Option) ([]byte, error) {
	return render.ToPNG(ctx, RenderSVG(b, opts...), scale)
}

// RenderPDF draws b and converts it with [render.ToPDF].
func RenderPDF(ctx context.Context, b *polycube.Block, opts ...Option) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(b, opts...))
}

type cube struct {
	v     polycube.Voxel
	piece int
	faces Faces
}

type point struct{ x, y float64 }

// projection maps lattice coordinates onto the canvas.
type projection struct {
	xMin, yMin, zMin, zMax float64
	span, size             float64
}

func newProjection(bb polycube.BoundingBox, size int) projection {
	p := projection{
		xMin: float64(bb.XMin - 1),
		yMin: float64(bb.YMin - 1),
		zMin: float64(bb.ZMin - 1),
		zMax: float64(bb.ZMax),
		size: float64(size),
	}
	width := float64(bb.XMax) - p.xMin + 1
	height := float64(bb.YMax) - p.yMin + 1
	p.span = max(width, height)
	return p
}

func (p projection) pixel(x, y, z float64) point {
	px := (x - p.xMin) / p.span * p.size
	py := (y - p.yMin) / p.span * p.size
	dz := 2*z - p.zMin - p.zMax
	return point{
		x: px - p.size*dz*depthShiftX,
		y: py + p.size*dz*depthShiftY,
	}
}

func (p projection) cubeSize() float64 {
	return p.size / p.span * fill
}

// corners returns the back square (0..3) then the front square (4..7),
// each ordered top-left, top-right, bottom-left, bottom-right.
func (p projection) corners(v polycube.Voxel) [8]point {
	s := p.cubeSize()
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	var c [8]point
	square := func(at point, base int) {
		c[base] = point{at.x - s/2, at.y - s/2}
		c[base+1] = point{c[base].x + s, c[base].y}
		c[base+2] = point{c[base].x, c[base].y + s}
		c[base+3] = point{c[base].x + s, c[base].y + s}
	}
	square(p.pixel(x, y, z-(2+fill)/3), 0)
	square(p.pixel(x, y, z), 4)
	return c
}

func (r renderer) render(cubes []cube, bb polycube.BoundingBox, ok bool) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.size, r.size, r.size, r.size)
	if ok {
		proj := newProjection(bb, r.size)
		for _, c := range cubes {
			writeCube(&buf, proj.corners(c.v), c)
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeCube(buf *bytes.Buffer, p [8]point, c cube) {
	if c.piece >= 0 {
		fmt.Fprintf(buf, `  <g class="voxel" data-piece="%d" data-voxel="%d,%d,%d">`+"\n", c.piece, c.v.X, c.v.Y, c.v.Z)
	} else {
		fmt.Fprintf(buf, `  <g class="voxel" data-voxel="%d,%d,%d">`+"\n", c.v.X, c.v.Y, c.v.Z)
	}
	writeFace(buf, c.faces.Back, p[0], p[1], p[3], p[2])
	writeFace(buf, c.faces.Bottom, p[2], p[3], p[7], p[6])
	writeFace(buf, c.faces.Left, p[0], p[2], p[6], p[4])
	writeFace(buf, c.faces.Right, p[1], p[3], p[7], p[5])
	writeFace(buf, c.faces.Top, p[0], p[1], p[5], p[4])
	writeFace(buf, c.faces.Front, p[4], p[5], p[7], p[6])
	buf.WriteString("  </g>\n")
}

func writeFace(buf *bytes.Buffer, color string, a, b, c, d point) {
	fmt.Fprintf(buf, `    <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
		a.x, a.y, b.x, b.y, c.x, c.y, d.x, d.y, color)
}
