package contact

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/render"
	"github.com/matzehuels/polycube/pkg/render/iso"
)

// Options configures contact graph rendering.
type Options struct {
	// Labels names the pieces; piece i is labelled Labels[i], or "piece i"
	// when missing.
	Labels []string

	// Detailed adds each piece's voxel count to its node and the number of
	// shared faces to each edge.
	Detailed bool
}

// ToDOT converts the contacts of sol to an undirected Graphviz graph. Nodes
// are filled with the piece's front colour from the isometric renderer so
// the two pictures can be read side by side.
func ToDOT(sol polycube.Solution, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=20, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for i, p := range sol {
		attrs := []string{
			fmt.Sprintf("label=%q", nodeLabel(i, p, opts)),
			fmt.Sprintf("fillcolor=%q", iso.PieceFaces(i).Front),
		}
		fmt.Fprintf(&buf, "  p%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range Contacts(sol) {
		if opts.Detailed {
			fmt.Fprintf(&buf, "  p%d -- p%d [label=\"%d\", penwidth=%d];\n", e.A, e.B, e.Faces, min(e.Faces, 6))
		} else {
			fmt.Fprintf(&buf, "  p%d -- p%d [penwidth=%d];\n", e.A, e.B, min(e.Faces, 6))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(i int, p *polycube.Block, opts Options) string {
	label := fmt.Sprintf("piece %d", i)
	if i < len(opts.Labels) && opts.Labels[i] != "" {
		label = opts.Labels[i]
	}
	if opts.Detailed {
		label += fmt.Sprintf("\n%d voxels", p.Size())
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing starts at the
// origin and scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
