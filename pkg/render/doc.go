// Package render holds output helpers shared by the polycube renderers.
//
// # Overview
//
// Rendering is split by output style:
//
//   - [text]: plain-text slice dumps for terminals and logs
//   - [iso]: isometric SVG drawings of blocks and solutions
//   - [contact]: Graphviz contact graphs of solutions
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). When the tool is missing
// they return an UNSUPPORTED error.
//
//	svg := iso.RenderSVG(block)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [text]: github.com/matzehuels/polycube/pkg/render/text
// [iso]: github.com/matzehuels/polycube/pkg/render/iso
// [contact]: github.com/matzehuels/polycube/pkg/render/contact
package render
