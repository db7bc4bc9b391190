// Package contact renders the contact graph of a tiling.
//
// # Overview
//
// Each piece of a [polycube.Solution] becomes a node; two nodes are joined
// when their pieces share at least one unit face. Edge weight is the number
// of shared faces, so a thick edge marks pieces that interlock along a wide
// seam. Pieces touching only at an edge or a corner are not joined.
//
// # Usage
//
//	dot := contact.ToDOT(sol, contact.Options{Labels: names, Detailed: true})
//	svg, err := contact.RenderSVG(ctx, dot)
//
// [Contacts] exposes the graph itself for callers that want to inspect it
// rather than draw it.
//
// # Dependencies
//
// SVG output uses github.com/goccy/go-graphviz, which embeds Graphviz as a
// WebAssembly module; no system installation is needed. PNG output also
// needs rsvg-convert (see [render.ToPNG]).
package contact
