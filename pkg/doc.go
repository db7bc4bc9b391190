// Package pkg provides the libraries behind the polycube tiling tool.
//
// # Overview
//
// Polycube answers one question: in how many ways can an ordered list of
// pieces, each free to rotate, fill a target shape exactly? Shapes are
// finite sets of unit voxels on the integer lattice. The pkg directory is
// organized into three areas:
//
//  1. [polycube] - Domain logic (blocks, rotations, placements, the solver)
//  2. Support - [errors], [cache], [observability], [shapes], [io]
//  3. [render] - Text, isometric SVG and contact-graph output
//
// # Architecture
//
// The typical data flow:
//
//	Puzzle file or catalog names
//	         ↓
//	    [io] / [shapes] (build target and pieces)
//	         ↓
//	    [polycube] Solver (exact-cover search)
//	         ↓
//	    [render] (text, SVG, PNG, DOT)
//
// The core never imports io, shapes or render.
//
// # Quick Start
//
// Count the tilings of a 2×2×2 cube by two branch tetracubes:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/polycube/pkg/polycube"
//	    "github.com/matzehuels/polycube/pkg/shapes"
//	)
//
//	cube, _ := shapes.Lookup("cube2")
//	tripod, _ := shapes.Lookup("Tripod")
//
//	s := polycube.NewSolver()
//	sols, _ := s.Solve(context.Background(), cube, []*polycube.Block{tripod, tripod.Copy()})
//	fmt.Println(len(sols)) // 4
//
// # Main Packages
//
// [polycube] - Voxels, blocks and their set algebra, the 24 cube rotations,
// canonical hashing, placement enumeration, congruence and the concurrent
// exact-cover [polycube.Solver].
//
// [shapes] - The named catalog: the eight tetracubes, the unit cube and
// generated cubeN / boxWxHxD shapes.
//
// [io] - TOML puzzle files and JSON encoding of blocks and solution sets.
//
// [cache] - Typed memo stores used by the solver for placement lists.
//
// [observability] - Hooks for search and memo events. The CLI registers a
// logging implementation; libraries only call hooks.
//
// [errors] - Structured error codes shared by every package.
//
// [render/text] - Slice-by-slice text dumps.
//
// [render/iso] - Pseudo-isometric SVG drawings, with PNG/PDF conversion.
//
// [render/contact] - Which pieces of a solution touch, as Graphviz graphs.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/polycube/... # Specific package
//	go test -run Example       # Examples only
//
// [polycube]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/polycube
// [polycube.Solver]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/polycube#Solver
// [shapes]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/shapes
// [io]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/errors
// [render]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/render
// [render/text]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/render/text
// [render/iso]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/render/iso
// [render/contact]: https://pkg.go.dev/github.com/matzehuels/polycube/pkg/render/contact
package pkg
