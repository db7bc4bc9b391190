// Package io reads puzzle definitions and exports blocks and solutions.
//
// # Puzzle Files
//
// Puzzles are TOML documents naming a target and an ordered list of pieces:
//
//	name = "cube2"
//	all_of = false
//
//	[target]
//	shape = "cube2"
//
//	[[pieces]]
//	shape = "Tripod"
//	count = 2
//
//	[[pieces]]
//	name = "bar"
//	voxels = [[0, 0, 0], [1, 0, 0], [2, 0, 0]]
//
// Each section gives either a catalog shape (see the shapes package) or
// explicit voxels. Voxel coordinates may be written as floats; a triple
// containing nan or inf is dropped, while a finite fraction is an error.
// count repeats a piece in place, so the list above searches with
// [Tripod, Tripod, bar]. With all_of set, every piece must be used.
//
// Use [LoadPuzzle] to read a file, or [ReadPuzzle] to read from any
// io.Reader.
//
// # JSON
//
// [WriteBlockJSON] and [ReadBlockJSON] encode a single block:
//
//	{"name": "O", "hash": "…", "voxels": [[0, 1, 0], [0, 0, 0], …]}
//
// [WriteSolutionsJSON] exports a whole search result: the target, the
// solution count, and per solution its signature and named pieces. Voxels
// are always listed in canonical order so equal blocks encode identically.
package io
