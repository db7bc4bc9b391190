package io

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/polycube/pkg/errors"
	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/shapes"
)

// Puzzle is a decoded puzzle file: a target and an ordered piece list.
type Puzzle struct {
	Name   string
	AllOf  bool
	Target *polycube.Block

	// Pieces holds one block per copy, counts already expanded.
	// PieceNames[i] labels Pieces[i].
	Pieces     []*polycube.Block
	PieceNames []string
}

// Solve runs the search the puzzle describes.
func (p *Puzzle) Solve(ctx context.Context, s *polycube.Solver) ([]polycube.Solution, error) {
	if p.AllOf {
		return s.SolveAllOf(ctx, p.Target, p.Pieces)
	}
	return s.Solve(ctx, p.Target, p.Pieces)
}

type puzzleFile struct {
	Name   string      `toml:"name"`
	AllOf  bool        `toml:"all_of"`
	Target shapeSpec   `toml:"target"`
	Pieces []pieceSpec `toml:"pieces"`
}

type shapeSpec struct {
	Shape  string      `toml:"shape"`
	Voxels [][]float64 `toml:"voxels"`
}

type pieceSpec struct {
	Name   string      `toml:"name"`
	Shape  string      `toml:"shape"`
	Voxels [][]float64 `toml:"voxels"`
	Count  int         `toml:"count"`
}

// ReadPuzzle decodes a TOML puzzle from r.
//
// The target and each piece name either a catalog shape (see
// [shapes.Lookup]) or list explicit voxels; nan and inf coordinates are
// dropped. A piece's count defaults to 1. Unknown keys, a section with both
// or neither of shape and voxels, and coordinates that are not triples yield
// INVALID_FORMAT. ReadPuzzle does not close r.
func ReadPuzzle(r io.Reader) (*Puzzle, error) {
	var pf puzzleFile
	md, err := toml.NewDecoder(r).Decode(&pf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode puzzle")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown puzzle keys: %s", strings.Join(keys, ", "))
	}

	target, err := resolveShape(pf.Target.Shape, pf.Target.Voxels)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	p := &Puzzle{Name: pf.Name, AllOf: pf.AllOf, Target: target}

	total := 0
	for i, ps := range pf.Pieces {
		if err := errors.ValidatePieceCount(ps.Count); err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
		count := max(ps.Count, 1)
		if total += count; total > errors.MaxPieceCount {
			return nil, errors.New(errors.ErrCodeInvalidInput, "too many pieces (max %d)", errors.MaxPieceCount)
		}

		b, err := resolveShape(ps.Shape, ps.Voxels)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
		name := ps.Name
		if name == "" {
			name = ps.Shape
		}
		if name == "" {
			name = fmt.Sprintf("piece%d", i+1)
		}
		for range count {
			p.Pieces = append(p.Pieces, b.Copy())
			p.PieceNames = append(p.PieceNames, name)
		}
	}
	return p, nil
}

// LoadPuzzle reads the TOML puzzle at path. A missing file yields
// FILE_NOT_FOUND.
func LoadPuzzle(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "puzzle %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadPuzzle(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

func resolveShape(name string, voxels [][]float64) (*polycube.Block, error) {
	switch {
	case name != "" && voxels != nil:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "give either shape or voxels, not both")
	case name != "":
		return shapes.Lookup(name)
	case voxels != nil:
		coords, err := toCoords(voxels)
		if err != nil {
			return nil, err
		}
		return polycube.FromCoords(coords)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "missing shape or voxels")
	}
}

func toCoords(triples [][]float64) ([]polycube.Coord, error) {
	coords := make([]polycube.Coord, len(triples))
	for i, t := range triples {
		if len(t) != 3 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "voxel %d has %d coordinates, want 3", i, len(t))
		}
		coords[i] = polycube.Coord{X: t[0], Y: t[1], Z: t[2]}
	}
	return coords, nil
}
