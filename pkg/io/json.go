package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/polycube/pkg/errors"
	"github.com/matzehuels/polycube/pkg/polycube"
)

type blockDoc struct {
	Name   string      `json:"name,omitempty"`
	Hash   string      `json:"hash,omitempty"`
	Voxels [][]float64 `json:"voxels"`
}

type solutionDoc struct {
	Signature string     `json:"signature"`
	Pieces    []blockDoc `json:"pieces"`
}

type solutionsDoc struct {
	Puzzle    string        `json:"puzzle,omitempty"`
	Target    blockDoc      `json:"target"`
	Count     int           `json:"count"`
	Solutions []solutionDoc `json:"solutions"`
}

func newBlockDoc(name string, b *polycube.Block) blockDoc {
	sorted := b.Sorted()
	doc := blockDoc{Name: name, Voxels: make([][]float64, len(sorted))}
	if !b.IsEmpty() {
		doc.Hash = b.CanonicalHash().String()
	}
	for i, v := range sorted {
		doc.Voxels[i] = []float64{float64(v.X), float64(v.Y), float64(v.Z)}
	}
	return doc
}

// WriteBlockJSON encodes b as {"name", "hash", "voxels"} with voxels in
// canonical order. name may be empty.
func WriteBlockJSON(w io.Writer, name string, b *polycube.Block) error {
	return encode(w, newBlockDoc(name, b))
}

// ReadBlockJSON decodes a block written by [WriteBlockJSON]. Only the
// voxels field is required; coordinates must be integral.
func ReadBlockJSON(r io.Reader) (*polycube.Block, error) {
	var doc blockDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode block")
	}
	coords, err := toCoords(doc.Voxels)
	if err != nil {
		return nil, err
	}
	return polycube.FromCoords(coords)
}

// SolutionSet is a search result ready for export.
type SolutionSet struct {
	Puzzle    string
	Target    *polycube.Block
	Solutions []polycube.Solution

	// PieceNames[i] labels the i-th piece of every solution. Missing names
	// are left blank.
	PieceNames []string
}

// WriteSolutionsJSON encodes set to w as indented JSON.
func WriteSolutionsJSON(w io.Writer, set SolutionSet) error {
	doc := solutionsDoc{
		Puzzle:    set.Puzzle,
		Target:    newBlockDoc("", set.Target),
		Count:     len(set.Solutions),
		Solutions: make([]solutionDoc, len(set.Solutions)),
	}
	for i, sol := range set.Solutions {
		sd := solutionDoc{
			Signature: sol.Signature().String(),
			Pieces:    make([]blockDoc, len(sol)),
		}
		for j, p := range sol {
			name := ""
			if j < len(set.PieceNames) {
				name = set.PieceNames[j]
			}
			sd.Pieces[j] = newBlockDoc(name, p)
		}
		doc.Solutions[i] = sd
	}
	return encode(w, doc)
}

// ExportSolutionsJSON writes set to a JSON file at path.
func ExportSolutionsJSON(set SolutionSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSolutionsJSON(f, set)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
