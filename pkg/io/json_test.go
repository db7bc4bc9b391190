package io

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/polycube/pkg/errors"
	"github.com/matzehuels/polycube/pkg/shapes"
)

func TestBlockJSONRoundTrip(t *testing.T) {
	tower, _ := shapes.Lookup("TowerL")
	var buf bytes.Buffer
	if err := WriteBlockJSON(&buf, "TowerL", tower); err != nil {
		t.Fatalf("WriteBlockJSON: %v", err)
	}
	got, err := ReadBlockJSON(&buf)
	if err != nil {
		t.Fatalf("ReadBlockJSON: %v", err)
	}
	if !got.EqualsExact(tower) {
		t.Errorf("round trip = %v, want %v", got.Voxels(), tower.Voxels())
	}
}

func TestReadBlockJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"malformed", `{"voxels": [`, errors.ErrCodeInvalidFormat},
		{"short triple", `{"voxels": [[1, 2]]}`, errors.ErrCodeInvalidFormat},
		{"fraction", `{"voxels": [[1, 2, 3.5]]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBlockJSON(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestWriteSolutionsJSON(t *testing.T) {
	p, err := ReadPuzzle(strings.NewReader("[target]\nshape = \"cube2\"\n[[pieces]]\nshape = \"O\"\ncount = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	sols, err := p.Target.WaysToExactlyCover(p.Pieces)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = WriteSolutionsJSON(&buf, SolutionSet{
		Puzzle:     "cube2",
		Target:     p.Target,
		Solutions:  sols,
		PieceNames: p.PieceNames,
	})
	if err != nil {
		t.Fatalf("WriteSolutionsJSON: %v", err)
	}

	var doc solutionsDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Count != 3 || len(doc.Solutions) != 3 {
		t.Fatalf("count = %d, solutions = %d, want 3", doc.Count, len(doc.Solutions))
	}
	if len(doc.Target.Voxels) != 8 {
		t.Errorf("target voxels = %d", len(doc.Target.Voxels))
	}
	for _, s := range doc.Solutions {
		if len(s.Signature) != 64 {
			t.Errorf("signature %q", s.Signature)
		}
		for _, piece := range s.Pieces {
			if piece.Name != "O" || len(piece.Voxels) != 4 {
				t.Errorf("piece %+v", piece)
			}
		}
	}
}
