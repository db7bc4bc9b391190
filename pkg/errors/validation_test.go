package errors

import (
	"strings"
	"testing"
)

func TestValidateShapeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"tetracube", "O", false},
		{"mixed case", "TowerL", false},
		{"with digits", "cube2", false},
		{"box", "box2x3x4", false},
		{"with dash", "my-piece", false},
		{"with underscore", "my_piece", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"leading digit", "2cube", true},
		{"space", "my piece", true},
		{"path", "../cube", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShapeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShapeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidShape) {
				t.Errorf("expected INVALID_SHAPE, got %v", GetCode(err))
			}
		})
	}
}

func TestValidatePieceCount(t *testing.T) {
	tests := []struct {
		input   int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{MaxPieceCount, false},
		{-1, true},
		{MaxPieceCount + 1, true},
	}

	for _, tt := range tests {
		err := ValidatePieceCount(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePieceCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateBoxEdge(t *testing.T) {
	for _, n := range []int{1, 2, MaxBoxEdge} {
		if err := ValidateBoxEdge(n); err != nil {
			t.Errorf("ValidateBoxEdge(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{0, -3, MaxBoxEdge + 1} {
		if err := ValidateBoxEdge(n); err == nil {
			t.Errorf("ValidateBoxEdge(%d) = nil, want error", n)
		}
	}
}
