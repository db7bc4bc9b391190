package errors

import (
	"regexp"
	"unicode"
)

// Limits applied to user-supplied puzzle definitions.
const (
	MaxShapeNameLength = 64
	MaxPieceCount      = 64
	MaxBoxEdge         = 32
)

// shapeNameRegex matches catalog-style shape names such as "O", "TowerL",
// "cube2" or "box2x3x4".
var shapeNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateShapeName validates a shape name taken from the command line or a
// puzzle file.
//
// The validation rules are:
//   - No empty names
//   - No control characters
//   - Maximum length of MaxShapeNameLength characters
//   - Must start with a letter, then letters, digits, '_' or '-'
func ValidateShapeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidShape, "shape name cannot be empty")
	}

	if len(name) > MaxShapeNameLength {
		return New(ErrCodeInvalidShape, "shape name too long (max %d characters)", MaxShapeNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidShape, "shape name contains invalid control characters")
		}
	}

	if !shapeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidShape, "invalid shape name: %q", name)
	}
	return nil
}

// ValidatePieceCount validates how many copies of a piece a puzzle asks for.
// Zero is treated as one by callers, so only negatives and oversized counts fail.
func ValidatePieceCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "piece count cannot be negative: %d", n)
	}
	if n > MaxPieceCount {
		return New(ErrCodeInvalidInput, "piece count too large (max %d): %d", MaxPieceCount, n)
	}
	return nil
}

// ValidateBoxEdge validates one edge length of a generated box shape.
func ValidateBoxEdge(n int) error {
	if n < 1 || n > MaxBoxEdge {
		return New(ErrCodeInvalidShape, "box edge must be between 1 and %d, got %d", MaxBoxEdge, n)
	}
	return nil
}
