// Package text renders blocks as plain-text slice dumps.
//
// A dump lists one z-slice at a time, lowest first. Each slice starts with a
// "Z: <z>" header followed by one row per y, lowest first, with two
// characters per x cell: "[]" for an occupied cell and two spaces for an
// empty one. Two empty lines close every slice. The O tetracube dumps as:
//
//	Z: 0
//	[][]
//	[][]
//
// Rows are not trimmed, so trailing spaces are significant.
package text

import (
	"strconv"
	"strings"

	"github.com/matzehuels/polycube/pkg/polycube"
)

const (
	occupied = "[]"
	empty    = "  "
)

// Slices returns the slice dump of b over its own bounding box. An empty
// block renders as the empty string.
func Slices(b *polycube.Block) string {
	bb, err := b.BoundingBox()
	if err != nil {
		return ""
	}
	cells := make(map[polycube.Voxel]string, b.Len())
	for _, v := range b.Voxels() {
		cells[v] = occupied
	}
	return dump(bb, cells)
}

// Labeled dumps every piece of sol in one drawing over their joint bounding
// box. Cells of piece i show labels[i] padded to two characters; missing
// labels fall back to A, B, C and so on.
func Labeled(sol polycube.Solution, labels []string) string {
	var bb polycube.BoundingBox
	cells := make(map[polycube.Voxel]string)
	first := true
	for i, p := range sol {
		pb, err := p.BoundingBox()
		if err != nil {
			continue
		}
		if first {
			bb, first = pb, false
		} else {
			bb = bb.Union(pb)
		}
		label := cellLabel(i, labels)
		for _, v := range p.Voxels() {
			cells[v] = label
		}
	}
	if first {
		return ""
	}
	return dump(bb, cells)
}

func cellLabel(i int, labels []string) string {
	l := ""
	if i < len(labels) {
		l = labels[i]
	}
	if l == "" {
		l = string(rune('A' + i%26))
	}
	if len(l) >= 2 {
		return l[:2]
	}
	return l + " "
}

func dump(bb polycube.BoundingBox, cells map[polycube.Voxel]string) string {
	var sb strings.Builder
	for z := bb.ZMin; z <= bb.ZMax; z++ {
		sb.WriteString("Z: ")
		sb.WriteString(strconv.Itoa(z))
		sb.WriteString("\n")
		for y := bb.YMin; y <= bb.YMax; y++ {
			for x := bb.XMin; x <= bb.XMax; x++ {
				if c, ok := cells[polycube.Voxel{X: x, Y: y, Z: z}]; ok {
					sb.WriteString(c)
				} else {
					sb.WriteString(empty)
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}
