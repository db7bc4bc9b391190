package iso

import (
	"strings"
	"testing"

	"github.com/matzehuels/polycube/pkg/polycube"
)

func vx(x, y, z int) polycube.Voxel { return polycube.Voxel{X: x, Y: y, Z: z} }

func TestRenderSVGUnitCube(t *testing.T) {
	svg := string(RenderSVG(polycube.New(vx(0, 0, 0))))

	if !strings.Contains(svg, `width="250" height="250"`) {
		t.Error("default size should be 250")
	}
	front := `points="63.75,71.25 176.25,71.25 176.25,183.75 63.75,183.75" fill="#CCDDCC"`
	if !strings.Contains(svg, front) {
		t.Errorf("front face missing:\n%s", svg)
	}
	if got := strings.Count(svg, "<polygon"); got != 6 {
		t.Errorf("polygons = %d, want 6", got)
	}
}

func TestRenderSVGFaceOrder(t *testing.T) {
	svg := string(RenderSVG(polycube.New(vx(0, 0, 0))))
	order := []string{"#000000", "#0000FF", "#00FF00", "#778877", "#AABBAA", "#CCDDCC"}
	last := -1
	for _, c := range order {
		i := strings.Index(svg, `fill="`+c+`"`)
		if i <= last {
			t.Fatalf("face %s out of order", c)
		}
		last = i
	}
}

func TestRenderSVGPaintOrder(t *testing.T) {
	b := polycube.New(vx(1, 0, 0), vx(0, 0, 1), vx(0, 1, 0), vx(0, 0, 0), vx(0, 0, 0))
	svg := string(RenderSVG(b, WithSize(100)))
	if !strings.Contains(svg, `width="100"`) {
		t.Error("WithSize ignored")
	}
	want := []string{"0,1,0", "0,0,0", "0,0,1", "1,0,0"}
	last := -1
	for _, v := range want {
		i := strings.Index(svg, `data-voxel="`+v+`"`)
		if i <= last {
			t.Fatalf("voxel %s painted out of canonical order", v)
		}
		last = i
	}
	if got := strings.Count(svg, `class="voxel"`); got != 4 {
		t.Errorf("voxels drawn = %d, want 4", got)
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(polycube.New(), WithSize(40)))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 40" width="40" height="40">` + "\n</svg>\n"
	if svg != want {
		t.Errorf("empty render = %q", svg)
	}
}

func TestRenderSolutionSVG(t *testing.T) {
	sol := polycube.Solution{
		polycube.New(vx(0, 0, 0), vx(1, 0, 0)),
		polycube.New(vx(0, 1, 0), vx(1, 1, 0)),
	}
	svg := string(RenderSolutionSVG(sol))
	if got := strings.Count(svg, `data-piece="0"`); got != 2 {
		t.Errorf("piece 0 voxels = %d, want 2", got)
	}
	if got := strings.Count(svg, `data-piece="1"`); got != 2 {
		t.Errorf("piece 1 voxels = %d, want 2", got)
	}
	if !strings.Contains(svg, PieceFaces(1).Front) {
		t.Error("second piece should use its own tint")
	}
}

func TestPieceFacesCycle(t *testing.T) {
	if PieceFaces(0) != DefaultFaces {
		t.Error("first piece should use the default faces")
	}
	if PieceFaces(len(piecePalette)) != PieceFaces(0) {
		t.Error("palette should cycle")
	}
}
