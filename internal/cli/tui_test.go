package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/shapes"
)

func browserFixture(t *testing.T) SolutionBrowserModel {
	t.Helper()
	cube2, _ := shapes.Lookup("cube2")
	o, _ := shapes.Lookup("O")
	sols, err := (&polycube.Solver{Workers: 1}).Solve(t.Context(), cube2, []*polycube.Block{o, o.Copy()})
	if err != nil {
		t.Fatal(err)
	}
	return NewSolutionBrowserModel("cube2", sols, []string{"O", "O"})
}

func press(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next
}

func TestSolutionBrowserNavigation(t *testing.T) {
	var m tea.Model = browserFixture(t)

	tests := []struct {
		key  string
		want int
	}{
		{"left", 0},
		{"right", 1},
		{"n", 2},
		{"l", 2},
		{"p", 1},
		{"G", 2},
		{"g", 0},
		{"h", 0},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		if got := m.(SolutionBrowserModel).Cursor; got != tt.want {
			t.Fatalf("after %q cursor = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestSolutionBrowserQuit(t *testing.T) {
	_, cmd := browserFixture(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestSolutionBrowserView(t *testing.T) {
	m := browserFixture(t)
	view := m.View()
	for _, want := range []string{"Solutions for cube2", "[1/3]", "Z: 0", "Touches", "Voxels"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	empty := NewSolutionBrowserModel("none", nil, nil)
	if !strings.Contains(empty.View(), "No solutions") {
		t.Error("empty browser should say so")
	}
	next, _ := empty.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if next.(SolutionBrowserModel).Cursor != 0 {
		t.Error("G on an empty browser should stay at 0")
	}
}
