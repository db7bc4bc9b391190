package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	pkgio "github.com/matzehuels/polycube/pkg/io"
	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/render/contact"
	"github.com/matzehuels/polycube/pkg/render/iso"
	"github.com/matzehuels/polycube/pkg/render/text"
)

// Browser styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// SolutionBrowserModel - Interactive solution viewer
// =============================================================================

// SolutionBrowserModel is the bubbletea model for paging through solutions.
type SolutionBrowserModel struct {
	Puzzle    string
	Solutions []polycube.Solution
	Names     []string
	Cursor    int
}

// NewSolutionBrowserModel creates a browser positioned on the first solution.
func NewSolutionBrowserModel(puzzle string, solutions []polycube.Solution, names []string) SolutionBrowserModel {
	return SolutionBrowserModel{
		Puzzle:    puzzle,
		Solutions: solutions,
		Names:     names,
	}
}

func (m SolutionBrowserModel) Init() tea.Cmd {
	return nil
}

func (m SolutionBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "p":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "n":
			if m.Cursor < len(m.Solutions)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			if len(m.Solutions) > 0 {
				m.Cursor = len(m.Solutions) - 1
			}
		}
	}
	return m, nil
}

func (m SolutionBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Solutions for " + m.Puzzle))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Solutions) == 0 {
		b.WriteString(StyleWarning.Render("No solutions"))
		b.WriteString("\n")
		return b.String()
	}

	sol := m.Solutions[m.Cursor]
	b.WriteString(text.Labeled(sol, nil))
	b.WriteString(m.pieceTable(sol))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %s", m.Cursor+1, len(m.Solutions), sol.Signature().Short())))

	return b.String()
}

// pieceTable lists each piece with its letter, name, size and contacts.
func (m SolutionBrowserModel) pieceTable(sol polycube.Solution) string {
	touching := make([]int, len(sol))
	for _, e := range contact.Contacts(sol) {
		touching[e.A]++
		touching[e.B]++
	}

	rows := make([][]string, len(sol))
	for i, p := range sol {
		name := ""
		if i < len(m.Names) {
			name = m.Names[i]
		}
		rows[i] = []string{
			string(rune('A' + i%26)),
			name,
			fmt.Sprintf("%d", p.Size()),
			fmt.Sprintf("%d", touching[i]),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Piece", "Voxels", "Touches").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 && row >= 0 {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(iso.PieceFaces(row).Front))
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// runBrowser opens the solution browser on the terminal.
func runBrowser(ctx context.Context, p *pkgio.Puzzle, solutions []polycube.Solution) error {
	model := NewSolutionBrowserModel(p.Name, solutions, p.PieceNames)
	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
