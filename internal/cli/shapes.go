package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polycube/pkg/shapes"
)

// shapesCommand creates the shapes command.
func (c *CLI) shapesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "List the shape catalog",
		Long: `List the named shapes usable as pieces and targets.

Besides the catalog, cubeN (e.g. cube3) and boxWxHxD (e.g. box2x4x1)
name generated boxes with edges from 1 to 32.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(shapes.Names(), "\n"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), shapeTable(shapes.Catalog()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print names only, one per line")
	return cmd
}

// shapeTable renders the catalog with voxel and orientation counts.
func shapeTable(catalog []shapes.Shape) string {
	rows := make([][]string, len(catalog))
	for i, s := range catalog {
		b := s.Block()
		size := ""
		if bb, err := b.BoundingBox(); err == nil {
			w, h, d := bb.Dims()
			size = fmt.Sprintf("%d×%d×%d", w, h, d)
		}
		rows[i] = []string{
			s.Name,
			fmt.Sprintf("%d", b.Size()),
			size,
			fmt.Sprintf("%d", len(b.Orientations())),
			s.Description,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Voxels", "Box", "Orientations", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 4:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
