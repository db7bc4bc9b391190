package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/polycube/pkg/io"
	"github.com/matzehuels/polycube/pkg/render/text"
	"github.com/matzehuels/polycube/pkg/shapes"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	noRotate bool
	list     bool
	format   string
}

// placeCommand creates the place command.
func (c *CLI) placeCommand() *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place PIECE CONTAINER",
		Short: "Count the ways a piece fits inside a container",
		Example: `  polycube place L cube4
  polycube place Tripod cube2 --list
  polycube place O box2x4x1 --no-rotate --list --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				if err := validateFormat(opts.format, []string{formatText, formatJSON}); err != nil {
					return err
				}
			}
			return runPlace(cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noRotate, "no-rotate", false, "only translate the piece")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "print every placement")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "listing format: text, json")

	return cmd
}

func runPlace(cmd *cobra.Command, pieceName, containerName string, opts *placeOpts) error {
	piece, err := shapes.Lookup(pieceName)
	if err != nil {
		return fmt.Errorf("piece: %w", err)
	}
	container, err := shapes.Lookup(containerName)
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}

	placements, err := piece.AllPositionsInside(container, !opts.noRotate)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debugf("%s has %d orientations", pieceName, len(piece.Orientations()))

	if !opts.list {
		fmt.Fprintln(cmd.OutOrStdout(), len(placements))
		return nil
	}

	var buf bytes.Buffer
	for i, pl := range placements {
		name := fmt.Sprintf("%s#%d", pieceName, i+1)
		if opts.format == formatJSON {
			if err := pkgio.WriteBlockJSON(&buf, name, pl); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(&buf, "Placement %d/%d\n", i+1, len(placements))
		buf.WriteString(text.Slices(pl))
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
