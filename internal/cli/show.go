package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polycube/pkg/errors"
	pkgio "github.com/matzehuels/polycube/pkg/io"
	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/render/text"
	"github.com/matzehuels/polycube/pkg/shapes"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	renderOpts
	orientations bool
}

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show SHAPE|FILE.json",
		Short: "Render a shape from the catalog or a JSON block file",
		Example: `  polycube show Tripod
  polycube show cube3 --format svg -o cube3.svg
  polycube show L --orientations
  polycube show block.json --format png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfig(c.config.Render)
			if !cmd.Flags().Changed("format") && !slices.Contains(showFormats, opts.format) {
				opts.format = formatText
			}
			if err := validateFormat(opts.format, showFormats); err != nil {
				return err
			}
			return runShow(cmd, args[0], &opts)
		},
	}

	opts.addFlags(cmd, showFormats)
	cmd.Flags().BoolVar(&opts.orientations, "orientations", false, "list the distinct orientations of the shape")

	return cmd
}

// loadBlock resolves arg as a JSON block file when it names one, and as a
// catalog shape otherwise.
func loadBlock(arg string) (string, *polycube.Block, error) {
	if strings.HasSuffix(strings.ToLower(arg), ".json") {
		f, err := os.Open(arg)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return "", nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "block %s", arg)
			}
			return "", nil, fmt.Errorf("open %s: %w", arg, err)
		}
		defer f.Close()
		b, err := pkgio.ReadBlockJSON(f)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", arg, err)
		}
		return strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg)), b, nil
	}
	b, err := shapes.Lookup(arg)
	return arg, b, err
}

func runShow(cmd *cobra.Command, arg string, opts *showOpts) error {
	name, b, err := loadBlock(arg)
	if err != nil {
		return err
	}

	if opts.orientations {
		return writeOrientations(cmd, name, b, opts.output)
	}

	stderr := cmd.ErrOrStderr()
	if bb, err := b.BoundingBox(); err == nil {
		w, h, d := bb.Dims()
		printKeyValue(stderr, "Shape", name)
		printKeyValue(stderr, "Voxels", fmt.Sprintf("%d", b.Size()))
		printKeyValue(stderr, "Size", fmt.Sprintf("%d×%d×%d", w, h, d))
		printKeyValue(stderr, "Hash", b.CanonicalHash().Short())
	}

	data, err := renderBlock(cmd.Context(), name, b, &opts.renderOpts)
	if err != nil {
		return err
	}
	return writeOutput(cmd, opts.output, data)
}

func writeOrientations(cmd *cobra.Command, name string, b *polycube.Block, output string) error {
	orients := b.Orientations()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s has %d distinct orientations\n\n", name, len(orients))
	for i, o := range orients {
		fmt.Fprintf(&sb, "Orientation %d\n", i+1)
		sb.WriteString(text.Slices(o))
	}
	return writeOutput(cmd, output, []byte(sb.String()))
}
