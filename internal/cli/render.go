package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polycube/pkg/errors"
	pkgio "github.com/matzehuels/polycube/pkg/io"
	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/render"
	"github.com/matzehuels/polycube/pkg/render/contact"
	"github.com/matzehuels/polycube/pkg/render/iso"
	"github.com/matzehuels/polycube/pkg/render/text"
)

// Output formats.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatSVG   = "svg"
	formatPNG   = "png"
	formatPDF   = "pdf"
	formatDOT   = "dot"
	formatGraph = "graph" // contact graph laid out by Graphviz, as SVG
)

var (
	solveFormats = []string{formatText, formatJSON, formatSVG, formatPNG, formatPDF, formatDOT, formatGraph}
	showFormats  = []string{formatText, formatJSON, formatSVG, formatPNG, formatPDF}
)

// fileExt maps a format to the extension of the files it writes.
var fileExt = map[string]string{
	formatText:  "txt",
	formatJSON:  "json",
	formatSVG:   "svg",
	formatPNG:   "png",
	formatPDF:   "pdf",
	formatDOT:   "dot",
	formatGraph: "svg",
}

func validateFormat(format string, allowed []string) error {
	if !slices.Contains(allowed, format) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format %q (valid: %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// renderOpts holds the flags shared by commands that draw something.
type renderOpts struct {
	format   string
	output   string
	size     int
	scale    float64
	detailed bool
}

func (o *renderOpts) addFlags(cmd *cobra.Command, formats []string) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&o.size, "size", 0, "canvas edge in pixels for image formats")
	cmd.Flags().Float64Var(&o.scale, "scale", 2, "scale factor for png output")
	cmd.Flags().BoolVar(&o.detailed, "detailed", false, "show voxel and face counts in contact graphs")
}

// applyConfig fills unset options from the config file.
func (o *renderOpts) applyConfig(cfg RenderConfig) {
	if o.format == "" {
		o.format = cfg.Format
	}
	if o.size <= 0 {
		o.size = cfg.Size
	}
}

// basePath derives the base output path from the output and input file paths.
// Known format extensions are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	for _, e := range fileExt {
		if ext == "."+e {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// renderBlock draws a single block.
func renderBlock(ctx context.Context, name string, b *polycube.Block, o *renderOpts) ([]byte, error) {
	switch o.format {
	case formatText:
		return []byte(text.Slices(b)), nil
	case formatJSON:
		var buf bytes.Buffer
		if err := pkgio.WriteBlockJSON(&buf, name, b); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatSVG:
		return iso.RenderSVG(b, iso.WithSize(o.size)), nil
	case formatPNG:
		return iso.RenderPNG(ctx, b, o.scale, iso.WithSize(o.size))
	case formatPDF:
		return iso.RenderPDF(ctx, b, iso.WithSize(o.size))
	}
	return nil, validateFormat(o.format, showFormats)
}

// renderSolution draws one solution in a per-solution format.
func renderSolution(ctx context.Context, sol polycube.Solution, labels []string, o *renderOpts) ([]byte, error) {
	switch o.format {
	case formatText:
		return []byte(text.Labeled(sol, nil)), nil
	case formatSVG:
		return iso.RenderSolutionSVG(sol, iso.WithSize(o.size)), nil
	case formatPNG:
		return render.ToPNG(ctx, iso.RenderSolutionSVG(sol, iso.WithSize(o.size)), o.scale)
	case formatPDF:
		return render.ToPDF(ctx, iso.RenderSolutionSVG(sol, iso.WithSize(o.size)))
	case formatDOT:
		return []byte(contact.ToDOT(sol, contact.Options{Labels: labels, Detailed: o.detailed})), nil
	case formatGraph:
		return contact.RenderSVG(ctx, contact.ToDOT(sol, contact.Options{Labels: labels, Detailed: o.detailed}))
	}
	return nil, validateFormat(o.format, solveFormats)
}

// renderSolutionsText lists every solution with a legend naming each
// piece's letter.
func renderSolutionsText(solutions []polycube.Solution, labels []string) []byte {
	var buf bytes.Buffer
	for i, sol := range solutions {
		fmt.Fprintf(&buf, "Solution %d/%d\n", i+1, len(solutions))
		for j := range sol {
			name := fmt.Sprintf("piece %d", j+1)
			if j < len(labels) && labels[j] != "" {
				name = labels[j]
			}
			fmt.Fprintf(&buf, "  %c = %s\n", 'A'+rune(j%26), name)
		}
		buf.WriteString("\n")
		buf.WriteString(text.Labeled(sol, nil))
	}
	return buf.Bytes()
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(cmd.ErrOrStderr(), path)
	return nil
}
