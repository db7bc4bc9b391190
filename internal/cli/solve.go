package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polycube/pkg/errors"
	pkgio "github.com/matzehuels/polycube/pkg/io"
	"github.com/matzehuels/polycube/pkg/polycube"
	"github.com/matzehuels/polycube/pkg/shapes"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	renderOpts

	target       string        // catalog shape to tile
	pieces       string        // comma-separated catalog shapes
	allOf        bool          // every piece must be used
	workers      int           // parallel top-level branches
	maxSolutions int           // stop after this many (0 = all)
	timeout      time.Duration // search deadline (0 = none)
	noMemo       bool          // disable the placement memo
	index        int           // 1-based solution to output (0 = all)
	stats        bool          // print search statistics
	browse       bool          // open the interactive browser
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [puzzle.toml]",
		Short: "Find every way to tile a target with an ordered list of pieces",
		Long: `Find every way to tile a target with an ordered list of pieces.

The puzzle comes either from a TOML file or from --target and --pieces.
Pieces are tried in the given order; by default a solution may leave
trailing pieces unused, --all-of requires all of them.`,
		Example: `  polycube solve --target cube2 --pieces Tripod,Tripod
  polycube solve --target box2x4x1 --pieces L,L --format svg -o tiling.svg
  polycube solve puzzle.toml --all-of --format json
  polycube solve puzzle.toml --browse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applySolveConfig(cmd, &opts)
			if err := validateFormat(opts.format, solveFormats); err != nil {
				return err
			}
			p, err := loadSolvePuzzle(args, &opts)
			if err != nil {
				return err
			}
			return runSolve(cmd, p, &opts)
		},
	}

	opts.addFlags(cmd, solveFormats)
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "target shape (e.g. cube2, box2x4x1)")
	cmd.Flags().StringVarP(&opts.pieces, "pieces", "p", "", "comma-separated piece shapes (e.g. Tripod,Tripod,O)")
	cmd.Flags().BoolVar(&opts.allOf, "all-of", false, "require every piece to be used")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel search workers (0 = one per CPU)")
	cmd.Flags().IntVarP(&opts.maxSolutions, "max", "n", 0, "stop after this many solutions (0 = all)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "search deadline, e.g. 30s (0 = none)")
	cmd.Flags().BoolVar(&opts.noMemo, "no-memo", false, "disable the placement memo")
	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "output only the i-th solution (1-based)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print search statistics")
	cmd.Flags().BoolVar(&opts.browse, "browse", false, "browse solutions interactively")

	return cmd
}

// applySolveConfig fills flags the user did not set from the config file.
func (c *CLI) applySolveConfig(cmd *cobra.Command, opts *solveOpts) {
	opts.applyConfig(c.config.Render)
	flags := cmd.Flags()
	if !flags.Changed("workers") {
		opts.workers = c.config.Solve.Workers
	}
	if !flags.Changed("max") {
		opts.maxSolutions = c.config.Solve.MaxSolutions
	}
	if !flags.Changed("timeout") {
		opts.timeout = c.config.Solve.Timeout
	}
}

// loadSolvePuzzle builds the puzzle from a file argument or from flags.
func loadSolvePuzzle(args []string, opts *solveOpts) (*pkgio.Puzzle, error) {
	fromFlags := opts.target != "" || opts.pieces != ""
	if len(args) == 1 {
		if fromFlags {
			return nil, errors.New(errors.ErrCodeInvalidInput, "give either a puzzle file or --target/--pieces, not both")
		}
		p, err := pkgio.LoadPuzzle(args[0])
		if err != nil {
			return nil, err
		}
		p.AllOf = p.AllOf || opts.allOf
		return p, nil
	}

	if opts.target == "" || opts.pieces == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a puzzle file or both --target and --pieces are required")
	}
	target, err := shapes.Lookup(opts.target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	names := parseList(opts.pieces)
	if len(names) > errors.MaxPieceCount {
		return nil, errors.New(errors.ErrCodeInvalidInput, "too many pieces (max %d)", errors.MaxPieceCount)
	}
	p := &pkgio.Puzzle{
		Name:   opts.target,
		AllOf:  opts.allOf,
		Target: target,
	}
	for _, name := range names {
		b, err := shapes.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("piece %q: %w", name, err)
		}
		p.Pieces = append(p.Pieces, b)
		p.PieceNames = append(p.PieceNames, name)
	}
	return p, nil
}

func runSolve(cmd *cobra.Command, p *pkgio.Puzzle, opts *solveOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}
	logger := loggerFromContext(ctx)
	logger.Infof("Solving %s: %d voxels, pieces [%s]", p.Name, p.Target.Size(), strings.Join(p.PieceNames, ", "))

	solver := newSolver(opts.workers, opts.maxSolutions, opts.noMemo)
	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Searching...")
	spinner.Start()
	solutions, err := p.Solve(ctx, solver)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d solutions", len(solutions)))

	stderr := cmd.ErrOrStderr()
	if opts.stats {
		printStats(stderr, solver.Stats())
	}
	if len(solutions) == 0 {
		printWarning(stderr, "No tiling of %s exists with these pieces", p.Name)
	}

	if opts.browse {
		return runBrowser(ctx, p, solutions)
	}
	return writeSolutions(cmd, p, solutions, opts)
}

// writeSolutions emits solutions in the requested format. Per-solution
// formats write one file per solution when an output path is given, and
// only the selected (or first) solution otherwise.
func writeSolutions(cmd *cobra.Command, p *pkgio.Puzzle, solutions []polycube.Solution, opts *solveOpts) error {
	if opts.index < 0 || opts.index > len(solutions) {
		return errors.New(errors.ErrCodeNotFound, "solution %d out of range (found %d)", opts.index, len(solutions))
	}
	if opts.index > 0 {
		solutions = solutions[opts.index-1 : opts.index]
	}

	switch opts.format {
	case formatText:
		if len(solutions) == 0 {
			return nil
		}
		return writeOutput(cmd, opts.output, renderSolutionsText(solutions, p.PieceNames))
	case formatJSON:
		var buf bytes.Buffer
		set := pkgio.SolutionSet{
			Puzzle:     p.Name,
			Target:     p.Target,
			Solutions:  solutions,
			PieceNames: p.PieceNames,
		}
		if err := pkgio.WriteSolutionsJSON(&buf, set); err != nil {
			return err
		}
		return writeOutput(cmd, opts.output, buf.Bytes())
	}

	if len(solutions) == 0 {
		return nil
	}
	ctx := cmd.Context()
	if opts.output == "" || len(solutions) == 1 {
		if len(solutions) > 1 {
			printInfo(cmd.ErrOrStderr(), "Drawing solution 1 of %d; use --index or --output for the rest", len(solutions))
		}
		data, err := renderSolution(ctx, solutions[0], p.PieceNames, &opts.renderOpts)
		if err != nil {
			return err
		}
		return writeOutput(cmd, opts.output, data)
	}

	base := basePath(opts.output, "")
	for i, sol := range solutions {
		data, err := renderSolution(ctx, sol, p.PieceNames, &opts.renderOpts)
		if err != nil {
			return err
		}
		path := fmt.Sprintf("%s_%d.%s", base, i+1, fileExt[opts.format])
		if err := writeOutput(cmd, path, data); err != nil {
			return err
		}
	}
	return nil
}
