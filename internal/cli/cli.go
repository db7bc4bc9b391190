// Package cli implements the polycube command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polycube/pkg/buildinfo"
	"github.com/matzehuels/polycube/pkg/cache"
	"github.com/matzehuels/polycube/pkg/polycube"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "polycube"

	// configFile is the file name looked up in the config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the config file location; empty means the XDG
	// default.
	ConfigPath string

	config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RegisterHooks installs search and memo hooks that log through the
// command's logger. Call it once before running any command.
func (c *CLI) RegisterHooks() {
	newSearchLogger(c.Logger).Register()
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the config file is loaded and the logger is
// attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Polycube tiles voxel shapes with polycube pieces",
		Long:         `Polycube finds every way to fill a voxel target with an ordered list of polycube pieces, allowing rotations, and renders shapes and tilings as text, SVG, JSON or contact graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.prepare(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", c.ConfigPath, "config file (default $XDG_CONFIG_HOME/polycube/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) prepare(cmd *cobra.Command) error {
	path := c.ConfigPath
	if path == "" {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, configFile)
		}
	}
	if path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		c.config = cfg
		c.Logger.Debugf("Config: %s", path)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Solver Factory
// =============================================================================

// newSolver builds a solver from the config with flag overrides applied by
// the caller.
func newSolver(workers, maxSolutions int, noMemo bool) *polycube.Solver {
	s := &polycube.Solver{Workers: workers, MaxSolutions: maxSolutions}
	if noMemo {
		s.Memo = cache.NewNullMemo[polycube.PlacementKey, []*polycube.Block]()
	}
	return s
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/polycube/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseList splits a comma-separated flag value, dropping blanks.
func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
