package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polycube/pkg/errors"
	"github.com/matzehuels/polycube/pkg/render/iso"
)

// Config is the optional user configuration file.
//
//	[solve]
//	workers = 4
//	timeout = "30s"
//	max_solutions = 0
//
//	[render]
//	size = 250
//	format = "text"
type Config struct {
	Solve  SolveConfig  `toml:"solve"`
	Render RenderConfig `toml:"render"`
}

// SolveConfig holds search defaults.
type SolveConfig struct {
	Workers      int           `toml:"workers"`       // 0 = one per CPU
	Timeout      time.Duration `toml:"timeout"`       // 0 = no deadline
	MaxSolutions int           `toml:"max_solutions"` // 0 = all
}

// RenderConfig holds output defaults.
type RenderConfig struct {
	Size   int    `toml:"size"`   // canvas edge for image output
	Format string `toml:"format"` // default solve output format
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{Size: iso.DefaultSize, Format: formatText},
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Solve.Workers < 0:
		return fmt.Errorf("solve.workers must not be negative")
	case c.Solve.Timeout < 0:
		return fmt.Errorf("solve.timeout must not be negative")
	case c.Solve.MaxSolutions < 0:
		return fmt.Errorf("solve.max_solutions must not be negative")
	case c.Render.Size <= 0:
		return fmt.Errorf("render.size must be positive")
	}
	return validateFormat(c.Render.Format, solveFormats)
}

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.ConfigPath != "" {
				fmt.Fprintln(cmd.OutOrStdout(), c.ConfigPath)
				return nil
			}
			dir, err := configDir()
			if err != nil {
				return fmt.Errorf("get config dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir+string(os.PathSeparator)+configFile)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c.config)
		},
	}
}
