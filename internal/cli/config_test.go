package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polycube/pkg/errors"
	"github.com/matzehuels/polycube/pkg/render/iso"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[solve]
workers = 3
timeout = "1m30s"
max_solutions = 10

[render]
format = "svg"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Solve.Workers != 3 || cfg.Solve.MaxSolutions != 10 {
		t.Errorf("solve = %+v", cfg.Solve)
	}
	if cfg.Solve.Timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 1m30s", cfg.Solve.Timeout)
	}
	if cfg.Render.Format != formatSVG {
		t.Errorf("format = %q, want svg", cfg.Render.Format)
	}
	if cfg.Render.Size != iso.DefaultSize {
		t.Errorf("size = %d, want default %d", cfg.Render.Size, iso.DefaultSize)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[solve\nworkers = 1"},
		{"unknown key", "[solve]\nthreads = 4"},
		{"wrong type", "[solve]\nworkers = \"many\""},
		{"negative workers", "[solve]\nworkers = -1"},
		{"zero size", "[render]\nsize = 0"},
		{"bad format", "[render]\nformat = \"gif\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestApplySolveConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.config.Solve = SolveConfig{Workers: 2, Timeout: time.Minute, MaxSolutions: 5}
	c.config.Render.Format = formatDOT

	var opts solveOpts
	cmd := &cobra.Command{}
	opts.addFlags(cmd, solveFormats)
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "")
	cmd.Flags().IntVarP(&opts.maxSolutions, "max", "n", 0, "")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "")
	if err := cmd.Flags().Parse([]string{"--workers", "8"}); err != nil {
		t.Fatal(err)
	}

	c.applySolveConfig(cmd, &opts)
	if opts.workers != 8 {
		t.Errorf("workers = %d, flag should win", opts.workers)
	}
	if opts.maxSolutions != 5 || opts.timeout != time.Minute {
		t.Errorf("max = %d, timeout = %v; config should fill unset flags", opts.maxSolutions, opts.timeout)
	}
	if opts.format != formatDOT || opts.size != iso.DefaultSize {
		t.Errorf("format = %q, size = %d", opts.format, opts.size)
	}
}

func TestConfigCommands(t *testing.T) {
	path := writeConfig(t, "[solve]\nworkers = 6\n")

	c := New(io.Discard, LogInfo)
	c.ConfigPath = path
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "show"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out.String(), "workers = 6") {
		t.Errorf("config show = %q", out.String())
	}

	out.Reset()
	root.SetArgs([]string{"config", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if strings.TrimSpace(out.String()) != path {
		t.Errorf("config path = %q, want %q", out.String(), path)
	}
}

func TestMalformedConfigFailsCommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.ConfigPath = writeConfig(t, "[render]\nsize = -4\n")
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"shapes"})
	if err := root.Execute(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestConfigPathSources(t *testing.T) {
	field := writeConfig(t, "[solve]\nworkers = 2\n")
	flag := writeConfig(t, "[solve]\nworkers = 9\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"field set before RootCommand", []string{"config", "path"}, field},
		{"flag overrides field", []string{"--config", flag, "config", "path"}, flag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			c.ConfigPath = field
			root := c.RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs(tt.args)
			if err := root.Execute(); err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("config path = %q, want %q", got, tt.want)
			}
			if c.ConfigPath != tt.want {
				t.Errorf("ConfigPath = %q, want %q", c.ConfigPath, tt.want)
			}
		})
	}
}
