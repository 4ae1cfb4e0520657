// Package config defines the validated set of switches and parameters the
// pipeline orchestrator consumes, plus the viper-backed layered defaults
// (global then local config file) that CLI flags override.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/water-run/treepp/internal/pattern"
	"github.com/water-run/treepp/internal/serialize"
	"github.com/water-run/treepp/internal/sortkey"
)

// Mode is the resolved scan strategy, decided once during Validate and
// never re-decided mid-run.
type Mode int

const (
	Streaming Mode = iota
	Batch
)

// Config is the fully validated configuration the pipeline orchestrator
// consumes. It is built by the CLI layer (cliadapt + cobra flags + viper
// defaults) and never mutated afterward except by Validate, which fills
// the derived mode and outputFormat fields.
type Config struct {
	RootPath         string
	RootPathExplicit bool

	ASCII    bool
	NoIndent bool

	IncludeFiles bool
	FullPath     bool
	Quote        bool

	ShowSize      bool
	HumanReadable bool
	ShowDate      bool
	DiskUsage     bool

	Reverse   bool
	DirsFirst bool
	SortKey   sortkey.Key

	ExcludePatterns []string
	IncludePatterns []string
	IgnoreCase      bool
	Level           int // -1 means unlimited; Validate rejects lower values

	Report      bool
	Prune       bool
	NoWinBanner bool

	Silent bool
	Output string

	Threads      int
	ThreadsIsSet bool
	Batch        bool
	Gitignore    bool

	mode         Mode
	outputFormat serialize.Format
}

// Defaults returns a Config carrying the documented defaults: streaming
// mode, Unicode glyphs, 8 threads, unlimited level, gitignore off.
func Defaults() Config {
	return Config{
		Level:   -1,
		Threads: 8,
		SortKey: sortkey.KeyName,
	}
}

// Mode returns the scan strategy resolved by the last successful
// Validate call.
func (c *Config) Mode() Mode {
	return c.mode
}

// OutputFormat returns the serialization format resolved by the last
// successful Validate call.
func (c *Config) OutputFormat() serialize.Format {
	return c.outputFormat
}

// Validate checks cross-flag constraints, resolves the output format from
// --output's extension, and resolves the streaming-vs-batch mode. It is
// the single place mode selection happens; everything downstream treats
// the result as fixed.
func (c *Config) Validate() error {
	if c.HumanReadable {
		c.ShowSize = true
	}

	if c.Silent && c.Output == "" {
		return fmt.Errorf("config: --silent requires --output")
	}

	if c.Level < -1 {
		return fmt.Errorf("config: --level must be a non-negative integer")
	}

	if c.ThreadsIsSet && c.Threads <= 0 {
		return fmt.Errorf("config: --thread must be a positive integer")
	}

	for _, p := range c.ExcludePatterns {
		if _, err := pattern.Compile(p, c.IgnoreCase); err != nil {
			return fmt.Errorf("config: invalid --exclude pattern %q: %w", p, err)
		}
	}
	for _, p := range c.IncludePatterns {
		if _, err := pattern.Compile(p, c.IgnoreCase); err != nil {
			return fmt.Errorf("config: invalid --include pattern %q: %w", p, err)
		}
	}

	format, err := serialize.ParseFormatFromExtension(strings.ToLower(filepath.Ext(c.Output)))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.outputFormat = format

	c.mode = Streaming
	if c.Batch || c.DiskUsage || c.Prune || c.ThreadsIsSet || (c.Output != "" && format != serialize.FormatTXT) {
		c.mode = Batch
	}

	return nil
}

// DisplayRoot computes the renderer's header root line per the data
// model's invariant: "X:." for the default path, or the uppercased
// absolute path when one was explicitly supplied.
func (c *Config) DisplayRoot(absoluteRootPath string) string {
	if !c.RootPathExplicit {
		return "X:."
	}
	return strings.ToUpper(absoluteRootPath)
}
