// Package contract provides configuration plumbing and shared utilities for
// the aletheia runtime.
package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hyperpolymath/aletheia/schema"
)

// Config holds the final, validated runtime configuration.
type Config struct {
	RepoPath      string // absolute path to the audited repository
	Format        schema.OutputMode
	Verbosity     schema.Verbosity
	OutputFile    string
	FailOnWarning bool
	UseColors     bool

	// Pipeline subcommand settings.
	ProjectName    string
	TargetLevel    schema.Level
	PipelineOutput string
	Force          bool
}

// ConfigRawInput holds the raw, unvalidated inputs from all sources
// (flags, env, config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag.
	RepoPathStr string

	Format        string `mapstructure:"format"`
	Quiet         bool   `mapstructure:"quiet"`
	Verbose       bool   `mapstructure:"verbose"`
	OutputFile    string `mapstructure:"output-file"`
	Color         string `mapstructure:"color"`
	FailOnWarning bool   `mapstructure:"fail-on-warning"`

	// --- Fields from pipelineCmd flags ---
	Name           string `mapstructure:"name"`
	Level          string `mapstructure:"level"`
	PipelineOutput string `mapstructure:"pipeline-output"`
	Force          bool   `mapstructure:"force"`
}

// PathError reports an unusable repository root. It maps to ExitInvalidPath.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %s %s", e.Path, e.Reason)
}

// ArgumentError reports invalid flag or argument values. It maps to
// ExitInvalidArgs.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// ExitCodeForError maps a setup error to the CLI exit code channel.
func ExitCodeForError(err error) int {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return schema.ExitInvalidPath
	}
	return schema.ExitInvalidArgs
}

// ProcessAndValidate turns raw input into a validated Config. Path problems
// and argument problems surface as distinct error types so the CLI can map
// them to separate exit codes.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	switch schema.OutputMode(input.Format) {
	case schema.HumanOut, schema.JSONOut:
		cfg.Format = schema.OutputMode(input.Format)
	default:
		return &ArgumentError{Msg: fmt.Sprintf("unknown format: %s (use 'human' or 'json')", input.Format)}
	}

	if input.Quiet && input.Verbose {
		return &ArgumentError{Msg: "--quiet and --verbose are mutually exclusive"}
	}
	cfg.Verbosity = schema.NormalVerbosity
	if input.Quiet {
		cfg.Verbosity = schema.QuietVerbosity
	}
	if input.Verbose {
		cfg.Verbosity = schema.VerboseVerbosity
	}

	switch input.Color {
	case "yes", "":
		cfg.UseColors = true
	case "no":
		cfg.UseColors = false
		color.NoColor = true
	default:
		return &ArgumentError{Msg: fmt.Sprintf("unknown color setting: %s (use 'yes' or 'no')", input.Color)}
	}

	cfg.OutputFile = input.OutputFile
	cfg.FailOnWarning = input.FailOnWarning

	cfg.ProjectName = input.Name
	cfg.PipelineOutput = input.PipelineOutput
	cfg.Force = input.Force
	if input.Level != "" {
		level := schema.Level(input.Level)
		switch level {
		case schema.LevelBronze, schema.LevelSilver, schema.LevelGold, schema.LevelPlatinum:
			cfg.TargetLevel = level
		default:
			return &ArgumentError{Msg: fmt.Sprintf("unknown level: %s", input.Level)}
		}
	} else {
		cfg.TargetLevel = schema.LevelBronze
	}

	return resolveRepoPath(cfg, input.RepoPathStr)
}

// resolveRepoPath validates the repository root precondition: it must be an
// existing directory. This is the only fatal path condition; everything the
// engine probes later degrades gracefully.
func resolveRepoPath(cfg *Config, raw string) error {
	if raw == "" {
		raw = "."
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return &PathError{Path: raw, Reason: "cannot be resolved"}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return &PathError{Path: abs, Reason: "does not exist"}
	}
	if !info.IsDir() {
		return &PathError{Path: abs, Reason: "is not a directory"}
	}

	cfg.RepoPath = abs
	return nil
}

// Clone returns a copy of the Config struct. Handlers that override
// per-request settings (e.g. MCP tools) clone first so the base config
// stays untouched.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
