// Package cli implements the svgbar command-line interface.
//
// # Commands
//
//   - render: render chart files to SVG, PNG, PDF or JSON, several at once
//   - scale: print the value-axis scale of a chart file or a raw range
//   - serve: run the HTTP render service
//   - cache: inspect or clear the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbar/pkg/buildinfo"
	"github.com/matzehuels/svgbar/pkg/cache"
	"github.com/matzehuels/svgbar/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "svgbar"

// Log levels for New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "svgbar renders bar charts as SVG",
		Long:         `svgbar renders vertical and horizontal bar charts from JSON or TOML chart files to SVG, PNG, PDF or a JSON geometry dump.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.scaleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner returns a pipeline runner over the local artifact cache. A
// missing home directory degrades to no caching.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	var store cache.Cache = cache.NewNullCache()
	if !noCache {
		if dir, err := cacheDir(); err != nil {
			c.Logger.Debug("artifact cache disabled", "err", err)
		} else if store, err = cache.NewFileCache(dir); err != nil {
			return nil, err
		}
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// cacheDir is $XDG_CACHE_HOME/svgbar, falling back to ~/.cache/svgbar.
func cacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
