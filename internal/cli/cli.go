// Package cli implements the bottree command-line interface.
//
// This package provides commands for creating behavior-tree documents
// from templates, validating and laying out existing documents,
// browsing the action/condition catalog, exporting trees for external
// viewers, and managing the local document library. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - new: Create a document from a template
//   - validate: Check a document for structural problems
//   - layout: Recompute node positions
//   - info: Summarize a document
//   - export: Emit Graphviz DOT or SVG
//   - templates, catalog: List reference data
//   - library: Manage stored documents
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agatho/bottree/internal/config"
	"github.com/agatho/bottree/pkg/buildinfo"
	"github.com/agatho/bottree/pkg/library"
)

// appName is the application name used for directories and display.
const appName = "bottree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the loaded
// (or default) configuration.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		c.Logger.Warnf("Ignoring config: %v", err)
		cfg = config.Default()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Bottree authors behavior trees for game bots",
		Long:         `Bottree is a CLI tool for authoring the behavior-tree documents that drive game bot AI: creating trees from templates, validating their structure, computing display layouts, and exporting them for external viewers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.libraryCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// openLibrary opens the document library at the configured directory,
// falling back to the XDG default.
func (c *CLI) openLibrary() (*library.Store, error) {
	dir := c.Config.LibraryDir
	if dir == "" {
		var err error
		dir, err = library.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return library.NewStore(dir)
}
