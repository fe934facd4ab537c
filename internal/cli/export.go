package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/document"
	"github.com/agatho/bottree/pkg/errors"
	"github.com/agatho/bottree/pkg/render"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format   string // "dot" or "svg"
	output   string // output file (stdout for dot if empty)
	detailed bool   // include type/parameter summaries in labels
}

// exportCommand creates the export command for external viewers.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "export <document.json>",
		Short: "Export a behavior tree as Graphviz DOT or SVG",
		Long: `Export a behavior tree as Graphviz DOT or SVG.

The export draws the tree shape for external viewers: composites as
boxes, decorators as diamonds, leaves as rounded boxes, with edges in
execution priority order. DOT output goes to stdout unless --output is
given; SVG always requires --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include type and parameter summaries in labels")

	return cmd
}

func (c *CLI) runExport(path string, opts exportOpts) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	dot := render.ToDOT(&doc, render.Options{Detailed: opts.detailed})

	switch strings.ToLower(opts.format) {
	case formatDOT:
		if opts.output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(opts.output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
	case formatSVG:
		if opts.output == "" {
			return errors.New(errors.ErrCodeInvalidPath, "svg export requires --output")
		}
		svg, err := render.RenderSVG(dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, svg, 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidDocument, "unknown export format %q (dot, svg)", opts.format)
	}

	fmt.Printf("%s Exported %s\n", StyleSuccess.Render(iconSuccess), opts.output)
	return nil
}
