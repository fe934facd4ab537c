package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/document"
	"github.com/agatho/bottree/pkg/errors"
	"github.com/agatho/bottree/pkg/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output   string  // output file (input file if empty)
	hSpacing float64 // horizontal spacing override
	vSpacing float64 // vertical spacing override
	startX   float64 // horizontal origin
	startY   float64 // vertical origin
}

// layoutCommand creates the layout command for recomputing positions.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOpts{}

	cmd := &cobra.Command{
		Use:   "layout <document.json>",
		Short: "Recompute node display positions",
		Long: `Recompute node display positions.

Positions are assigned deterministically from tree shape: parents sit
above their children, siblings run left to right in priority order, and
subtrees never overlap. The document is rewritten in place unless
--output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (rewrites input if empty)")
	cmd.Flags().Float64Var(&opts.hSpacing, "hspacing", 0, "horizontal spacing (overrides config)")
	cmd.Flags().Float64Var(&opts.vSpacing, "vspacing", 0, "vertical spacing (overrides config)")
	cmd.Flags().Float64Var(&opts.startX, "start-x", 0, "horizontal origin")
	cmd.Flags().Float64Var(&opts.startY, "start-y", 0, "vertical origin")

	return cmd
}

func (c *CLI) runLayout(path string, opts layoutOpts) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}
	if doc.RootID == "" {
		return errors.New(errors.ErrCodeInvalidDocument, "%s has no root node to lay out", path)
	}

	cfg := c.Config.LayoutConfig()
	if opts.hSpacing > 0 {
		cfg.HorizontalSpacing = opts.hSpacing
	}
	if opts.vSpacing > 0 {
		cfg.VerticalSpacing = opts.vSpacing
	}

	doc.Nodes = layout.AutoLayout(doc.Nodes, doc.RootID, cfg, opts.startX, opts.startY)
	c.Logger.Debugf("Laid out %d nodes", len(doc.Nodes))

	output := opts.output
	if output == "" {
		output = path
	}
	if err := document.WriteFile(&doc, output); err != nil {
		return err
	}
	fmt.Printf("%s Laid out %s\n", StyleSuccess.Render(iconSuccess), output)
	return nil
}
