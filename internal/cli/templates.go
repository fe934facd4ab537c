package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/btree"
	"github.com/agatho/bottree/pkg/template"
)

// templatesCommand creates the templates command listing prebuilt trees.
func (c *CLI) templatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available behavior-tree templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s\n", StyleTitle.Render("Templates"))
			for _, t := range template.All() {
				nodes, rootID := t.Build()
				issues := btree.Validate(nodes, rootID)
				status := StyleSuccess.Render(iconSuccess)
				if btree.HasErrors(issues) {
					status = StyleError.Render(iconError)
				}
				fmt.Printf("  %s %-15s %2d nodes  %s\n",
					status, t.Name, len(nodes), StyleDim.Render(t.Description))
			}
			return nil
		},
	}

	return cmd
}
