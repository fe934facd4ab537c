package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/catalog"
)

// catalogCommand creates the catalog command listing leaf parameter
// reference data.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "catalog [actions|conditions]",
		Short:     "List the action and condition type reference tables",
		ValidArgs: []string{"actions", "conditions"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) > 0 {
				which = args[0]
			}
			if which == "" || which == "actions" {
				printActions()
			}
			if which == "" {
				fmt.Println()
			}
			if which == "" || which == "conditions" {
				printConditions()
			}
			return nil
		},
	}

	return cmd
}

func printActions() {
	fmt.Printf("%s\n", StyleTitle.Render("Actions"))
	category := ""
	for _, a := range catalog.Actions() {
		if a.Category != category {
			category = a.Category
			fmt.Printf("  %s\n", StyleHighlight.Render(category))
		}

		var reqs []string
		if a.RequiresSpellID {
			reqs = append(reqs, "spell ID")
		}
		if a.RequiresTarget {
			reqs = append(reqs, "target")
		}
		req := ""
		if len(reqs) > 0 {
			req = StyleDim.Render(" (requires " + strings.Join(reqs, ", ") + ")")
		}

		fmt.Printf("    %-24s %s%s\n", a.Value, StyleDim.Render(a.Description), req)
	}
}

func printConditions() {
	fmt.Printf("%s\n", StyleTitle.Render("Conditions"))
	category := ""
	for _, cd := range catalog.Conditions() {
		if cd.Category != category {
			category = cd.Category
			fmt.Printf("  %s\n", StyleHighlight.Render(category))
		}
		fmt.Printf("    %-20s %-12s %s\n",
			cd.Value,
			strings.Join(cd.Operators, " "),
			StyleDim.Render(cd.ValueHint))
	}
}
