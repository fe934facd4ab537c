package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/document"
)

// validateCommand creates the validate command for checking documents.
func (c *CLI) validateCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <document.json>",
		Short: "Check a behavior-tree document for structural problems",
		Long: `Check a behavior-tree document for structural problems.

Every rule is evaluated: broken parent/child references, invalid child
counts, unreachable nodes, and missing required action fields. Errors
indicate a structurally broken tree and make the command exit non-zero;
warnings are informational and never block.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary line")

	return cmd
}

func (c *CLI) runValidate(path string, quiet bool) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	issues := doc.Validate()
	errCount, warnCount := issueCounts(issues)

	if !quiet && len(issues) > 0 {
		fmt.Printf("%s\n", StyleTitle.Render(doc.Name))
		printIssues(os.Stdout, issues)
		fmt.Println()
	}

	switch {
	case errCount > 0:
		fmt.Printf("%s %d error(s), %d warning(s)\n", StyleError.Render(iconError), errCount, warnCount)
		return fmt.Errorf("%s has %d validation error(s)", path, errCount)
	case warnCount > 0:
		fmt.Printf("%s valid with %d warning(s)\n", StyleWarning.Render(iconWarning), warnCount)
	default:
		fmt.Printf("%s %s is valid\n", StyleSuccess.Render(iconSuccess), path)
	}
	return nil
}
