package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/btree"
	"github.com/agatho/bottree/pkg/document"
)

// infoCommand creates the info command for summarizing documents.
func (c *CLI) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <document.json>",
		Short: "Summarize a behavior-tree document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(args[0])
		},
	}

	return cmd
}

func (c *CLI) runInfo(path string) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", StyleTitle.Render(doc.Name))
	printField("Version", fmt.Sprintf("%d", doc.Version))
	printField("Class", fmt.Sprintf("%s / %s", doc.BotClass, doc.BotSpec))
	printField("Levels", fmt.Sprintf("%d-%d", doc.MinLevel, doc.MaxLevel))
	if len(doc.Tags) > 0 {
		printField("Tags", strings.Join(doc.Tags, ", "))
	}
	if doc.Author != "" {
		printField("Author", doc.Author)
	}
	printField("Created", doc.CreatedAt.Format("2006-01-02 15:04"))
	printField("Modified", doc.ModifiedAt.Format("2006-01-02 15:04"))

	var composites, decorators, leaves int
	for i := range doc.Nodes {
		switch doc.Nodes[i].Category() {
		case btree.CategoryComposite:
			composites++
		case btree.CategoryDecorator:
			decorators++
		case btree.CategoryLeaf:
			leaves++
		}
	}
	printField("Nodes", fmt.Sprintf("%d (%d composite, %d decorator, %d leaf)",
		len(doc.Nodes), composites, decorators, leaves))

	errCount, warnCount := issueCounts(doc.Validate())
	switch {
	case errCount > 0:
		printField("Validation", StyleError.Render(fmt.Sprintf("%d error(s), %d warning(s)", errCount, warnCount)))
	case warnCount > 0:
		printField("Validation", StyleWarning.Render(fmt.Sprintf("%d warning(s)", warnCount)))
	default:
		printField("Validation", StyleSuccess.Render("clean"))
	}

	return nil
}

func printField(name, value string) {
	fmt.Printf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%-10s", name)), StyleValue.Render(value))
}
