package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/document"
	"github.com/agatho/bottree/pkg/errors"
	"github.com/agatho/bottree/pkg/layout"
	"github.com/agatho/bottree/pkg/template"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	name     string // document name
	output   string // output file path
	botClass string // bot class restriction
	botSpec  string // bot spec restriction
	minLevel int    // minimum bot level
	maxLevel int    // maximum bot level
	empty    bool   // create an empty document instead of using a template
	save     bool   // store in the library instead of writing a file
}

// newCommand creates the new command for building documents from templates.
func (c *CLI) newCommand() *cobra.Command {
	opts := newOpts{minLevel: 1, maxLevel: 90}

	cmd := &cobra.Command{
		Use:   "new [template]",
		Short: "Create a behavior-tree document from a template",
		Long: `Create a behavior-tree document from a template.

Without a template argument, an interactive picker lists the available
templates. Use --empty to start from a blank document instead.

Examples:
  bottree new basic-melee -o warrior.json
  bottree new holy-healer --name "Priest Healing" --class Priest --save
  bottree new --empty --name "Scratch Tree"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tplName := ""
			if len(args) > 0 {
				tplName = args[0]
			}
			return c.runNew(tplName, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "document name (defaults to the template name)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to <template>.json)")
	cmd.Flags().StringVar(&opts.botClass, "class", "Any", "bot class restriction")
	cmd.Flags().StringVar(&opts.botSpec, "spec", "Any", "bot spec restriction")
	cmd.Flags().IntVar(&opts.minLevel, "min-level", opts.minLevel, "minimum bot level")
	cmd.Flags().IntVar(&opts.maxLevel, "max-level", opts.maxLevel, "maximum bot level")
	cmd.Flags().BoolVar(&opts.empty, "empty", false, "create an empty document (no template)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "store the document in the library instead of a file")

	return cmd
}

// runNew builds the document, lays it out, and writes it.
func (c *CLI) runNew(tplName string, opts newOpts) error {
	doc := document.New(opts.name)
	doc.BotClass = opts.botClass
	doc.BotSpec = opts.botSpec
	doc.MinLevel = opts.minLevel
	doc.MaxLevel = opts.maxLevel
	doc.Author = c.Config.Author

	outName := "untitled"

	if !opts.empty {
		tpl, err := c.resolveTemplate(tplName)
		if err != nil {
			return err
		}
		if tpl == nil {
			c.Logger.Info("No template selected")
			return nil
		}

		nodes, rootID := tpl.Build()
		doc.Nodes = layout.AutoLayout(nodes, rootID, c.Config.LayoutConfig(), 0, 0)
		doc.RootID = rootID
		if opts.name == "" {
			doc.Name = tpl.Name
		}
		outName = tpl.Name
		c.Logger.Debugf("Built template %s: %d nodes", tpl.Name, len(doc.Nodes))
	}

	if _, warnings := issueCounts(doc.Validate()); warnings > 0 {
		c.Logger.Warnf("Document starts with %d validation warning(s)", warnings)
	}

	if opts.save {
		store, err := c.openLibrary()
		if err != nil {
			return err
		}
		path, err := store.Save(&doc)
		if err != nil {
			return err
		}
		fmt.Printf("%s Saved %s to library: %s\n", StyleSuccess.Render(iconSuccess), doc.Name, path)
		return nil
	}

	output := opts.output
	if output == "" {
		output = outName + ".json"
	}
	if err := document.WriteFile(&doc, output); err != nil {
		return err
	}
	fmt.Printf("%s Created %s (%d nodes)\n", StyleSuccess.Render(iconSuccess), output, len(doc.Nodes))
	return nil
}

// resolveTemplate returns the named template, or runs the interactive
// picker when no name is given. A nil result with nil error means the
// user quit the picker without selecting.
func (c *CLI) resolveTemplate(name string) (*template.Template, error) {
	if name == "" {
		return pickTemplate()
	}
	tpl, ok := template.ByName(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeTemplateNotFound,
			"unknown template %q (available: %v)", name, template.Names())
	}
	return &tpl, nil
}
