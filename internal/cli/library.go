package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agatho/bottree/pkg/document"
)

// libraryCommand creates the library command group for managing stored
// documents.
func (c *CLI) libraryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the local behavior-tree document library",
	}

	cmd.AddCommand(c.libraryListCommand())
	cmd.AddCommand(c.librarySaveCommand())
	cmd.AddCommand(c.libraryLoadCommand())
	cmd.AddCommand(c.libraryDeleteCommand())

	return cmd
}

func (c *CLI) libraryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openLibrary()
			if err != nil {
				return err
			}
			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("%s Library is empty (%s)\n", StyleDim.Render(iconInfo), store.Dir())
				return nil
			}

			fmt.Printf("%s\n", StyleTitle.Render("Library"))
			for _, e := range entries {
				fmt.Printf("  %-30s %-10s %3d nodes  %s\n",
					e.Name, e.BotClass, e.NodeCount,
					StyleDim.Render(e.ModifiedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

func (c *CLI) librarySaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <document.json>",
		Short: "Store a document file in the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return err
			}
			store, err := c.openLibrary()
			if err != nil {
				return err
			}
			path, err := store.Save(&doc)
			if err != nil {
				return err
			}
			fmt.Printf("%s Saved %s to %s\n", StyleSuccess.Render(iconSuccess), doc.Name, path)
			return nil
		},
	}
}

func (c *CLI) libraryLoadCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Copy a stored document out of the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openLibrary()
			if err != nil {
				return err
			}
			doc, err := store.Load(args[0])
			if err != nil {
				return err
			}

			if output == "" {
				return document.Write(&doc, cmd.OutOrStdout())
			}
			if err := document.WriteFile(&doc, output); err != nil {
				return err
			}
			fmt.Printf("%s Wrote %s\n", StyleSuccess.Render(iconSuccess), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) libraryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored document from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openLibrary()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("%s Deleted %s\n", StyleSuccess.Render(iconSuccess), args[0])
			return nil
		},
	}
}
