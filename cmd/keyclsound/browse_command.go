package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optionallybluestudios/keycl/internal/library"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "browse [PATH]",
		Short: "List packages available in the remote sound library",
		Long: `Browse fetches the configured library listing and prints every
.keyclsound package found, walking into subdirectories. An optional PATH
argument restricts the walk to a directory within the library.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			browser, err := ctx.newBrowser()
			if err != nil {
				return err
			}

			root := ""
			if len(args) == 1 {
				root = args[0]
			}

			pkgs, err := browser.Packages(cmd.Context(), root)
			if err != nil {
				return fmt.Errorf("listing library: %w", err)
			}

			pkgs = library.Search(pkgs, search)
			if len(pkgs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No packages found.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, pkg := range pkgs {
				line := fmt.Sprintf("%-30s %s", pkg.Entry.Name, pkg.Descriptor.Title)
				if pkg.Descriptor.Author != "" {
					line += " by " + pkg.Descriptor.Author
				}
				if tags := pkg.Descriptor.TagList(); len(tags) > 0 {
					line += "  [" + strings.Join(tags, ", ") + "]"
				}
				if pkg.Err != nil {
					line += "  (metadata unavailable)"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by title, author, or tag")

	return cmd
}
