package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the metadata of a .keyclsound file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			d, err := descriptor.Decode(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:       %s\n", d.Title)
			fmt.Fprintf(out, "Author:      %s\n", d.Author)
			if d.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", d.Description)
			}
			fmt.Fprintf(out, "Tags:        %s\n", strings.Join(d.TagList(), ", "))
			fmt.Fprintf(out, "URL:         %s\n", d.URL)
			return nil
		},
	}
}
