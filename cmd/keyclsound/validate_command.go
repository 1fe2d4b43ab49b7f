package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a .keyclsound file is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			d, err := descriptor.Decode(string(data))
			if err != nil {
				var parseErr *descriptor.ParseError
				if errors.As(err, &parseErr) {
					return fmt.Errorf("%s is not a valid package: %w", path, parseErr)
				}
				return err
			}

			// Decode only checks structure. Re-validate the field values
			// so that a hand-edited file with, say, a .flac URL is caught.
			if _, err := descriptor.Validate(descriptor.Fields{
				Title:       d.Title,
				Author:      d.Author,
				Description: d.Description,
				Tags:        d.Tags,
				URL:         d.URL,
			}); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid package (%q by %s)\n", path, d.Title, d.Author)
			return nil
		},
	}
}
