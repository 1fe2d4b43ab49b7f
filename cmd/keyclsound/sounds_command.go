package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optionallybluestudios/keycl/internal/sounds"
)

func newSoundsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sounds",
		Short: "List installed sounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			lib := sounds.NewLibrary(settings.SoundsPath)
			installed, err := lib.Scan()
			if err != nil {
				return fmt.Errorf("scanning %s: %w", lib.Folder(), err)
			}

			out := cmd.OutOrStdout()
			if len(installed) == 0 {
				fmt.Fprintf(out, "No sounds installed in %s.\n", lib.Folder())
				return nil
			}

			for _, sound := range installed {
				if sound.Descriptor != nil {
					fmt.Fprintf(out, "%-30s %q by %s\n", sound.Name, sound.Descriptor.Title, sound.Descriptor.Author)
				} else {
					fmt.Fprintf(out, "%-30s (no package metadata)\n", sound.Name)
				}
			}
			return nil
		},
	}
}
