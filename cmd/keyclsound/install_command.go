package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
	"github.com/optionallybluestudios/keycl/internal/http"
	"github.com/optionallybluestudios/keycl/internal/install"
	"github.com/optionallybluestudios/keycl/internal/library"
)

func newInstallCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "install FILE|NAME",
		Short: "Install a sound from a package file or the remote library",
		Long: `Install downloads a sound into the configured sound folder.

The argument is either a local .keyclsound file or the name of a package
in the remote library. The audio file is downloaded next to a copy of
the package so the sound folder stays self describing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			d, err := resolveDescriptor(cmd.Context(), ctx, args[0])
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Would install %q by %s from %s into %s\n",
					d.Title, d.Author, d.URL, settings.SoundsPath)
				return nil
			}

			out := cmd.OutOrStdout()
			installer := install.NewInstaller(settings, http.NewClient(), func(e install.ProgressEvent) {
				switch e.Level {
				case install.LevelWarning:
					fmt.Fprintf(out, "warning: %s\n", e.Message)
				case install.LevelError:
					fmt.Fprintf(out, "error: %s\n", e.Message)
				default:
					fmt.Fprintln(out, e.Message)
				}
			})

			result, err := installer.Install(cmd.Context(), d)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Installed %q to %s\n", d.Title, result.AudioPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be installed without downloading")

	return cmd
}

// resolveDescriptor turns the install argument into a descriptor. A path
// to an existing .keyclsound file wins; anything else is looked up in
// the remote library by package or title name.
func resolveDescriptor(cmdCtx context.Context, ctx *commandContext, arg string) (descriptor.Descriptor, error) {
	if strings.HasSuffix(strings.ToLower(arg), descriptor.Extension) {
		if data, err := os.ReadFile(arg); err == nil {
			d, err := descriptor.Decode(string(data))
			if err != nil {
				return descriptor.Descriptor{}, fmt.Errorf("%s: %w", arg, err)
			}
			return d, nil
		}
	}

	browser, err := ctx.newBrowser()
	if err != nil {
		return descriptor.Descriptor{}, err
	}

	pkgs, err := browser.Packages(cmdCtx, "")
	if err != nil {
		return descriptor.Descriptor{}, fmt.Errorf("listing library: %w", err)
	}

	pkg, ok := library.Find(pkgs, arg)
	if !ok {
		return descriptor.Descriptor{}, fmt.Errorf("no package named %q in the library", arg)
	}
	if pkg.Err != nil {
		return descriptor.Descriptor{}, fmt.Errorf("package %s has no usable metadata: %w", pkg.Entry.Name, pkg.Err)
	}

	return pkg.Descriptor, nil
}
