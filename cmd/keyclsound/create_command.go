package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
	ioutils "github.com/optionallybluestudios/keycl/internal/io"
)

var errCancelled = errors.New("cancelled")

// createNameAttempts bounds how many random file names are tried before
// giving up on a crowded output directory.
const createNameAttempts = 5

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var fields descriptor.Fields
	var outputDir string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a .keyclsound package file",
		Long: `Create writes a new .keyclsound package file describing a sound.

Fields not supplied as flags are collected interactively. The file is
written under a randomly generated name so that packages from different
authors never collide.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptMissingFields(&fields); err != nil {
				return err
			}

			d, err := descriptor.Validate(fields)
			if err != nil {
				return err
			}

			if outputDir == "" {
				outputDir = "."
			}
			if err := ioutils.EnsureDir(outputDir); err != nil {
				return err
			}

			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			path, err := writeDescriptor(outputDir, d, settings.UseUUIDFileNames)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Title, "title", "", "Sound title (blank for \""+descriptor.DefaultTitle+"\")")
	cmd.Flags().StringVar(&fields.Author, "author", "", "Sound author")
	cmd.Flags().StringVar(&fields.Description, "description", "", "Free-text description")
	cmd.Flags().StringVar(&fields.Tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&fields.URL, "url", "", "Direct download URL of the audio file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write the package into (default current directory)")

	return cmd
}

// promptMissingFields asks for every field that was not provided as a
// flag. The title and description may be left blank.
func promptMissingFields(fields *descriptor.Fields) error {
	var inputs []huh.Field

	if fields.Title == "" {
		inputs = append(inputs, huh.NewInput().
			Title("Title").
			Description("Display name of the sound, blank for \""+descriptor.DefaultTitle+"\"").
			Value(&fields.Title))
	}
	if fields.Author == "" {
		inputs = append(inputs, huh.NewInput().
			Title("Author").
			Description("Who made or imported this sound").
			Value(&fields.Author))
	}
	if fields.Description == "" {
		inputs = append(inputs, huh.NewInput().
			Title("Description").
			Description("Optional free text").
			Value(&fields.Description))
	}
	if fields.Tags == "" {
		inputs = append(inputs, huh.NewInput().
			Title("Tags").
			Description("Comma-separated, e.g. retro,mechanical,clicky").
			Value(&fields.Tags))
	}
	if fields.URL == "" {
		inputs = append(inputs, huh.NewInput().
			Title("URL").
			Description("Direct link to an .mp3, .wav, or .ogg file").
			Value(&fields.URL))
	}

	if len(inputs) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(inputs...))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errCancelled
		}
		return fmt.Errorf("collecting fields: %w", err)
	}

	return nil
}

// writeDescriptor encodes d and writes it under a fresh random name,
// retrying on a name collision.
func writeDescriptor(dir string, d descriptor.Descriptor, useUUID bool) (string, error) {
	data := []byte(descriptor.Encode(d))

	for attempt := 0; attempt < createNameAttempts; attempt++ {
		name := descriptor.GenerateFileName()
		if useUUID {
			name = descriptor.GenerateUUIDFileName()
		}

		path := filepath.Join(dir, name)
		err := ioutils.WriteNewFile(path, data)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
	}

	return "", fmt.Errorf("could not find a free package name in %s after %d attempts", dir, createNameAttempts)
}
