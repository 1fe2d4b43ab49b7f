package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/optionallybluestudios/keycl/internal/audio"
	"github.com/optionallybluestudios/keycl/internal/config"
	"github.com/optionallybluestudios/keycl/internal/descriptor"
	ioutils "github.com/optionallybluestudios/keycl/internal/io"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an install progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Downloader is the part of the HTTP client the installer depends on.
// *http.Client satisfies it; tests use a local stub.
type Downloader interface {
	DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error
	GetFileSize(ctx context.Context, url string) (int64, error)
}

// Result reports where an installed package ended up.
type Result struct {
	// AudioPath is the installed audio file.
	AudioPath string

	// DescriptorPath is the .keyclsound file saved alongside the audio.
	DescriptorPath string
}

// nameAttempts bounds the retries when a generated descriptor file name
// collides with an existing file.
const nameAttempts = 5

// Installer installs sound packages into the local sound folder.
//
// Installing a package means:
//  1. Validate the descriptor
//  2. Download the audio from its URL into the sounds folder, with retries
//  3. Tag the audio with the descriptor metadata (MP3 only)
//  4. Save the canonical .keyclsound file next to the audio
//
// Progress is reported through a callback so the CLI and the TUI can render
// it their own way.
type Installer struct {
	settings   *config.Settings
	client     Downloader
	tagger     *audio.Tagger
	onProgress func(ProgressEvent)
}

// NewInstaller creates an Installer. onProgress may be nil.
func NewInstaller(settings *config.Settings, client Downloader, onProgress func(ProgressEvent)) *Installer {
	return &Installer{
		settings:   settings,
		client:     client,
		tagger:     audio.NewTagger(&audio.TagConfig{ModifyTags: settings.ModifyTags, Title: audio.TagModify, Artist: audio.TagModify, Comment: audio.TagModify, Genre: audio.TagModify}),
		onProgress: onProgress,
	}
}

// Install downloads and installs the sound described by d.
//
// The descriptor is re-validated first, so callers can pass the result of
// descriptor.Decode directly; a *descriptor.ValidationError means the
// package itself is bad, any other error is an I/O failure.
func (ins *Installer) Install(ctx context.Context, d descriptor.Descriptor) (Result, error) {
	valid, err := descriptor.Validate(descriptor.Fields{
		Title:       d.Title,
		Author:      d.Author,
		Description: d.Description,
		Tags:        d.Tags,
		URL:         d.URL,
	})
	if err != nil {
		return Result{}, err
	}
	d = valid

	if err := ioutils.EnsureDir(ins.settings.SoundsPath); err != nil {
		return Result{}, fmt.Errorf("create sounds folder: %w", err)
	}

	audioPath := ins.audioPath(d)

	if ins.alreadyInstalled(ctx, audioPath, d.URL) {
		ins.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(audioPath)), Level: LevelVerbose})
	} else {
		if err := ins.download(ctx, d.URL, audioPath); err != nil {
			return Result{}, fmt.Errorf("download %s: %w", d.URL, err)
		}
		ins.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", filepath.Base(audioPath)), Level: LevelVerbose})
	}

	if err := ins.tagger.SaveTags(audioPath, d); err != nil {
		// A tagging failure does not invalidate the installed audio.
		ins.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", filepath.Base(audioPath), err), Level: LevelWarning})
	}

	descriptorPath, err := ins.SaveDescriptor(d)
	if err != nil {
		return Result{}, err
	}

	ins.progress(ProgressEvent{Message: fmt.Sprintf("Installed: %s", d.Title), Level: LevelSuccess})

	return Result{AudioPath: audioPath, DescriptorPath: descriptorPath}, nil
}

// SaveDescriptor writes the canonical encoding of d into the sounds folder
// under a freshly generated file name and returns the path.
//
// The file is created exclusively. On a name collision a fresh name is
// generated, a bounded number of times, so a collision can never silently
// overwrite an existing descriptor.
func (ins *Installer) SaveDescriptor(d descriptor.Descriptor) (string, error) {
	if err := ioutils.EnsureDir(ins.settings.SoundsPath); err != nil {
		return "", fmt.Errorf("create sounds folder: %w", err)
	}

	text := []byte(descriptor.Encode(d))

	var lastErr error
	for i := 0; i < nameAttempts; i++ {
		name := descriptor.GenerateFileName()
		if ins.settings.UseUUIDFileNames {
			name = descriptor.GenerateUUIDFileName()
		}

		path := filepath.Join(ins.settings.SoundsPath, name)
		lastErr = ioutils.WriteNewFile(path, text)
		if lastErr == nil {
			return path, nil
		}
		if !errors.Is(lastErr, fs.ErrExist) {
			return "", fmt.Errorf("save descriptor: %w", lastErr)
		}
	}

	return "", fmt.Errorf("save descriptor: %w", lastErr)
}

// audioPath derives the local audio file path from the descriptor: the
// sanitized title plus the URL's audio extension.
func (ins *Installer) audioPath(d descriptor.Descriptor) string {
	ext := path.Ext(d.URL)
	base := ioutils.SanitizeFileName(d.Title)
	return filepath.Join(ins.settings.SoundsPath, base+ext)
}

// alreadyInstalled reports whether the local file exists with the size the
// remote side advertises.
func (ins *Installer) alreadyInstalled(ctx context.Context, audioPath, url string) bool {
	info, err := os.Stat(audioPath)
	if err != nil {
		return false
	}
	size, err := ins.client.GetFileSize(ctx, url)
	if err != nil {
		return false
	}
	return info.Size() == size
}

// download fetches the audio with retries and exponential backoff.
//
// Byte-level progress from the transfer is folded into the event stream at
// quarter milestones so a slow download stays visible without flooding the
// caller.
func (ins *Installer) download(ctx context.Context, url, destPath string) error {
	var err error
	for tries := 0; tries < ins.settings.DownloadMaxRetries; tries++ {
		lastMilestone := -1
		err = ins.client.DownloadFile(ctx, url, destPath, func(written, total int64) {
			if total <= 0 {
				return
			}
			milestone := int(written*100/total) / 25 * 25
			if milestone > lastMilestone {
				lastMilestone = milestone
				ins.progress(ProgressEvent{Message: fmt.Sprintf("Downloading %s: %d%%", filepath.Base(destPath), milestone), Level: LevelVerbose})
			}
		})
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		ins.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, ins.settings.DownloadMaxRetries, url), Level: LevelWarning})
		ins.waitForRetry(ctx, tries)
	}
	return err
}

// waitForRetry sleeps between download attempts, honoring cancellation.
func (ins *Installer) waitForRetry(ctx context.Context, tries int) {
	cooldown := ins.settings.DownloadRetryCooldown * math.Pow(ins.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (ins *Installer) progress(event ProgressEvent) {
	if ins.onProgress != nil {
		ins.onProgress(event)
	}
}
