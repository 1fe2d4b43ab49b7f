package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
)

func TestTagger_Taggable(t *testing.T) {
	tagger := NewTagger(nil)

	tests := []struct {
		path string
		want bool
	}{
		{"/sounds/click.mp3", true},
		{"/sounds/CLICK.MP3", true},
		{"/sounds/click.wav", false},
		{"/sounds/click.ogg", false},
		{"/sounds/click", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := tagger.Taggable(tt.path); got != tt.want {
				t.Errorf("Taggable(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestTagger_SkipsNonMP3(t *testing.T) {
	tagger := NewTagger(DefaultTagConfig())

	// Path does not exist; skipping must happen before any file access.
	err := tagger.SaveTags("/nonexistent/click.wav", descriptor.Descriptor{Title: "Click"})
	if err != nil {
		t.Errorf("SaveTags() on non-MP3 should be a no-op, got %v", err)
	}
}

func TestTagger_SaveTags_WritesDescriptorFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quork.mp3")
	if err := os.WriteFile(path, []byte("mpegbytesmpegbytes"), 0644); err != nil {
		t.Fatal(err)
	}

	tagger := NewTagger(DefaultTagConfig())
	err := tagger.SaveTags(path, descriptor.Descriptor{
		Title:  "Quork",
		Author: "MyInstants",
		Tags:   "duck,funny,quack",
		URL:    "https://example.com/cannard.mp3",
	})
	if err != nil {
		t.Fatalf("SaveTags() unexpected error: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen tagged file: %v", err)
	}
	defer tag.Close()

	if got := tag.Title(); got != "Quork" {
		t.Errorf("Title() = %q, want %q", got, "Quork")
	}
	if got := tag.Artist(); got != "MyInstants" {
		t.Errorf("Artist() = %q, want %q", got, "MyInstants")
	}
	// Genre holds the first tag only.
	if got := tag.Genre(); got != "duck" {
		t.Errorf("Genre() = %q, want %q", got, "duck")
	}
}

func TestTagger_DisabledIsNoOp(t *testing.T) {
	tagger := NewTagger(&TagConfig{ModifyTags: false})

	err := tagger.SaveTags("/nonexistent/click.mp3", descriptor.Descriptor{Title: "Click"})
	if err != nil {
		t.Errorf("SaveTags() with ModifyTags=false should be a no-op, got %v", err)
	}
}
