package audio

import (
	"strings"

	"github.com/bogem/id3v2"
	"github.com/optionallybluestudios/keycl/internal/descriptor"
)

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the descriptor.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field written from a
// sound descriptor.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Title:      TagModify,      // Sound title from the descriptor
//	    Artist:     TagModify,      // Descriptor author
//	    Comment:    TagModify,      // Descriptor description
//	    Genre:      TagDoNotModify, // Keep whatever the file carries
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, SaveTags is a no-op.
	ModifyTags bool

	// Title controls the TIT2 (Title) frame, written from Descriptor.Title.
	Title TagEditAction

	// Artist controls the TPE1 (Lead artist) frame, written from
	// Descriptor.Author.
	Artist TagEditAction

	// Comment controls the COMM (Comments) frame, written from
	// Descriptor.Description.
	Comment TagEditAction

	// Genre controls the TCON (Content type) frame, written from the
	// descriptor tags joined with spaces.
	Genre TagEditAction
}

// DefaultTagConfig returns the default tag configuration: every supported
// frame is written from the descriptor.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Title:      TagModify,
		Artist:     TagModify,
		Comment:    TagModify,
		Genre:      TagModify,
	}
}

// Tagger writes descriptor metadata into MP3 files.
//
// Only MP3 audio is tagged: .wav and .ogg files installed from a package
// are left untouched, since ID3 is an MP3 container feature.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//
//	// After downloading the audio for a package
//	if err := tagger.SaveTags(audioPath, pkg.Descriptor); err != nil {
//	    // tagging failure does not invalidate the download
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// Taggable reports whether path names a file this Tagger can write to.
func (t *Tagger) Taggable(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".mp3")
}

// SaveTags writes descriptor fields into the MP3 file at path.
//
// The mapping is:
//   - Title   -> TIT2
//   - Author  -> TPE1
//   - Description -> COMM (language "eng")
//   - Tags    -> TCON, joined with spaces
//
// Returns an error if the file cannot be opened or saved. Files that are
// not MP3s (per Taggable) are skipped without error.
func (t *Tagger) SaveTags(path string, d descriptor.Descriptor) error {
	if !t.config.ModifyTags || !t.Taggable(path) {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	// Title (TIT2)
	switch t.config.Title {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(d.Title)
	}

	// Artist (TPE1)
	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(d.Author)
	}

	// Comment (COMM)
	switch t.config.Comment {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Comments"))
	case TagModify:
		if d.Description != "" {
			comment := id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    "eng",
				Description: "",
				Text:        d.Description,
			}
			tag.AddCommentFrame(comment)
		}
	}

	// Genre (TCON) takes the first tag; TCON holds one genre, not a list.
	switch t.config.Genre {
	case TagEmpty:
		tag.SetGenre("")
	case TagModify:
		if tags := d.TagList(); len(tags) > 0 {
			tag.SetGenre(tags[0])
		}
	}

	return tag.Save()
}
