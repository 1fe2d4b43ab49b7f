package descriptor

import (
	"strings"
)

// Extension is the file extension for descriptor files, including the dot.
const Extension = ".keyclsound"

// DefaultTitle is substituted when a descriptor is created without a title.
const DefaultTitle = "Untitled Song"

// AudioExtensions lists the audio file extensions a descriptor URL may end
// with. The match is case-sensitive: ".MP3" is rejected.
var AudioExtensions = []string{".mp3", ".wav", ".ogg"}

// Descriptor is the metadata record stored in a .keyclsound file.
//
// A Descriptor is only ever constructed through Validate or Decode, both of
// which guarantee the invariants: Author, Tags and URL are non-blank, the
// URL ends in a recognized audio extension, and Title is never blank
// (defaulting to DefaultTitle).
type Descriptor struct {
	// Title is the display name of the sound.
	Title string

	// Author identifies the creator or importer of the sound.
	Author string

	// Description is free text describing the sound. May be empty.
	Description string

	// Tags is a comma-separated list of free-text labels, e.g.
	// "retro,mechanical,clicky". No deduplication or normalization is
	// applied.
	Tags string

	// URL points at the audio file and must end in .mp3, .wav or .ogg.
	URL string
}

// Fields holds candidate field values before validation.
//
// Callers are expected to trim leading/trailing whitespace before calling
// Validate; Validate treats the values as-is.
type Fields struct {
	Title       string
	Author      string
	Description string
	Tags        string
	URL         string
}

// TagList splits the Tags field into its individual labels, dropping empty
// entries produced by stray commas.
func (d Descriptor) TagList() []string {
	var tags []string
	for _, t := range strings.Split(d.Tags, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Validate checks candidate field values and returns a normalized
// Descriptor.
//
// Validation fails with a *ValidationError naming every offending field if:
//   - Author is blank
//   - Tags is blank
//   - URL is blank
//   - URL does not end in .mp3, .wav or .ogg (case-sensitive)
//   - any field value contains a line break
//
// Line breaks are rejected because the encoded form is one "key: value"
// pair per line; a value with an embedded newline could never survive a
// Decode round trip.
//
// On success a blank Title is replaced with DefaultTitle. Validate has no
// side effects and is safe to call concurrently.
func Validate(f Fields) (Descriptor, error) {
	verr := &ValidationError{}

	if f.Author == "" {
		verr.add("author", "must not be blank")
	}
	if f.Tags == "" {
		verr.add("tags", "must not be blank")
	}
	if f.URL == "" {
		verr.add("url", "must not be blank")
	} else if !hasAudioExtension(f.URL) {
		verr.add("url", "must end in .mp3, .wav or .ogg")
	}

	for _, fv := range []struct {
		field string
		value string
	}{
		{"title", f.Title},
		{"author", f.Author},
		{"description", f.Description},
		{"tags", f.Tags},
		{"url", f.URL},
	} {
		if strings.ContainsAny(fv.value, "\r\n") {
			verr.add(fv.field, "must not contain line breaks")
		}
	}

	if len(verr.Fields) > 0 {
		return Descriptor{}, verr
	}

	title := f.Title
	if title == "" {
		title = DefaultTitle
	}

	return Descriptor{
		Title:       title,
		Author:      f.Author,
		Description: f.Description,
		Tags:        f.Tags,
		URL:         f.URL,
	}, nil
}

// hasAudioExtension reports whether url ends in one of AudioExtensions.
func hasAudioExtension(url string) bool {
	for _, ext := range AudioExtensions {
		if strings.HasSuffix(url, ext) {
			return true
		}
	}
	return false
}
