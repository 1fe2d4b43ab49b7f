package descriptor

import (
	"fmt"
	"strings"
)

// fieldOrder is the fixed serialization order of descriptor keys.
var fieldOrder = []string{"title", "author", "description", "tags", "url"}

// Encode produces the canonical textual encoding of a descriptor.
//
// The output is one "key: value" pair per line in the fixed order title,
// author, description, tags, url, each line terminated by a newline. The
// same descriptor always yields byte-identical output.
//
// Example:
//
//	d, _ := descriptor.Validate(descriptor.Fields{
//	    Title:  "Quork",
//	    Author: "MyInstants",
//	    Tags:   "duck,funny,quack",
//	    URL:    "https://example.com/cannard.mp3",
//	})
//	fmt.Print(descriptor.Encode(d))
//	// title: Quork
//	// author: MyInstants
//	// description:
//	// tags: duck,funny,quack
//	// url: https://example.com/cannard.mp3
func Encode(d Descriptor) string {
	var sb strings.Builder
	for _, key := range fieldOrder {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(d.field(key))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Decode parses descriptor text back into a Descriptor.
//
// Decode is the left inverse of Encode: Decode(Encode(d)) == d for any
// valid d. Input line order does not matter, keys are matched
// case-insensitively, and a single trailing newline is tolerated.
//
// Decode fails with a *ParseError if:
//   - a line does not match the "key: value" pattern
//   - a required key (author, tags, url) is missing
//
// Unknown keys are ignored. The original tool accepted any "key: value"
// line and only ever read the five known fields, so extra keys are treated
// as forward-compatible padding rather than an error.
//
// A missing title line yields DefaultTitle; a missing description line
// yields an empty description. Decode does not re-validate field values:
// use Validate when well-formedness matters.
func Decode(text string) (Descriptor, error) {
	seen := make(map[string]string)

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return Descriptor{}, &ParseError{
				Line:   i + 1,
				Reason: fmt.Sprintf("expected %q, got %q", "key: value", line),
			}
		}
		seen[key] = strings.TrimPrefix(value, " ")
	}

	for _, key := range []string{"author", "tags", "url"} {
		if _, ok := seen[key]; !ok {
			return Descriptor{}, &ParseError{
				Reason: fmt.Sprintf("missing required key %q", key),
			}
		}
	}

	title := seen["title"]
	if title == "" {
		title = DefaultTitle
	}

	return Descriptor{
		Title:       title,
		Author:      seen["author"],
		Description: seen["description"],
		Tags:        seen["tags"],
		URL:         seen["url"],
	}, nil
}

// field returns the value for a serialized key.
func (d Descriptor) field(key string) string {
	switch key {
	case "title":
		return d.Title
	case "author":
		return d.Author
	case "description":
		return d.Description
	case "tags":
		return d.Tags
	case "url":
		return d.URL
	}
	return ""
}
