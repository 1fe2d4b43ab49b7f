// Package descriptor implements the .keyclsound package format.
//
// A .keyclsound file describes a downloadable keyboard sound: who made it,
// how to find it in a library, and where the audio lives. Files are plain
// UTF-8 text with one "key: value" pair per line in a fixed order:
//
//	title: Retro Typewriter
//	author: OptionallyBlue
//	description: A vintage typewriter sound effect for your keyboard.
//	tags: retro,mechanical,clicky
//	url: https://example.com/sounds/typewriter.mp3
//
// # Validation
//
// Use Validate to turn raw user input into a well-formed Descriptor:
//
//	d, err := descriptor.Validate(descriptor.Fields{
//	    Author: "OptionallyBlue",
//	    Tags:   "retro,clicky",
//	    URL:    "https://example.com/typewriter.mp3",
//	})
//	// d.Title == "Untitled Song" (blank titles are defaulted)
//
// # Encoding and Decoding
//
// Encode produces the canonical text form; Decode is its left inverse:
//
//	text := descriptor.Encode(d)
//	back, err := descriptor.Decode(text)
//	// back == d
//
// # File Names
//
// New descriptor files get a random 8-digit name like "48201953.keyclsound"
// via GenerateFileName. GenerateUUIDFileName is a higher-entropy alternative
// for callers that want collision-free names.
//
// All operations are pure: the package never touches the network or the
// file system, so it stays trivially testable.
package descriptor
