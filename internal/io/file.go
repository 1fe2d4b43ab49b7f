// Package ioutils provides file system utilities for the keyclsound tools.
//
// This package contains functions for:
//   - Exclusive file creation
//   - Filename sanitization
//   - Directory creation
package ioutils

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// WriteNewFile writes data to a file that must not already exist.
//
// The file is created exclusively with mode 0644. If a file with the same
// name exists, or the write is denied, the error is returned instead of
// silently overwriting; callers that generate random file names can test
// the error with errors.Is(err, fs.ErrExist) and retry with a fresh name.
//
// Example:
//
//	err := WriteNewFile("/home/user/KeyCl/48201953.keyclsound", []byte(text))
//	if errors.Is(err, fs.ErrExist) {
//	    // pick another name
//	}
func WriteNewFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}

	_, werr := file.Write(data)
	cerr := file.Close()
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	return cerr
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// This function ensures filenames are valid across different operating
// systems, particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Sound: Part 1/2")      // Returns "Sound_ Part 1_2"
//	SanitizeFileName("Click...")             // Returns "Click"
//	SanitizeFileName("Name   with  spaces")  // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they don't
// exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
