// Package sounds reads the local sound folder (~/KeyCl by default).
//
// The folder holds the audio files the desktop application plays on key
// presses, plus the .keyclsound descriptors saved when packages were
// installed. Scanning pairs each audio file with its descriptor when one
// names it, so tools can show where a sound came from.
//
// No playback happens here; that belongs to the desktop application.
package sounds

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
	ioutils "github.com/optionallybluestudios/keycl/internal/io"
)

// audioExtensions lists the file types the desktop application loads from
// the sound folder. Broader than the descriptor URL whitelist: locally
// imported .m4a files are playable even though packages never reference
// them.
var audioExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
	".ogg": true,
	".m4a": true,
}

// Sound is one audio file in the local library.
type Sound struct {
	// Name is the audio file name without extension, as shown to the user.
	Name string

	// Path is the absolute audio file path.
	Path string

	// Descriptor is the metadata of the package this sound was installed
	// from, or nil for sounds dropped into the folder by hand.
	Descriptor *descriptor.Descriptor
}

// Library scans a sound folder.
type Library struct {
	folder string
}

// NewLibrary creates a Library over the given folder.
func NewLibrary(folder string) *Library {
	return &Library{folder: folder}
}

// Folder returns the folder this library reads.
func (l *Library) Folder() string {
	return l.folder
}

// Scan lists the sounds in the folder, sorted by name.
//
// Every descriptor file in the folder is decoded; a descriptor is attached
// to the sound whose file name matches its sanitized title with the URL's
// extension (how the installer names audio). Descriptors that fail to
// decode are skipped: a broken metadata file must not hide a playable
// sound.
//
// A missing folder is not an error; it scans as empty.
func (l *Library) Scan() ([]Sound, error) {
	entries, err := os.ReadDir(l.folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	descriptors := l.readDescriptors(entries)

	var found []Sound
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !audioExtensions[ext] {
			continue
		}

		found = append(found, Sound{
			Name:       strings.TrimSuffix(name, filepath.Ext(name)),
			Path:       filepath.Join(l.folder, name),
			Descriptor: descriptors[name],
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}

// readDescriptors decodes every .keyclsound file and indexes the results
// by the audio file name each descriptor points at.
func (l *Library) readDescriptors(entries []os.DirEntry) map[string]*descriptor.Descriptor {
	byAudioName := make(map[string]*descriptor.Descriptor)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), descriptor.Extension) {
			continue
		}

		text, err := os.ReadFile(filepath.Join(l.folder, entry.Name()))
		if err != nil {
			continue
		}
		d, err := descriptor.Decode(string(text))
		if err != nil {
			continue
		}

		byAudioName[audioFileName(d)] = &d
	}

	return byAudioName
}

// audioFileName mirrors how the installer names downloaded audio: the
// sanitized title plus the URL extension.
func audioFileName(d descriptor.Descriptor) string {
	return ioutils.SanitizeFileName(d.Title) + filepath.Ext(d.URL)
}
