package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultLibraryAPI is the listing endpoint for the shared sound library.
// It returns a JSON array of directory entries (name, type, path,
// download_url) for a repository path.
const DefaultLibraryAPI = "https://api.github.com/repos/OptionallyBlueStudios/KeyCL/contents/sounds"

// Settings holds all configuration options for the KeyCL tools.
//
// The file lives at ~/KeyCl/settings.json next to the installed sounds and
// is shared with the desktop application, so the application keys (volume,
// enabled, current_sound, theme, window_size, first_run) are preserved here
// even though the command line tools never act on them.
type Settings struct {
	// Desktop application settings
	Volume       float64 `json:"volume"`
	Enabled      bool    `json:"enabled"`
	CurrentSound string  `json:"current_sound"`
	Theme        string  `json:"theme"`
	WindowSize   string  `json:"window_size"`
	FirstRun     bool    `json:"first_run"`

	// Sound library settings
	SoundsPath string `json:"sounds_path"`
	LibraryAPI string `json:"library_api"`

	// Download settings
	DownloadMaxRetries    int     `json:"download_max_retries"`
	DownloadRetryCooldown float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent float64 `json:"download_retry_exponent"`
	MaxConcurrentFetches  int     `json:"max_concurrent_fetches"`

	// Descriptor settings
	UseUUIDFileNames bool `json:"use_uuid_file_names"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Volume:     0.5,
		Enabled:    true,
		Theme:      "dark",
		WindowSize: "1200x800",
		FirstRun:   true,

		SoundsPath: DefaultSoundsPath(),
		LibraryAPI: DefaultLibraryAPI,

		DownloadMaxRetries:    7,
		DownloadRetryCooldown: 0.2,
		DownloadRetryExponent: 4.0,
		MaxConcurrentFetches:  10,

		UseUUIDFileNames: false,

		ModifyTags: true,
	}
}

// DefaultSoundsPath returns the default sound folder, ~/KeyCl.
func DefaultSoundsPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, "KeyCl")
}

// DefaultSettingsPath returns the default settings file location,
// ~/KeyCl/settings.json.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultSoundsPath(), "settings.json")
}

// Load reads settings from a JSON file.
//
// Loaded values are merged over the defaults so that a settings file
// written by an older version keeps working. A missing file is not an
// error: the defaults are returned.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
