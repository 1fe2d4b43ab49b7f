// Package config provides configuration management for the KeyCL tools.
//
// This package handles:
//   - Loading and saving settings from ~/KeyCl/settings.json
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Sounds live in ~/KeyCl
//	// Packages are browsed from the shared library API
//	// ID3 tagging enabled
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultSettingsPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.SoundsPath = "/custom/sounds"
//	err := settings.Save(config.DefaultSettingsPath())
//
// The settings file is shared with the KeyCL desktop application, so keys
// the command line tools don't use (volume, theme, window size) are kept
// intact on load/save.
package config
