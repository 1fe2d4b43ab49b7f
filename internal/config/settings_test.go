package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	defaults := DefaultSettings()
	if settings.Volume != defaults.Volume {
		t.Errorf("Volume = %v, want %v", settings.Volume, defaults.Volume)
	}
	if settings.LibraryAPI != DefaultLibraryAPI {
		t.Errorf("LibraryAPI = %q, want %q", settings.LibraryAPI, DefaultLibraryAPI)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	settings := DefaultSettings()
	settings.SoundsPath = "/custom/sounds"
	settings.UseUUIDFileNames = true
	settings.DownloadMaxRetries = 3

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if loaded.SoundsPath != "/custom/sounds" {
		t.Errorf("SoundsPath = %q, want %q", loaded.SoundsPath, "/custom/sounds")
	}
	if !loaded.UseUUIDFileNames {
		t.Error("UseUUIDFileNames = false, want true")
	}
	if loaded.DownloadMaxRetries != 3 {
		t.Errorf("DownloadMaxRetries = %d, want 3", loaded.DownloadMaxRetries)
	}
}

func TestLoad_PartialFileMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"volume": 0.8}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if settings.Volume != 0.8 {
		t.Errorf("Volume = %v, want 0.8", settings.Volume)
	}
	// Keys absent from the file keep their defaults.
	if settings.DownloadMaxRetries != DefaultSettings().DownloadMaxRetries {
		t.Errorf("DownloadMaxRetries = %d, want default %d",
			settings.DownloadMaxRetries, DefaultSettings().DownloadMaxRetries)
	}
}
