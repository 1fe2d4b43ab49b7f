package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
)

const quorkPackage = "title: Quork\n" +
	"author: OptionallyBlue\n" +
	"description: A bouncy little pop\n" +
	"tags: retro,mechanical\n" +
	"url: https://example.com/sounds/quork.mp3\n"

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCreateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t,
		"create",
		"--title", "Quork",
		"--author", "OptionallyBlue",
		"--description", "A bouncy little pop",
		"--tags", "retro,mechanical",
		"--url", "https://example.com/sounds/quork.mp3",
		"--output", dir,
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out, "Created ") {
		t.Errorf("unexpected output: %q", out)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one file, got %d", len(entries))
	}

	namePattern := regexp.MustCompile(`^\d{8}\.keyclsound$`)
	if !namePattern.MatchString(entries[0].Name()) {
		t.Errorf("file name %q does not match the random name pattern", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != quorkPackage {
		t.Errorf("written package = %q, want %q", data, quorkPackage)
	}
}

func TestCreateCommandRejectsBadURL(t *testing.T) {
	_, err := runCommand(t,
		"create",
		"--author", "OptionallyBlue",
		"--tags", "retro",
		"--url", "https://example.com/quork.flac",
		"--output", t.TempDir(),
	)
	if err == nil {
		t.Fatal("expected an error for a .flac URL")
	}
	if !strings.Contains(err.Error(), "url") {
		t.Errorf("error %q does not mention the url field", err)
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quork.keyclsound")
	if err := os.WriteFile(path, []byte(quorkPackage), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "valid package") || !strings.Contains(out, "Quork") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestValidateCommandRejectsMissingAuthor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.keyclsound")
	broken := "title: Quork\nurl: https://example.com/quork.mp3\n"
	if err := os.WriteFile(path, []byte(broken), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "validate", path); err == nil {
		t.Fatal("expected an error for a package without an author")
	}
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quork.keyclsound")
	if err := os.WriteFile(path, []byte(quorkPackage), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "show", path)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	for _, want := range []string{"Quork", "OptionallyBlue", "retro, mechanical", "https://example.com/sounds/quork.mp3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestBrowseCommand(t *testing.T) {
	var server *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/contents/sounds", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{
			{
				"name":         "12345678.keyclsound",
				"type":         "file",
				"path":         "sounds/12345678.keyclsound",
				"download_url": server.URL + "/download/12345678.keyclsound",
			},
		})
	})
	mux.HandleFunc("/download/12345678.keyclsound", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quorkPackage))
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	settingsPath := filepath.Join(t.TempDir(), "settings.json")
	settings := map[string]any{
		"library_api": server.URL + "/repos/o/r/contents/sounds",
	}
	data, err := json.Marshal(settings)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "browse", "--config", settingsPath)
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	if !strings.Contains(out, "Quork") {
		t.Errorf("output %q missing package title", out)
	}
}

func TestResolveDescriptorFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quork.keyclsound")
	if err := os.WriteFile(path, []byte(quorkPackage), 0644); err != nil {
		t.Fatal(err)
	}

	var configFlag string
	ctx := newCommandContext(&configFlag)

	d, err := resolveDescriptor(t.Context(), ctx, path)
	if err != nil {
		t.Fatalf("resolveDescriptor failed: %v", err)
	}
	if d.Title != "Quork" || d.URL != "https://example.com/sounds/quork.mp3" {
		t.Errorf("unexpected descriptor: %+v", d)
	}
}

func TestWriteDescriptorUUIDNames(t *testing.T) {
	dir := t.TempDir()
	d, err := descriptor.Validate(descriptor.Fields{
		Author: "OptionallyBlue",
		Tags:   "retro",
		URL:    "https://example.com/quork.mp3",
	})
	if err != nil {
		t.Fatal(err)
	}

	path, err := writeDescriptor(dir, d, true)
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Base(path)
	if !strings.HasSuffix(name, descriptor.Extension) {
		t.Errorf("name %q missing extension", name)
	}
	if regexp.MustCompile(`^\d{8}\.keyclsound$`).MatchString(name) {
		t.Errorf("name %q looks like an 8-digit name, expected a UUID", name)
	}
}
