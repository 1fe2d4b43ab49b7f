package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/optionallybluestudios/keycl/internal/config"
	"github.com/optionallybluestudios/keycl/internal/descriptor"
)

// stubDownloader writes canned bytes instead of hitting the network.
type stubDownloader struct {
	body     []byte
	failures int // number of DownloadFile calls that fail before success
	calls    int
}

func (s *stubDownloader) DownloadFile(_ context.Context, _, destPath string, onProgress func(written, total int64)) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("connection reset")
	}
	if onProgress != nil {
		total := int64(len(s.body))
		onProgress(total/2, total)
		onProgress(total, total)
	}
	return os.WriteFile(destPath, s.body, 0644)
}

func (s *stubDownloader) GetFileSize(_ context.Context, _ string) (int64, error) {
	return int64(len(s.body)), nil
}

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	settings := config.DefaultSettings()
	settings.SoundsPath = t.TempDir()
	settings.ModifyTags = false // no real MP3 bytes in these tests
	settings.DownloadMaxRetries = 3
	settings.DownloadRetryCooldown = 0 // no sleeping in tests
	return settings
}

func validDescriptor() descriptor.Descriptor {
	d, err := descriptor.Validate(descriptor.Fields{
		Title:       "Quork",
		Author:      "MyInstants",
		Description: "A funny quack sound",
		Tags:        "duck,funny,quack",
		URL:         "https://example.com/cannard.mp3",
	})
	if err != nil {
		panic(err)
	}
	return d
}

func TestInstaller_Install(t *testing.T) {
	settings := testSettings(t)
	dl := &stubDownloader{body: []byte("mp3bytes")}

	var events []ProgressEvent
	installer := NewInstaller(settings, dl, func(e ProgressEvent) {
		events = append(events, e)
	})

	result, err := installer.Install(context.Background(), validDescriptor())
	if err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}

	if filepath.Base(result.AudioPath) != "Quork.mp3" {
		t.Errorf("AudioPath = %q, want basename %q", result.AudioPath, "Quork.mp3")
	}
	if _, err := os.Stat(result.AudioPath); err != nil {
		t.Errorf("audio file missing: %v", err)
	}

	namePattern := regexp.MustCompile(`^\d{8}\.keyclsound$`)
	if !namePattern.MatchString(filepath.Base(result.DescriptorPath)) {
		t.Errorf("DescriptorPath basename = %q, want 8-digit name", filepath.Base(result.DescriptorPath))
	}

	// The saved descriptor must round-trip to the installed one.
	text, err := os.ReadFile(result.DescriptorPath)
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	back, err := descriptor.Decode(string(text))
	if err != nil {
		t.Fatalf("Decode(saved) unexpected error: %v", err)
	}
	if back != validDescriptor() {
		t.Errorf("saved descriptor = %+v, want %+v", back, validDescriptor())
	}

	if len(events) == 0 {
		t.Error("no progress events reported")
	}
}

func TestInstaller_Install_ReportsDownloadMilestones(t *testing.T) {
	settings := testSettings(t)
	dl := &stubDownloader{body: []byte("mp3bytes")}

	var events []ProgressEvent
	installer := NewInstaller(settings, dl, func(e ProgressEvent) {
		events = append(events, e)
	})

	if _, err := installer.Install(context.Background(), validDescriptor()); err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}

	var milestones []string
	for _, e := range events {
		if strings.HasPrefix(e.Message, "Downloading Quork.mp3:") {
			milestones = append(milestones, e.Message)
		}
	}
	want := []string{"Downloading Quork.mp3: 50%", "Downloading Quork.mp3: 100%"}
	if len(milestones) != len(want) {
		t.Fatalf("milestones = %v, want %v", milestones, want)
	}
	for i := range want {
		if milestones[i] != want[i] {
			t.Errorf("milestones[%d] = %q, want %q", i, milestones[i], want[i])
		}
	}
}

func TestInstaller_Install_RetriesTransientFailures(t *testing.T) {
	settings := testSettings(t)
	dl := &stubDownloader{body: []byte("mp3bytes"), failures: 2}

	installer := NewInstaller(settings, dl, nil)

	if _, err := installer.Install(context.Background(), validDescriptor()); err != nil {
		t.Fatalf("Install() should succeed after retries, got: %v", err)
	}
	if dl.calls != 3 {
		t.Errorf("DownloadFile called %d times, want 3", dl.calls)
	}
}

func TestInstaller_Install_GivesUpAfterMaxRetries(t *testing.T) {
	settings := testSettings(t)
	dl := &stubDownloader{body: []byte("x"), failures: 99}

	installer := NewInstaller(settings, dl, nil)

	_, err := installer.Install(context.Background(), validDescriptor())
	if err == nil {
		t.Fatal("Install() should fail when every attempt fails")
	}
	var verr *descriptor.ValidationError
	if errors.As(err, &verr) {
		t.Error("download failure must not surface as a ValidationError")
	}
	if dl.calls != settings.DownloadMaxRetries {
		t.Errorf("DownloadFile called %d times, want %d", dl.calls, settings.DownloadMaxRetries)
	}
}

func TestInstaller_Install_RejectsInvalidDescriptor(t *testing.T) {
	settings := testSettings(t)
	installer := NewInstaller(settings, &stubDownloader{}, nil)

	_, err := installer.Install(context.Background(), descriptor.Descriptor{
		Title: "No URL",
		Tags:  "t",
	})

	var verr *descriptor.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Install() error = %v, want *descriptor.ValidationError", err)
	}
}

func TestInstaller_Install_SkipsMatchingExistingAudio(t *testing.T) {
	settings := testSettings(t)
	body := []byte("mp3bytes")

	// Pre-install the audio with the exact remote size.
	if err := os.WriteFile(filepath.Join(settings.SoundsPath, "Quork.mp3"), body, 0644); err != nil {
		t.Fatal(err)
	}

	dl := &stubDownloader{body: body}
	installer := NewInstaller(settings, dl, nil)

	if _, err := installer.Install(context.Background(), validDescriptor()); err != nil {
		t.Fatalf("Install() unexpected error: %v", err)
	}
	if dl.calls != 0 {
		t.Errorf("DownloadFile called %d times, want 0 (existing audio matches)", dl.calls)
	}
}

func TestInstaller_SaveDescriptor_UUIDNames(t *testing.T) {
	settings := testSettings(t)
	settings.UseUUIDFileNames = true

	installer := NewInstaller(settings, &stubDownloader{}, nil)

	path, err := installer.SaveDescriptor(validDescriptor())
	if err != nil {
		t.Fatalf("SaveDescriptor() unexpected error: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasSuffix(base, descriptor.Extension) {
		t.Errorf("descriptor name = %q, want %s suffix", base, descriptor.Extension)
	}
	if regexp.MustCompile(`^\d{8}\.keyclsound$`).MatchString(base) {
		t.Errorf("descriptor name = %q, want uuid form, not 8-digit form", base)
	}
}
