package library

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	keyclhttp "github.com/optionallybluestudios/keycl/internal/http"
)

func TestClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/o/r/contents/sounds":
			w.Write([]byte(`[
				{"name":"click.keyclsound","type":"file","path":"sounds/click.keyclsound","download_url":"https://raw.example.com/click"},
				{"name":"retro","type":"dir","path":"sounds/retro","download_url":null}
			]`))
		case "/repos/o/r/contents/sounds/retro":
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL+"/repos/o/r/contents/sounds", keyclhttp.NewClient())

	entries, err := client.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if !entries[0].IsPackage() {
		t.Errorf("%q should be recognized as a package", entries[0].Name)
	}
	if entries[1].IsPackage() {
		t.Errorf("directory %q should not be a package", entries[1].Name)
	}

	// Subdirectory listing goes through the contents root with Entry.Path.
	sub, err := client.List(context.Background(), entries[1].Path)
	if err != nil {
		t.Fatalf("List(subdir) unexpected error: %v", err)
	}
	if len(sub) != 0 {
		t.Errorf("got %d entries in empty dir, want 0", len(sub))
	}
}

func TestClient_List_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/repos/o/r/contents/sounds", keyclhttp.NewClient())

	if _, err := client.List(context.Background(), ""); err == nil {
		t.Error("List() should surface HTTP errors")
	}
}
