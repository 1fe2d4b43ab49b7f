package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/optionallybluestudios/keycl/internal/http"
)

// Entry is one item in a remote directory listing.
type Entry struct {
	// Name is the bare file or directory name, e.g. "typewriter.keyclsound".
	Name string `json:"name"`

	// Type is EntryTypeDir or EntryTypeFile.
	Type string `json:"type"`

	// Path is the repository path of the entry, used for recursive browsing.
	Path string `json:"path"`

	// DownloadURL is where the raw content can be fetched. Present for
	// files, empty for directories.
	DownloadURL string `json:"download_url"`
}

// Entry types returned by the listing service.
const (
	EntryTypeDir  = "dir"
	EntryTypeFile = "file"
)

// IsPackage reports whether the entry is a .keyclsound file. The suffix
// match is case-insensitive, matching how packages were picked out of the
// library historically.
func (e Entry) IsPackage() bool {
	return e.Type == EntryTypeFile &&
		strings.HasSuffix(strings.ToLower(e.Name), ".keyclsound")
}

// Lister returns the entries under a repository path. An empty path means
// the configured library root.
type Lister interface {
	List(ctx context.Context, path string) ([]Entry, error)
}

// Fetcher retrieves the text body of a package by its download URL.
type Fetcher interface {
	GetString(ctx context.Context, url string) (string, error)
}

// Client is the production Lister backed by the GitHub contents API.
//
// The API is treated as an opaque listing service: one GET per directory,
// returning a JSON array of entries. No other GitHub features are used.
type Client struct {
	api          string
	contentsRoot string
	http         *http.Client
}

// NewClient creates a listing client for the given API endpoint, e.g.
// config.DefaultLibraryAPI.
func NewClient(api string, httpClient *http.Client) *Client {
	contentsRoot := api
	if idx := strings.Index(api, "/contents/"); idx != -1 {
		contentsRoot = api[:idx+len("/contents")]
	}
	return &Client{
		api:          api,
		contentsRoot: contentsRoot,
		http:         httpClient,
	}
}

// List implements Lister. An empty path lists the configured root; a
// non-empty path (as found in Entry.Path) lists that directory.
func (c *Client) List(ctx context.Context, path string) ([]Entry, error) {
	url := c.api
	if path != "" {
		url = c.contentsRoot + "/" + path
	}

	var entries []Entry
	if err := c.http.GetJSON(ctx, url, &entries); err != nil {
		return nil, fmt.Errorf("list %s: %w", url, err)
	}
	return entries, nil
}
