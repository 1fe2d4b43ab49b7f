package library

import (
	"context"
	"path"
	"strings"

	"github.com/optionallybluestudios/keycl/internal/descriptor"
	"golang.org/x/sync/errgroup"
)

// Package is a .keyclsound file found in the remote library together with
// its decoded metadata.
type Package struct {
	// Entry is the listing entry the package was discovered as.
	Entry Entry

	// Descriptor holds the package metadata. When the body could not be
	// fetched or decoded, it is a filename-derived placeholder and Err is
	// set.
	Descriptor descriptor.Descriptor

	// Err records why the package body could not be used, if it couldn't.
	// Packages with a non-nil Err can still be displayed but not installed.
	Err error
}

// Browser discovers packages in the remote library.
//
// Browser walks directory entries recursively via their Path, collects
// .keyclsound files and prefetches their metadata concurrently. It keeps no
// state between calls: the path to browse is a parameter and the result is
// returned, so there is no shared mutable navigation state.
type Browser struct {
	lister        Lister
	fetcher       Fetcher
	maxConcurrent int
}

// NewBrowser creates a Browser. maxConcurrent bounds the number of package
// bodies fetched in parallel; values below 1 mean no limit.
func NewBrowser(lister Lister, fetcher Fetcher, maxConcurrent int) *Browser {
	return &Browser{
		lister:        lister,
		fetcher:       fetcher,
		maxConcurrent: maxConcurrent,
	}
}

// Packages lists every .keyclsound package under root, recursing into
// subdirectories. An empty root means the library root.
//
// Listing failures abort the walk; per-package fetch or decode failures do
// not. A package whose body cannot be fetched or decoded is returned with
// filename-derived metadata and its Err set, so a browser UI can still show
// it (this mirrors the historical best-effort behavior of the library
// window).
func (b *Browser) Packages(ctx context.Context, root string) ([]Package, error) {
	entries, err := b.collect(ctx, root)
	if err != nil {
		return nil, err
	}

	pkgs := make([]Package, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	if b.maxConcurrent > 0 {
		g.SetLimit(b.maxConcurrent)
	}

	for i, entry := range entries {
		g.Go(func() error {
			pkgs[i] = b.load(ctx, entry)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pkgs, nil
}

// collect walks the listing tree and returns the package entries in
// listing order.
func (b *Browser) collect(ctx context.Context, root string) ([]Entry, error) {
	entries, err := b.lister.List(ctx, root)
	if err != nil {
		return nil, err
	}

	var found []Entry
	for _, entry := range entries {
		switch {
		case entry.IsPackage():
			found = append(found, entry)
		case entry.Type == EntryTypeDir:
			sub, err := b.collect(ctx, entry.Path)
			if err != nil {
				return nil, err
			}
			found = append(found, sub...)
		}
	}
	return found, nil
}

// load fetches and decodes one package, falling back to filename-derived
// metadata on failure.
func (b *Browser) load(ctx context.Context, entry Entry) Package {
	text, err := b.fetcher.GetString(ctx, entry.DownloadURL)
	if err != nil {
		return Package{Entry: entry, Descriptor: fallbackDescriptor(entry), Err: err}
	}

	d, err := descriptor.Decode(text)
	if err != nil {
		return Package{Entry: entry, Descriptor: fallbackDescriptor(entry), Err: err}
	}

	return Package{Entry: entry, Descriptor: d}
}

// fallbackDescriptor derives display-only metadata from the entry name.
func fallbackDescriptor(entry Entry) descriptor.Descriptor {
	title := strings.TrimSuffix(entry.Name, path.Ext(entry.Name))
	if title == "" {
		title = descriptor.DefaultTitle
	}
	return descriptor.Descriptor{Title: title}
}

// Search filters packages by a case-insensitive substring match against
// title, author and tags. A blank query returns the input unchanged.
func Search(pkgs []Package, query string) []Package {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return pkgs
	}

	var hits []Package
	for _, pkg := range pkgs {
		hay := strings.ToLower(strings.Join([]string{
			pkg.Descriptor.Title,
			pkg.Descriptor.Author,
			pkg.Descriptor.Tags,
		}, " "))
		if strings.Contains(hay, query) {
			hits = append(hits, pkg)
		}
	}
	return hits
}

// Find returns the first package whose entry name or title matches name
// (case-insensitive). The boolean reports whether a match was found.
func Find(pkgs []Package, name string) (Package, bool) {
	name = strings.ToLower(name)
	for _, pkg := range pkgs {
		if strings.ToLower(pkg.Entry.Name) == name ||
			strings.ToLower(pkg.Descriptor.Title) == name {
			return pkg, true
		}
	}
	return Package{}, false
}
