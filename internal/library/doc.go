// Package library browses the remote repository of .keyclsound packages.
//
// The remote side is a plain listing service: given a repository path it
// returns entries with a name, a type ("dir" or "file"), a path for
// recursive browsing, and a download URL for files. The production Client
// speaks to the GitHub contents API, but nothing in this package depends on
// that: the Lister and Fetcher interfaces are satisfied by in-memory fakes
// in tests.
//
// # Browsing
//
//	client := library.NewClient(settings.LibraryAPI, httpClient)
//	browser := library.NewBrowser(client, httpClient, settings.MaxConcurrentFetches)
//
//	pkgs, err := browser.Packages(ctx, "")
//	for _, pkg := range pkgs {
//	    fmt.Println(pkg.Descriptor.Title, pkg.Descriptor.Author)
//	}
//
// # Searching
//
//	hits := library.Search(pkgs, "typewriter")
//
// Browse state (the path being listed, the packages found) is always passed
// in and returned explicitly; the package holds no global navigation state.
package library
