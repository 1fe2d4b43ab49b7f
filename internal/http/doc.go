// Package http provides an HTTP client configured for the KeyCL sound
// library.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Directory listing retrieval as JSON
//   - Audio file downloads with progress tracking
//   - File size retrieval via HEAD requests
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch a package body
//	text, err := client.GetString(ctx, downloadURL)
//
//	// Download audio with progress callback
//	client.DownloadFile(ctx, audioURL, "/path/to/sound.mp3", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress
// tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
