// Package install turns a sound descriptor into installed files in the
// local sound folder.
//
// # Installer
//
// The Installer coordinates the whole flow:
//
//  1. Validate the descriptor
//  2. Download the audio from the descriptor URL (with retries and
//     exponential backoff)
//  3. Tag MP3 audio with the descriptor metadata
//  4. Save the canonical .keyclsound file next to the audio
//
// # Basic Usage
//
//	installer := install.NewInstaller(settings, httpClient, func(event install.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := installer.Install(ctx, pkg.Descriptor)
//	if err != nil {
//	    var verr *descriptor.ValidationError
//	    if errors.As(err, &verr) {
//	        // the package itself is bad; prompt, don't retry
//	    }
//	    // otherwise an I/O failure; abort the operation
//	}
//
// # Error Kinds
//
// A *descriptor.ValidationError means the package content violates the
// format; everything else is an I/O failure wrapped with context. The two
// are distinguishable with errors.As, so callers can prompt the user again
// for the former and abort for the latter.
package install
