package sensei

import "context"

// Opener opens a URL or a file path in a browser.
type Opener interface {
	// Open displays target and reports whether the launch failed.
	Open(ctx context.Context, target string) error
}

// URLChecker verifies that a remote documentation URL exists.
type URLChecker interface {
	// Check returns ENOTFOUND if the page does not exist.
	Check(ctx context.Context, url string) error
}
