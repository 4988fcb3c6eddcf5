package ampconv

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	Wait(ctx context.Context, domain string) error
}

// Loader reads the HTML of an input location.
type Loader interface {
	// Load returns the HTML found at location. A location is a file path,
	// an http(s) URL, or "-" for standard input.
	Load(ctx context.Context, location string) (string, error)
}

// OutputWriter stores converted HTML.
type OutputWriter interface {
	// Write stores html converted from source and returns where it was written.
	Write(ctx context.Context, source, html string) (path string, err error)
}
