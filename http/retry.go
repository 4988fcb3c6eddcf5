package http

import (
	"context"
	"time"

	"github.com/fwojciec/ampconv"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RetryFetcher implements ampconv.Fetcher at compile time.
var _ ampconv.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with backoff. Invalid and missing
// pages are not retried.
type RetryFetcher struct {
	next   ampconv.Fetcher
	delays []time.Duration
	logf   LogFunc
}

// NewRetryFetcher wraps next so each fetch is attempted once plus once per
// delay. logf, if not nil, is called before every retry.
func NewRetryFetcher(next ampconv.Fetcher, delays []time.Duration, logf LogFunc) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logf: logf}
}

// Fetch implements ampconv.Fetcher.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		switch ampconv.ErrorCode(err) {
		case ampconv.EINVALID, ampconv.ENOTFOUND:
			return "", err
		}

		if attempt == len(f.delays) {
			break
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if f.logf != nil {
			f.logf("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
