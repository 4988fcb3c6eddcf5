package mock

import (
	"context"

	"github.com/fwojciec/ampconv"
)

var _ ampconv.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ampconv.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ ampconv.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of ampconv.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ ampconv.Loader = (*Loader)(nil)

// Loader is a mock implementation of ampconv.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, location string) (string, error)
}

func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	return l.LoadFn(ctx, location)
}

var _ ampconv.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of ampconv.OutputWriter.
type OutputWriter struct {
	WriteFn func(ctx context.Context, source, html string) (string, error)
}

func (w *OutputWriter) Write(ctx context.Context, source, html string) (string, error) {
	return w.WriteFn(ctx, source, html)
}
