// Package fs provides file-based input and output for conversions.
package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/ampconv"
)

// Stdin is the location that reads from standard input.
const Stdin = "-"

// Ensure Loader implements ampconv.Loader at compile time.
var _ ampconv.Loader = (*Loader)(nil)

// Loader reads input HTML from files, standard input or, when a Fetcher is
// configured, from http(s) URLs.
type Loader struct {
	// Fetcher downloads URL locations. URLs are rejected when nil.
	Fetcher ampconv.Fetcher

	// Stdin is read for the "-" location.
	Stdin io.Reader
}

// NewLoader creates a Loader reading standard input from stdin.
func NewLoader(fetcher ampconv.Fetcher, stdin io.Reader) *Loader {
	return &Loader{Fetcher: fetcher, Stdin: stdin}
}

// Load returns the HTML at location.
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	switch {
	case location == "":
		return "", ampconv.Errorf(ampconv.EINVALID, "input location required")
	case location == Stdin:
		if l.Stdin == nil {
			return "", ampconv.Errorf(ampconv.EINVALID, "standard input not available")
		}
		b, err := io.ReadAll(l.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case IsURL(location):
		if l.Fetcher == nil {
			return "", ampconv.Errorf(ampconv.EINVALID, "cannot load URL %q: no fetcher configured", location)
		}
		return l.Fetcher.Fetch(ctx, location)
	}

	b, err := os.ReadFile(location)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ampconv.Errorf(ampconv.ENOTFOUND, "file %q not found", location)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsURL reports whether location is an http or https URL.
func IsURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
