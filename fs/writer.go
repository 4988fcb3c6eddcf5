package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/ampconv"
)

// outputSuffix replaces the extension of converted files.
const outputSuffix = ".amp.html"

// OutputPath maps an input location to a relative output file path.
//
// Files keep their directory so inputs sharing a base name stay apart.
//
//	post.html                           → post.amp.html
//	site/blog/post.html                 → site/blog/post.amp.html
//	/srv/www/post.html                  → srv/www/post.amp.html
//	https://example.com/blog/post.html  → example.com/blog/post.amp.html
//	https://example.com/blog/           → example.com/blog/index.amp.html
//	-                                   → stdin.amp.html
func OutputPath(location string) (string, error) {
	if location == Stdin {
		return "stdin" + outputSuffix, nil
	}

	if !IsURL(location) {
		p := filepath.ToSlash(strings.TrimPrefix(location, filepath.VolumeName(location)))
		return filepath.FromSlash(trimExt(confine(p)) + outputSuffix), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", ampconv.Errorf(ampconv.EINVALID, "invalid URL %q: %v", location, err)
	}

	p := u.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}

	return filepath.Join(u.Hostname(), filepath.FromSlash(trimExt(confine(p))+outputSuffix)), nil
}

// confine cleans a slash-separated path against a root, so ".." and
// leading slashes cannot climb out of the output directory.
func confine(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

func trimExt(name string) string {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".html", ".htm", ".xhtml":
		return name[:len(name)-len(ext)]
	}
	return name
}

// Ensure Writer implements ampconv.OutputWriter at compile time.
var _ ampconv.OutputWriter = (*Writer)(nil)

// Writer writes converted HTML into a directory. It is safe for concurrent
// use. Two different sources never share an output file: the second one
// to claim a path gets ECONFLICT.
type Writer struct {
	baseDir string

	mu      sync.Mutex
	claimed map[string]string // full path -> source
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{
		baseDir: baseDir,
		claimed: make(map[string]string),
	}
}

// Write stores html under the output path of source and returns the full path.
func (w *Writer) Write(ctx context.Context, source, html string) (string, error) {
	relPath, err := OutputPath(source)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := w.claim(fullPath, source); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(html), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

func (w *Writer) claim(fullPath, source string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if other, ok := w.claimed[fullPath]; ok && other != source {
		return ampconv.Errorf(ampconv.ECONFLICT, "%s and %s both map to %s", other, source, fullPath)
	}
	w.claimed[fullPath] = source
	return nil
}
