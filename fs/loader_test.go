package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/ampconv"
	"github.com/fwojciec/ampconv/fs"
	"github.com/fwojciec/ampconv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "post.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>file</p>"), 0644))

		html, err := fs.NewLoader(nil, nil).Load(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<p>file</p>", html)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader(nil, nil).Load(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

		require.Error(t, err)
		assert.Equal(t, ampconv.ENOTFOUND, ampconv.ErrorCode(err))
	})

	t.Run("reads stdin", func(t *testing.T) {
		t.Parallel()

		html, err := fs.NewLoader(nil, strings.NewReader("<p>stdin</p>")).Load(context.Background(), "-")

		require.NoError(t, err)
		assert.Equal(t, "<p>stdin</p>", html)
	})

	t.Run("fetches URLs", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "HTTPS://example.com/post", url)
				return "<p>remote</p>", nil
			},
		}

		html, err := fs.NewLoader(fetcher, nil).Load(context.Background(), "HTTPS://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "<p>remote</p>", html)
	})

	t.Run("rejects URLs without fetcher", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader(nil, nil).Load(context.Background(), "https://example.com/post")

		require.Error(t, err)
		assert.Equal(t, ampconv.EINVALID, ampconv.ErrorCode(err))
	})

	t.Run("rejects empty location", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader(nil, nil).Load(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, ampconv.EINVALID, ampconv.ErrorCode(err))
	})
}
