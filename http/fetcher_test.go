package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/ampconv"
	amphttp "github.com/fwojciec/ampconv/http"
	"github.com/fwojciec/ampconv/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("User-Agent") != amphttp.UserAgent {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<blockquote class="twitter-tweet"></blockquote>`))
		}))
		defer server.Close()

		fetcher := amphttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, `<blockquote class="twitter-tweet"></blockquote>`, html)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := amphttp.NewFetcher(amphttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := amphttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns ENOTFOUND for 404", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		_, err := amphttp.NewFetcher().Fetch(context.Background(), server.URL+"/missing")

		require.Error(t, err)
		assert.Equal(t, ampconv.ENOTFOUND, ampconv.ErrorCode(err))
	})

	t.Run("returns error for other non-200 status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := amphttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		}))
		defer server.Close()

		_, err := amphttp.NewFetcher(amphttp.WithMaxBodySize(32)).Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, ampconv.EINVALID, ampconv.ErrorCode(err))
	})

	t.Run("returns EINVALID for URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := amphttp.NewFetcher().Fetch(context.Background(), "not a url")

		require.Error(t, err)
		assert.Equal(t, ampconv.EINVALID, ampconv.ErrorCode(err))
	})

	t.Run("waits on domain limiter with request host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		var domains []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			},
		}

		_, err := amphttp.NewFetcher(amphttp.WithDomainLimiter(limiter)).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{"127.0.0.1"}, domains)
	})

	t.Run("returns limiter error without requesting", func(t *testing.T) {
		t.Parallel()

		var requested atomic.Bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested.Store(true)
		}))
		defer server.Close()

		limitErr := errors.New("context canceled")
		limiter := &mock.DomainLimiter{
			WaitFn: func(context.Context, string) error { return limitErr },
		}

		_, err := amphttp.NewFetcher(amphttp.WithDomainLimiter(limiter)).Fetch(context.Background(), server.URL)

		require.ErrorIs(t, err, limitErr)
		assert.False(t, requested.Load())
	})
}
