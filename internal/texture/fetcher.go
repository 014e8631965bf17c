// Package texture downloads skin and cape textures from the remote texture
// host.
package texture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public texture host.
const DefaultBaseURL = "http://textures.minecraft.net/texture/"

var (
	// ErrStatus is returned when the texture host answers with a non-2xx
	// status code.
	ErrStatus = errors.New("unexpected status code")

	// ErrTooLarge is returned when a texture exceeds the configured limit.
	ErrTooLarge = errors.New("texture too large")
)

// Observer is notified about every fetch. It lets callers record metrics
// without the fetcher depending on a metrics library.
type Observer func(d time.Duration, err error)

// Fetcher retrieves raw texture bytes over HTTP.
type Fetcher struct {
	baseURL    string
	maxBytes   int64
	httpClient *http.Client
	observe    Observer
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = c }
}

// WithTimeout sets the overall timeout of a single fetch.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.httpClient.Timeout = d }
}

// WithMaxBytes limits the accepted texture size. Zero disables the limit.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBytes = n }
}

// WithObserver registers a callback invoked after every fetch.
func WithObserver(o Observer) Option {
	return func(f *Fetcher) { f.observe = o }
}

// NewFetcher creates a fetcher for textures below baseURL. A missing trailing
// slash is added.
func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	f := &Fetcher{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the address a texture id is fetched from. The id is escaped as
// a single path segment.
func (f *Fetcher) URL(id string) string {
	return f.baseURL + url.PathEscape(id)
}

// Fetch downloads the texture identified by id.
//
// Network failures, non-2xx responses, body read failures and bodies above
// the size limit are all reported as errors. No retries are attempted.
func (f *Fetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	start := time.Now()
	data, err := f.fetch(ctx, id)
	if f.observe != nil {
		f.observe(time.Since(start), err)
	}
	return data, err
}

func (f *Fetcher) fetch(ctx context.Context, id string) ([]byte, error) {
	u := f.URL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download texture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d from %s", ErrStatus, resp.StatusCode, u)
	}

	var body io.Reader = resp.Body
	if f.maxBytes > 0 {
		if resp.ContentLength > f.maxBytes {
			return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, resp.ContentLength)
		}
		// One extra byte tells an exact fit apart from an oversized body.
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	}
	if _, err := buf.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("failed to read texture: %w", err)
	}

	if f.maxBytes > 0 && int64(buf.Len()) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, f.maxBytes)
	}

	return buf.Bytes(), nil
}
