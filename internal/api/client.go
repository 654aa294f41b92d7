// Package api is the typed gateway to the QuickBird backend: the only
// component in the module that performs network I/O. Every operation maps
// 1:1 to a backend resource action, attaches the current credential read
// fresh from storage, and normalizes responses into typed domain records.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/quickbird-app/quickbird-go/internal/storage"
)

// Client provides typed access to the QuickBird API.
type Client struct {
	baseURL string
	store   storage.Storage

	defaultClient  *http.Client
	uploadClient   *http.Client // multipart uploads (90s)
	generateClient *http.Client // AI generation (3min)

	limiter *rate.Limiter

	// onUnauthorized fires at most once per credential lifetime when any
	// call observes a 401. A successful login/register/refresh re-arms it.
	onUnauthorized    func()
	unauthorizedFired atomic.Bool
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.defaultClient = h
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero leaves the client
// unlimited.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithUnauthorizedHook installs the cross-cutting 401 handler, the headless
// equivalent of forcing navigation to the login page.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New constructs a Client pointing at the given API base URL, persisting
// credentials through store.
func New(base string, store storage.Storage, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:8000"
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	c := &Client{
		baseURL:        strings.TrimRight(trimmed, "/"),
		store:          store,
		defaultClient:  &http.Client{Timeout: DefaultTimeout},
		uploadClient:   &http.Client{Timeout: UploadTimeout},
		generateClient: &http.Client{Timeout: GenerateTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetUnauthorizedHook replaces the 401 handler after construction.
func (c *Client) SetUnauthorizedHook(fn func()) { c.onUnauthorized = fn }

// do issues one request against the backend. body is JSON-encoded when
// non-nil; the response is decoded into out when non-nil. The bearer token is
// read from storage at call time, never cached on the client, so a rotated
// credential is picked up on the very next call.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, query url.Values, body, out any) error {
	logger := NewLogger(method + " " + path)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		logger.LogError(err)
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	start := time.Now()
	resp, err := hc.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.LogError(err)
		recordCall(duration, err)
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		recordCall(duration, fmt.Errorf("status %d", resp.StatusCode))
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized()
		}
		data, _ := io.ReadAll(resp.Body)
		apiErr := newAPIError(resp.StatusCode, data)
		logger.LogWarnf("backend returned status %d: %s", resp.StatusCode, apiErr.Message)
		return apiErr
	}
	recordCall(duration, nil)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// authorize attaches the persisted bearer credential, if any.
func (c *Client) authorize(req *http.Request) {
	tok, err := storage.LoadToken(c.store)
	if err != nil || tok.AccessToken == "" {
		return
	}
	tok.SetAuthHeader(req)
}

// handleUnauthorized applies the global 401 policy: clear the persisted
// credential and cached profile, then fire the hook exactly once even when
// several in-flight calls observe the 401 concurrently.
func (c *Client) handleUnauthorized() {
	_ = storage.ClearSession(c.store)
	if c.unauthorizedFired.CompareAndSwap(false, true) {
		recordUnauthorized()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
}
