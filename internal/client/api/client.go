package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dkrastins/needmarket/internal/client/storage"
	"github.com/dkrastins/needmarket/internal/common"
	"github.com/dkrastins/needmarket/internal/logging"
)

// Client talks to the marketplace REST API. All requests flow through the
// middleware chain assembled in NewClient; see the package doc for stage
// ordering.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger

	mu     sync.RWMutex
	tokens TokenSource
	nav    Navigator
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// WithTransport replaces the innermost dispatch transport. The middleware
// stages still wrap it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpc.Transport = rt }
}

// NewClient builds a Client for the API rooted at baseURL. repo, when
// non-nil, is the persisted session mirror the 401 stage clears. The token
// source and navigator are bound later via SetTokenSource/SetNavigator, once
// the session store and UI exist; until then requests simply go out
// unauthenticated and a 401 performs no navigation.
func NewClient(baseURL string, repo storage.Repository, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Transport: http.DefaultTransport},
		log:     logging.Nop{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Assemble the pipeline inside-out: dispatch, then response inspection,
	// then credential attachment, then request-id stamping.
	var rt http.RoundTripper = c.httpc.Transport
	rt = &unauthorizedTransport{next: rt, storage: repo, navigate: c.navigator, log: c.log}
	rt = &bearerTransport{next: rt, tokens: c.currentToken}
	rt = &requestIDTransport{next: rt}
	c.httpc.Transport = rt

	return c
}

// SetTokenSource binds the source of the bearer credential.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

// SetNavigator binds the login-surface redirect target invoked on a 401.
func (c *Client) SetNavigator(n Navigator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nav = n
}

func (c *Client) currentToken() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return "", false
	}
	return c.tokens.Token()
}

func (c *Client) navigator() Navigator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nav
}

// do performs one API call. in, when non-nil, is marshalled as the JSON
// request body; out, when non-nil, receives the decoded JSON response body.
// A non-2xx status is returned as *Error carrying the server's detail
// message; transport-level failures wrap common.ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{Status: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Detail = payload.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
