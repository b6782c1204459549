package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenChangeFunc is invoked synchronously on every SetToken call, including
// assignments of the value already held and assignments of the empty string.
// It is the single propagation point for token persistence in the embedding
// application.
type TokenChangeFunc func(token string)

// Client is the single point that knows how to reach the API, attach
// identity, serialize/deserialize and normalize failures. All domain API
// modules delegate to it.
type Client struct {
	httpClient *http.Client

	baseURL        string
	defaultHeaders http.Header
	userAgent      string

	requestIDHeader string
	newRequestID    RequestIDFunc

	maxErrBody int64

	rateLimiter RateLimiter
	before      []BeforeHook
	after       []AfterHook

	mu            sync.RWMutex
	token         string
	onTokenChange TokenChangeFunc
}

// New constructs a Client from DefaultConfig() plus the provided options.
func New(opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		if o != nil {
			o.apply(&cfg)
		}
	}
	return NewWithConfig(cfg)
}

func NewWithConfig(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: base, Err: errors.New("base url must be absolute")}
	}

	rt := cfg.Transport
	if rt == nil {
		rt = DefaultTransport()
	}

	maxErrBody := cfg.MaxErrorBodyBytes
	if maxErrBody == 0 {
		maxErrBody = DefaultMaxErrorBodyBytes
	}

	// Clone headers to avoid caller mutation.
	hdr := make(http.Header)
	for k, vv := range cfg.DefaultHeaders {
		for _, v := range vv {
			hdr.Add(k, v)
		}
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: rt,
			Timeout:   cfg.Timeout,
		},
		baseURL:         base,
		defaultHeaders:  hdr,
		userAgent:       cfg.UserAgent,
		requestIDHeader: cfg.RequestIDHeader,
		newRequestID:    cfg.NewRequestID,
		maxErrBody:      maxErrBody,
		token:           cfg.Token,
		onTokenChange:   cfg.OnTokenChange,
	}
	if c.newRequestID == nil && c.requestIDHeader != "" {
		c.newRequestID = DefaultRequestID
	}
	return c, nil
}

// WithMiddleware wraps the underlying RoundTripper with middleware.
// Call this during initialization (before the client is used concurrently).
func (c *Client) WithMiddleware(mws ...Middleware) *Client {
	if len(mws) == 0 {
		return c
	}
	rt := c.httpClient.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	c.httpClient.Transport = chain(rt, mws)
	return c
}

// WithRateLimiter installs a client-wide rate limiter.
func (c *Client) WithRateLimiter(rl RateLimiter) *Client {
	c.rateLimiter = rl
	return c
}

// WithHooks adds hooks (executed for every request).
func (c *Client) WithHooks(before []BeforeHook, after []AfterHook) *Client {
	c.before = append(c.before, before...)
	c.after = append(c.after, after...)
	return c
}

// SetToken replaces the held token and unconditionally invokes the token
// change callback when one is registered, even if the new value equals the
// old. An empty string clears the token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	cb := c.onTokenChange
	c.mu.Unlock()
	if cb != nil {
		cb(token)
	}
}

// Token returns the currently held bearer token ("" when none is held).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// HasToken reports whether a bearer token is currently held.
func (c *Client) HasToken() bool { return c.Token() != "" }

// BaseURL returns the base URL requests are issued against.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET request to baseURL+path. When dst is non-nil the JSON
// response body is decoded into it. Query keys are serialized as-is; use
// Query to build values from a map while omitting nils.
func (c *Client) Get(ctx context.Context, path string, query url.Values, dst any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", dst)
}

// Post issues a POST request with a JSON-encoded body (nil means no body).
func (c *Client) Post(ctx context.Context, path string, body, dst any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, dst)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body, dst any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, dst)
}

// Patch issues a PATCH request with a JSON-encoded body.
func (c *Client) Patch(ctx context.Context, path string, body, dst any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, dst)
}

// Delete issues a DELETE request and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// PostForm issues a POST request with a form-encoded body. The login
// endpoint is the only route that requires this encoding.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, dst any) error {
	body := []byte(form.Encode())
	return c.do(ctx, http.MethodPost, path, nil, body, "application/x-www-form-urlencoded", dst)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, dst any) error {
	var raw []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		raw = b
	}
	return c.do(ctx, method, path, nil, raw, "", dst)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, dst any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return err
	}

	for k, vv := range c.defaultHeaders {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	// The token is captured at send time; a request already in flight keeps
	// whatever token it was built with.
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if c.requestIDHeader != "" && c.newRequestID != nil {
		if id := strings.TrimSpace(c.newRequestID()); id != "" {
			req.Header.Set(c.requestIDHeader, id)
		}
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return err
		}
	}
	for _, h := range c.before {
		if h == nil {
			continue
		}
		if err := h(req); err != nil {
			return err
		}
	}

	t0 := time.Now()
	resp, err := c.httpClient.Do(req)
	dur := time.Since(t0)

	for _, h := range c.after {
		if h != nil {
			h(req, resp, err, dur)
		}
	}

	if err != nil {
		// No HTTP response at all: the status code 0 sentinel is the sole
		// way callers distinguish "never reached the server" from a server
		// error.
		return &Error{
			Method:     method,
			URL:        target,
			StatusCode: 0,
			Detail:     NetworkErrorDetail,
			Cause:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxErrBody))
		return errorFromResponse(method, target, resp.StatusCode, raw)
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxErrBody))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, target, err)
	}
	return nil
}
