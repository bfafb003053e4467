// Package api is a typed client for the todo collaboration REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/thenoetrevino/todolink/internal/models"
)

const (
	// HeaderUserID carries the session's user ID on every identity-scoped request
	HeaderUserID = "X-User-ID"
	// HeaderRequestID correlates a request with its log lines
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody caps how much of an error response is kept on HTTPStatusError
	maxErrorBody = 512
)

// IdentitySource provides the user ID attached to requests.
// The session manager implements it; ok is false when nobody is logged in.
type IdentitySource interface {
	UserID() (id int, ok bool)
}

// Client issues requests against the REST endpoints.
// It keeps no local state besides request counters.
type Client struct {
	baseURL  *url.URL
	identity IdentitySource
	http     *http.Client
	logger   *slog.Logger
	metrics  *Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger sets the logger used for request logs
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
// identity may be nil, in which case only Login and Signup can succeed.
func NewClient(baseURL string, identity IdentitySource, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:  u,
		identity: identity,
		http:     &http.Client{},
		logger:   slog.Default(),
		metrics:  NewMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Scoped returns a copy of the client that attaches identity's user ID.
// The copy shares the transport and metrics with c.
func (c *Client) Scoped(identity IdentitySource) *Client {
	scoped := *c
	scoped.identity = identity
	return &scoped
}

// BaseURL returns the API root this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Metrics returns the client's request counters
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// request describes one call against the API
type request struct {
	op       string
	method   string
	path     string
	body     any
	identity bool
}

// do sends req and decodes a 2xx JSON response into out (if out is non-nil).
// It returns empty=true when the body was null or blank, so list callers can
// normalize to an empty collection.
func (c *Client) do(ctx context.Context, req request, out any) (empty bool, err error) {
	var userID int
	if req.identity {
		id, ok := c.currentUser()
		if !ok {
			return false, fmt.Errorf("%s: %w", req.op, models.ErrNoSession)
		}
		userID = id
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return false, fmt.Errorf("%s: failed to marshal request: %w", req.op, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL.JoinPath(req.path).String(), body)
	if err != nil {
		return false, fmt.Errorf("%s: failed to create request: %w", req.op, err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set(HeaderRequestID, requestID)
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.identity {
		httpReq.Header.Set(HeaderUserID, strconv.Itoa(userID))
	}

	start := time.Now()
	c.metrics.IncRequests()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.IncFailures()
		c.logger.Debug("api request failed",
			"op", req.op, "method", req.method, "path", req.path,
			"request_id", requestID, "error", err)
		return false, &models.NetworkError{Op: req.op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncFailures()
		return false, &models.NetworkError{Op: req.op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug("api request",
		"op", req.op, "method", req.method, "path", req.path,
		"status", resp.StatusCode, "duration", time.Since(start), "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncFailures()
		return false, &models.HTTPStatusError{
			Op:   req.op,
			Code: resp.StatusCode,
			Body: truncate(strings.TrimSpace(string(respBody)), maxErrorBody),
		}
	}

	trimmed := bytes.TrimSpace(respBody)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true, nil
	}
	if out == nil {
		return false, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		c.metrics.IncFailures()
		return false, &models.NetworkError{Op: req.op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return false, nil
}

func (c *Client) currentUser() (int, bool) {
	if c.identity == nil {
		return 0, false
	}
	return c.identity.UserID()
}

func todoPath(id int) string {
	return "todos/" + strconv.Itoa(id)
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
