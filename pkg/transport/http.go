// Package transport provides Transport implementations for the HubSpot SDK
// and decorators that add metrics and tracing around any Transport.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/logging"
)

// Default connection settings for the HTTP transport.
const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxIdleConns        = 100
	DefaultMaxIdleConnsPerHost = 10
	DefaultIdleConnTimeout     = 90 * time.Second

	// DefaultMaxResponseSize limits response bodies to prevent OOM.
	DefaultMaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// Content types set by the transports when the caller did not set one.
const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Ensure HTTP implements pkghttp.Transport at compile time.
var _ pkghttp.Transport = (*HTTP)(nil)

// HTTP is a Transport backed by net/http.
type HTTP struct {
	client          *http.Client
	timeout         time.Duration
	hooks           *hookChain
	logger          logging.Logger
	maxResponseSize int64
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*httpConfig)

type httpConfig struct {
	client          *http.Client
	timeout         time.Duration
	hooks           []ClassifiedHook
	logger          logging.Logger
	maxResponseSize int64
}

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(c *httpConfig) {
		c.client = client
	}
}

// WithTimeout sets the timeout for requests whose Options.Timeout is zero.
// A positive Options.Timeout always takes precedence.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *httpConfig) {
		c.timeout = d
	}
}

// WithHooks adds request hooks. Hooks run in the order given.
func WithHooks(hooks ...ClassifiedHook) HTTPOption {
	return func(c *httpConfig) {
		c.hooks = append(c.hooks, hooks...)
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger logging.Logger) HTTPOption {
	return func(c *httpConfig) {
		c.logger = logger
	}
}

// WithMaxResponseSize limits the size of response bodies read into memory.
func WithMaxResponseSize(n int64) HTTPOption {
	return func(c *httpConfig) {
		c.maxResponseSize = n
	}
}

// NewHTTP creates a net/http backed transport. Without WithHTTPClient it
// uses a client with pooled connections. Requests without Options.Timeout
// get DefaultTimeout unless WithTimeout says otherwise; a client passed to
// WithHTTPClient keeps its own Timeout, which caps every request.
func NewHTTP(opts ...HTTPOption) *HTTP {
	cfg := &httpConfig{maxResponseSize: DefaultMaxResponseSize, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.client == nil {
		cfg.client = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        DefaultMaxIdleConns,
				MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
				IdleConnTimeout:     DefaultIdleConnTimeout,
			},
		}
	}
	if cfg.maxResponseSize <= 0 {
		cfg.maxResponseSize = DefaultMaxResponseSize
	}

	logger := logging.OrNop(cfg.logger)
	return &HTTP{
		client:          cfg.client,
		timeout:         cfg.timeout,
		hooks:           newHookChain(cfg.hooks, logger),
		logger:          logger,
		maxResponseSize: cfg.maxResponseSize,
	}
}

// Close releases idle connections held by the underlying client.
func (h *HTTP) Close() error {
	h.client.CloseIdleConnections()
	return nil
}

// Get implements pkghttp.Transport.
func (h *HTTP) Get(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return h.do(ctx, pkghttp.MethodGet, url, opts)
}

// Post implements pkghttp.Transport.
func (h *HTTP) Post(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return h.do(ctx, pkghttp.MethodPost, url, opts)
}

// Put implements pkghttp.Transport.
func (h *HTTP) Put(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return h.do(ctx, pkghttp.MethodPut, url, opts)
}

// Patch implements pkghttp.Transport.
func (h *HTTP) Patch(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return h.do(ctx, pkghttp.MethodPatch, url, opts)
}

// Delete implements pkghttp.Transport.
func (h *HTTP) Delete(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return h.do(ctx, pkghttp.MethodDelete, url, opts)
}

func (h *HTTP) do(ctx context.Context, method pkghttp.Method, rawURL string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	if opts == nil {
		opts = &pkghttp.Options{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = h.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, contentType, err := encodeBody(opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, string(method), rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("hubspot: failed to create request: %w", err)
	}
	for k, vs := range opts.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	if h.hooks != nil {
		if err := h.runBeforeHooks(ctx, req); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	duration := time.Since(start)
	if h.hooks != nil {
		h.hooks.AfterResponse(ctx, req, resp, duration, err)
	}
	if err != nil {
		h.logger.Warn("hubspot: request failed",
			"method", method, "path", req.URL.Path, "duration", duration, "error", err)
		return nil, fmt.Errorf("hubspot: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, h.maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("hubspot: failed to read response body: %w", err)
	}
	if int64(len(respBody)) > h.maxResponseSize {
		return nil, fmt.Errorf("hubspot: response body exceeds maximum size of %d bytes", h.maxResponseSize)
	}

	h.logger.Debug("hubspot: request completed",
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", duration,
		"authorization", logging.MaskAuthHeader(req.Header.Get(pkghttp.HeaderAuthorization)),
	)

	return &pkghttp.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// runBeforeHooks runs the hook chain and then restores the headers the
// dispatcher owns.
func (h *HTTP) runBeforeHooks(ctx context.Context, req *http.Request) error {
	protected := []string{pkghttp.HeaderUserAgent, pkghttp.HeaderAuthorization}
	saved := make(map[string][]string, len(protected))
	for _, k := range protected {
		saved[k] = slices.Clone(req.Header.Values(k))
	}

	err := h.hooks.BeforeRequest(ctx, req)

	for _, k := range protected {
		if len(saved[k]) == 0 {
			req.Header.Del(k)
			continue
		}
		req.Header[k] = saved[k]
	}
	return err
}

// encodeBody picks the request body from opts: Body, then JSON, then Form.
func encodeBody(opts *pkghttp.Options) (io.Reader, string, error) {
	switch {
	case opts.Body != nil:
		return opts.Body, "", nil
	case opts.JSON != nil:
		data, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("hubspot: failed to marshal request body: %w", err)
		}
		return bytes.NewReader(data), contentTypeJSON, nil
	case opts.Form != nil:
		return strings.NewReader(opts.Form.Encode()), contentTypeForm, nil
	default:
		return nil, "", nil
	}
}
