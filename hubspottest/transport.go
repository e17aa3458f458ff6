package hubspottest

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
)

// Compile-time interface assertion.
var _ pkghttp.Transport = (*Transport)(nil)

// Call is a request received by Transport.
type Call struct {
	Method  pkghttp.Method
	URL     string
	Options *pkghttp.Options
}

// Path returns the path component of the call URL.
func (c Call) Path() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	return u.Path
}

// RawQuery returns the encoded query of the call URL, without the '?'.
func (c Call) RawQuery() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	return u.RawQuery
}

// Header returns the first value of the request header key.
func (c Call) Header(key string) string {
	if c.Options == nil {
		return ""
	}
	return c.Options.Headers.Get(key)
}

// Transport is a pkghttp.Transport that records every call and replies with
// canned responses. It is safe for concurrent use.
type Transport struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]*pkghttp.Response
	errs      map[string]error
}

// NewTransport creates a recording transport. Unmatched requests receive a
// 200 response with body "{}".
func NewTransport() *Transport {
	return &Transport{
		calls:     make([]Call, 0),
		responses: make(map[string]*pkghttp.Response),
		errs:      make(map[string]error),
	}
}

func routeKey(method pkghttp.Method, path string) string {
	return string(method) + " " + path
}

// SetResponse configures the response for requests with method to path.
func (t *Transport) SetResponse(method pkghttp.Method, path string, status int, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses[routeKey(method, path)] = &pkghttp.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

// SetError makes requests with method to path fail with err.
func (t *Transport) SetError(method pkghttp.Method, path string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errs[routeKey(method, path)] = err
}

// Get implements pkghttp.Transport.
func (t *Transport) Get(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return t.record(ctx, pkghttp.MethodGet, url, opts)
}

// Post implements pkghttp.Transport.
func (t *Transport) Post(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return t.record(ctx, pkghttp.MethodPost, url, opts)
}

// Put implements pkghttp.Transport.
func (t *Transport) Put(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return t.record(ctx, pkghttp.MethodPut, url, opts)
}

// Patch implements pkghttp.Transport.
func (t *Transport) Patch(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return t.record(ctx, pkghttp.MethodPatch, url, opts)
}

// Delete implements pkghttp.Transport.
func (t *Transport) Delete(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return t.record(ctx, pkghttp.MethodDelete, url, opts)
}

func (t *Transport) record(ctx context.Context, method pkghttp.Method, rawURL string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	call := Call{Method: method, URL: rawURL, Options: opts}
	key := routeKey(method, call.Path())

	t.mu.Lock()
	t.calls = append(t.calls, call)
	err := t.errs[key]
	canned := t.responses[key]
	t.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if canned == nil {
		return &pkghttp.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       []byte("{}"),
		}, nil
	}
	return &pkghttp.Response{
		StatusCode: canned.StatusCode,
		Header:     canned.Header.Clone(),
		Body:       append([]byte(nil), canned.Body...),
	}, nil
}

// Calls returns all recorded calls.
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Call{}, t.calls...)
}

// CallCount returns the number of recorded calls.
func (t *Transport) CallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}

// LastCall returns the most recent call. ok is false if there were none.
func (t *Transport) LastCall() (call Call, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.calls) == 0 {
		return Call{}, false
	}
	return t.calls[len(t.calls)-1], true
}

// Reset clears recorded calls. Configured responses and errors are kept.
func (t *Transport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = make([]Call, 0)
}
