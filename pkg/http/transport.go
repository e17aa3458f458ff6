// Package http defines the transport contract of the HubSpot SDK and the
// dispatcher that authenticates requests before handing them to a transport.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUnsupportedMethod is returned by Do for a Method outside the closed verb set.
var ErrUnsupportedMethod = errors.New("hubspot: unsupported HTTP method")

// Method is an HTTP verb understood by a Transport.
type Method string

// Supported methods.
const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// String returns the string representation of the method.
func (m Method) String() string {
	return string(m)
}

// IsValid returns true if m is one of the supported methods.
func (m Method) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return true
	default:
		return false
	}
}

// Options holds per-request attributes.
//
// The dispatcher only reads and augments Headers. The remaining fields are
// interpreted by the Transport: Body is sent as-is, JSON is marshaled and sent
// with Content-Type application/json, Form is sent url-encoded. When more than
// one body field is set, Body wins over JSON, and JSON wins over Form.
type Options struct {
	Headers http.Header
	Body    io.Reader
	JSON    any
	Form    url.Values

	// Timeout bounds the request when positive. Transports derive a context
	// from the call's context with this timeout.
	Timeout time.Duration
}

// Clone returns a copy of o with its own header map. Body, JSON and Form are
// shared with the original. A nil receiver yields an empty Options.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{Headers: make(http.Header)}
	}
	c := *o
	if o.Headers != nil {
		c.Headers = o.Headers.Clone()
	} else {
		c.Headers = make(http.Header)
	}
	return &c
}

// Response is the transport's view of an HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess returns true for 2xx status codes.
func (r *Response) IsSuccess() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport performs the network I/O for the SDK.
// Implementations own connection pooling, timeouts and cancellation.
type Transport interface {
	Get(ctx context.Context, url string, opts *Options) (*Response, error)
	Post(ctx context.Context, url string, opts *Options) (*Response, error)
	Put(ctx context.Context, url string, opts *Options) (*Response, error)
	Patch(ctx context.Context, url string, opts *Options) (*Response, error)
	Delete(ctx context.Context, url string, opts *Options) (*Response, error)
}

// TransportFunc adapts a single verb-aware function to the Transport interface.
type TransportFunc func(ctx context.Context, method Method, url string, opts *Options) (*Response, error)

// Ensure TransportFunc implements Transport at compile time.
var _ Transport = TransportFunc(nil)

// Get implements Transport.
func (f TransportFunc) Get(ctx context.Context, url string, opts *Options) (*Response, error) {
	return f(ctx, MethodGet, url, opts)
}

// Post implements Transport.
func (f TransportFunc) Post(ctx context.Context, url string, opts *Options) (*Response, error) {
	return f(ctx, MethodPost, url, opts)
}

// Put implements Transport.
func (f TransportFunc) Put(ctx context.Context, url string, opts *Options) (*Response, error) {
	return f(ctx, MethodPut, url, opts)
}

// Patch implements Transport.
func (f TransportFunc) Patch(ctx context.Context, url string, opts *Options) (*Response, error) {
	return f(ctx, MethodPatch, url, opts)
}

// Delete implements Transport.
func (f TransportFunc) Delete(ctx context.Context, url string, opts *Options) (*Response, error) {
	return f(ctx, MethodDelete, url, opts)
}

// Do calls the Transport method matching m.
func Do(ctx context.Context, t Transport, m Method, url string, opts *Options) (*Response, error) {
	switch m {
	case MethodGet:
		return t.Get(ctx, url, opts)
	case MethodPost:
		return t.Post(ctx, url, opts)
	case MethodPut:
		return t.Put(ctx, url, opts)
	case MethodPatch:
		return t.Patch(ctx, url, opts)
	case MethodDelete:
		return t.Delete(ctx, url, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, string(m))
	}
}
