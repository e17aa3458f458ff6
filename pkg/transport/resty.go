package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/logging"
)

// Ensure Resty implements pkghttp.Transport at compile time.
var _ pkghttp.Transport = (*Resty)(nil)

// Resty is a Transport backed by a go-resty client. Use it when the
// application already configures resty (proxies, TLS, middleware).
// Credentials configured on the resty client are replaced by the
// Authorization header of each request.
type Resty struct {
	client *resty.Client
	logger logging.Logger
}

// NewResty wraps client. A nil client is replaced by resty.New().
func NewResty(client *resty.Client, logger logging.Logger) *Resty {
	if client == nil {
		client = resty.New()
	}
	return &Resty{client: client, logger: logging.OrNop(logger)}
}

// Get implements pkghttp.Transport.
func (r *Resty) Get(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return r.do(ctx, pkghttp.MethodGet, url, opts)
}

// Post implements pkghttp.Transport.
func (r *Resty) Post(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return r.do(ctx, pkghttp.MethodPost, url, opts)
}

// Put implements pkghttp.Transport.
func (r *Resty) Put(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return r.do(ctx, pkghttp.MethodPut, url, opts)
}

// Patch implements pkghttp.Transport.
func (r *Resty) Patch(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return r.do(ctx, pkghttp.MethodPatch, url, opts)
}

// Delete implements pkghttp.Transport.
func (r *Resty) Delete(ctx context.Context, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	return r.do(ctx, pkghttp.MethodDelete, url, opts)
}

func (r *Resty) do(ctx context.Context, method pkghttp.Method, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
	if opts == nil {
		opts = &pkghttp.Options{}
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req := r.client.R().SetContext(ctx)
	for k, vs := range opts.Headers {
		if http.CanonicalHeaderKey(k) == pkghttp.HeaderAuthorization {
			continue
		}
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	// resty writes client-level SetAuthToken and SetBasicAuth credentials
	// during Execute; a request-level token is applied last.
	auth := opts.Headers.Get(pkghttp.HeaderAuthorization)
	if scheme, token, ok := strings.Cut(auth, " "); ok && token != "" {
		req.SetAuthScheme(scheme).SetAuthToken(token)
	} else if auth != "" {
		req.Header.Set(pkghttp.HeaderAuthorization, auth)
	}

	switch {
	case opts.Body != nil:
		req.SetBody(opts.Body)
	case opts.JSON != nil:
		if req.Header.Get("Content-Type") == "" {
			req.SetHeader("Content-Type", contentTypeJSON)
		}
		req.SetBody(opts.JSON)
	case opts.Form != nil:
		req.SetFormDataFromValues(opts.Form)
	}

	resp, err := req.Execute(string(method), url)
	if err != nil {
		r.logger.Warn("hubspot: request failed", "method", method, "url", url, "error", err)
		return nil, fmt.Errorf("hubspot: request failed: %w", err)
	}

	r.logger.Debug("hubspot: request completed",
		"method", method,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
		"authorization", logging.MaskAuthHeader(auth),
	)

	return &pkghttp.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
