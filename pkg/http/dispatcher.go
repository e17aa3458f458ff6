package http

import (
	"context"
	"fmt"
	"net/textproto"
	"strings"

	"golang.org/x/oauth2"

	"github.com/jdziat/hubspot-go/pkg/query"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.9.0"

// DefaultBaseURL is the HubSpot API origin.
const DefaultBaseURL = "https://api.hubapi.com"

// Header names set on every request.
const (
	HeaderUserAgent     = "User-Agent"
	HeaderAuthorization = "Authorization"
)

// UserAgent identifies this SDK to the HubSpot API.
const UserAgent = "hubspot-go/" + Version + " (https://github.com/jdziat/hubspot-go)"

// Sender is implemented by Dispatcher. Resource clients depend on it so they
// can be tested without a real dispatcher.
type Sender interface {
	Send(ctx context.Context, method Method, endpoint string, opts *Options, params *query.Params) (*Response, error)
}

// Ensure Dispatcher implements Sender at compile time.
var _ Sender = (*Dispatcher)(nil)

// Settings configures a Dispatcher.
type Settings struct {
	// BaseURL is prepended to every endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// Token is the private app token or OAuth access token.
	Token string

	// OAuth marks Token as an OAuth access token. Header construction is the
	// same in both modes; with OAuth set, TokenSource supplies the token.
	OAuth bool

	// TokenSource supplies OAuth access tokens per request. Only consulted
	// when OAuth is true.
	TokenSource oauth2.TokenSource

	// Encoding selects the query percent-encoding. Defaults to RFC 3986.
	Encoding query.Encoding

	// OmitEmptyQuery drops the trailing '?' when there are no parameters.
	OmitEmptyQuery bool
}

// Dispatcher decorates requests with the SDK's authentication and
// identification headers and forwards them to a Transport.
//
// A Dispatcher is immutable and safe for concurrent use.
type Dispatcher struct {
	settings  Settings
	transport Transport
}

// NewDispatcher creates a dispatcher. The settings are copied.
func NewDispatcher(settings Settings, transport Transport) *Dispatcher {
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	if settings.Encoding == "" {
		settings.Encoding = query.DefaultEncoding
	}
	return &Dispatcher{
		settings:  settings,
		transport: transport,
	}
}

// Settings returns a copy of the dispatcher's settings.
func (d *Dispatcher) Settings() Settings {
	return d.settings
}

// URL returns baseURL + endpoint + "?" + query string. The endpoint is used
// verbatim. The '?' is written even when params is empty unless
// OmitEmptyQuery is set.
func (d *Dispatcher) URL(endpoint string, params *query.Params) string {
	qs := query.Build(params, d.settings.Encoding)
	if qs == "" && d.settings.OmitEmptyQuery {
		return d.settings.BaseURL + endpoint
	}
	return d.settings.BaseURL + endpoint + "?" + qs
}

// Send builds the URL for endpoint and params, sets the User-Agent and
// Authorization headers on a copy of opts, and calls the transport method for
// method. The transport's response and error are returned unchanged.
//
// Caller-supplied User-Agent and Authorization values are replaced, whatever
// their casing; opts itself is never modified.
func (d *Dispatcher) Send(ctx context.Context, method Method, endpoint string, opts *Options, params *query.Params) (*Response, error) {
	token, err := d.token()
	if err != nil {
		return nil, err
	}

	u := d.URL(endpoint, params)

	decorated := opts.Clone()
	setHeader(decorated, HeaderUserAgent, UserAgent)
	setHeader(decorated, HeaderAuthorization, "Bearer "+token)

	return Do(ctx, d.transport, method, u, decorated)
}

func (d *Dispatcher) token() (string, error) {
	if !d.settings.OAuth || d.settings.TokenSource == nil {
		return d.settings.Token, nil
	}
	tok, err := d.settings.TokenSource.Token()
	if err != nil {
		return "", fmt.Errorf("hubspot: oauth token: %w", err)
	}
	return tok.AccessToken, nil
}

// setHeader replaces every variant of key, including non-canonical keys
// written directly into the map, with a single value.
func setHeader(opts *Options, key, value string) {
	canonical := textproto.CanonicalMIMEHeaderKey(key)
	for k := range opts.Headers {
		if k != canonical && strings.EqualFold(k, key) {
			delete(opts.Headers, k)
		}
	}
	opts.Headers[canonical] = []string{value}
}
