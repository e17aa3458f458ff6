package hubspot

import (
	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// ============================================================================
// Transport Types - Re-exported from pkg/http
// ============================================================================

// Transport performs HTTP requests on behalf of the client.
type Transport = pkghttp.Transport

// TransportFunc adapts a single function to Transport.
type TransportFunc = pkghttp.TransportFunc

// Method is an HTTP request verb.
type Method = pkghttp.Method

// Options holds per-request attributes passed through to the transport.
type Options = pkghttp.Options

// Response is a raw HTTP response.
type Response = pkghttp.Response

// HTTP methods accepted by Send.
const (
	MethodGet    = pkghttp.MethodGet
	MethodPost   = pkghttp.MethodPost
	MethodPut    = pkghttp.MethodPut
	MethodPatch  = pkghttp.MethodPatch
	MethodDelete = pkghttp.MethodDelete
)

// UserAgent is sent with every request.
const UserAgent = pkghttp.UserAgent

// Version is the SDK version.
const Version = pkghttp.Version

// ============================================================================
// Query Types - Re-exported from pkg/query
// ============================================================================

// QueryEncoding selects how query parameters are percent-encoded.
type QueryEncoding = query.Encoding

// Query encodings.
const (
	// EncodingRFC3986 encodes spaces as %20.
	EncodingRFC3986 = query.EncodingRFC3986
	// EncodingLegacyForm encodes spaces as '+'.
	EncodingLegacyForm = query.EncodingLegacyForm
)

// Params is an ordered set of query parameters.
type Params = query.Params

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return query.New()
}
