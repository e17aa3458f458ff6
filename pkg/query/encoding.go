// Package query serializes HubSpot query parameters.
//
// Parameters are kept in insertion order and rendered with one of two
// percent-encoding conventions:
//
//	p := query.New().
//	    Set("count", "10").
//	    SetList("property", "firstname", "lastname")
//
//	query.Build(p, query.EncodingRFC3986)
//	// count=10&property%5B%5D=firstname&property%5B%5D=lastname
package query

import (
	"fmt"
	"net/url"
	"strings"
)

// Encoding selects the percent-encoding convention for query components.
type Encoding string

const (
	// EncodingRFC3986 encodes a space as %20.
	EncodingRFC3986 Encoding = "rfc3986"

	// EncodingLegacyForm encodes a space as '+', as HTML forms do.
	EncodingLegacyForm Encoding = "legacy-form"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = EncodingRFC3986

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	return string(e)
}

// IsValid returns true if the encoding is one of the known conventions.
func (e Encoding) IsValid() bool {
	switch e {
	case EncodingRFC3986, EncodingLegacyForm:
		return true
	default:
		return false
	}
}

// ParseEncoding parses an encoding name. The empty string maps to
// DefaultEncoding. Matching is case-insensitive.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultEncoding, nil
	case string(EncodingRFC3986):
		return EncodingRFC3986, nil
	case string(EncodingLegacyForm):
		return EncodingLegacyForm, nil
	default:
		return "", fmt.Errorf("hubspot: unknown query encoding %q", s)
	}
}

// Encode percent-encodes a single query component.
//
// Both encodings escape everything except the unreserved characters
// A-Z a-z 0-9 - _ . ~ and differ only in how a space is written.
// Unknown encodings fall back to DefaultEncoding.
func Encode(value string, enc Encoding) string {
	escaped := url.QueryEscape(value)
	if enc == EncodingLegacyForm {
		return escaped
	}
	// QueryEscape turns a literal '+' into %2B, so any '+' left is a space.
	return strings.ReplaceAll(escaped, "+", "%20")
}
