package hubspot

import (
	"fmt"
	"net/url"

	"golang.org/x/oauth2"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/logging"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// DefaultBaseURL is the HubSpot API origin used when Config.BaseURL is empty.
const DefaultBaseURL = pkghttp.DefaultBaseURL

// Config holds the configuration for the HubSpot client.
type Config struct {
	// Token is the private app token or OAuth access token.
	// Required unless OAuth is set with a TokenSource.
	Token string

	// OAuth marks the token as an OAuth access token. The Authorization header
	// is "Bearer <token>" in both modes; with OAuth set, TokenSource (when
	// present) supplies the token for each request.
	OAuth bool

	// BaseURL is the API origin. Defaults to DefaultBaseURL.
	BaseURL string

	// QueryEncoding selects how query parameters are percent-encoded.
	// Defaults to RFC 3986.
	QueryEncoding QueryEncoding

	// OmitEmptyQuery drops the trailing '?' from URLs without parameters.
	OmitEmptyQuery bool

	// TokenSource supplies OAuth access tokens. Only used when OAuth is true.
	TokenSource oauth2.TokenSource

	// Logger is handed to the default transport built by NewFromEnv. The
	// client itself does not log, so New and NewWithConfig ignore it; give
	// a caller-supplied transport its own logger instead (for example
	// transport.WithLogger).
	Logger Logger
}

// String returns a string representation of the config with a masked token.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Token: %q, OAuth: %t, BaseURL: %q, QueryEncoding: %q, OmitEmptyQuery: %t}",
		logging.MaskToken(c.Token),
		c.OAuth,
		c.BaseURL,
		c.QueryEncoding,
		c.OmitEmptyQuery,
	)
}

// applyDefaults sets default values for unset configuration options.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.QueryEncoding == "" {
		c.QueryEncoding = query.DefaultEncoding
	}
}

// Validate checks that the configuration is usable. Defaults are applied to
// a copy first, so a zero BaseURL or QueryEncoding is valid.
func (c *Config) Validate() error {
	cfg := *c
	cfg.applyDefaults()
	return cfg.validate()
}

func (c *Config) validate() error {
	if c.Token == "" && !(c.OAuth && c.TokenSource != nil) {
		return ErrMissingToken
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	if !c.QueryEncoding.IsValid() {
		return NewValidationError("QueryEncoding",
			fmt.Sprintf("must be %q or %q, got %q", query.EncodingRFC3986, query.EncodingLegacyForm, c.QueryEncoding))
	}

	return nil
}

// settings converts the config into dispatcher settings.
func (c *Config) settings() pkghttp.Settings {
	return pkghttp.Settings{
		BaseURL:        c.BaseURL,
		Token:          c.Token,
		OAuth:          c.OAuth,
		TokenSource:    c.TokenSource,
		Encoding:       c.QueryEncoding,
		OmitEmptyQuery: c.OmitEmptyQuery,
	}
}

// StaticTokenSource returns a TokenSource that always yields token.
// It is mainly useful in tests and for tokens refreshed outside the process.
func StaticTokenSource(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}
