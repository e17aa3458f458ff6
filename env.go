package hubspot

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jdziat/hubspot-go/pkg/query"
	"github.com/jdziat/hubspot-go/pkg/transport"
)

// Environment variable names for configuration.
const (
	// EnvAccessToken is the environment variable for the HubSpot access token.
	EnvAccessToken = "HUBSPOT_ACCESS_TOKEN"
	// EnvBaseURL is the environment variable for the HubSpot API base URL.
	EnvBaseURL = "HUBSPOT_BASE_URL"
	// EnvOAuth marks the access token as an OAuth token ("true" or "1").
	EnvOAuth = "HUBSPOT_OAUTH"
	// EnvQueryEncoding selects the query encoding ("rfc3986" or "legacy-form").
	EnvQueryEncoding = "HUBSPOT_QUERY_ENCODING"
)

// ConfigFromEnv builds a Config from HUBSPOT_* environment variables.
// Unset variables leave the corresponding field at its zero value.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Token:   os.Getenv(EnvAccessToken),
		BaseURL: os.Getenv(EnvBaseURL),
	}

	if v := os.Getenv(EnvOAuth); v != "" {
		oauth, err := strconv.ParseBool(v)
		if err != nil {
			return nil, NewValidationError(EnvOAuth, fmt.Sprintf("must be a boolean, got %q", v)).WithCause(err)
		}
		cfg.OAuth = oauth
	}

	if v := os.Getenv(EnvQueryEncoding); v != "" {
		enc, err := query.ParseEncoding(v)
		if err != nil {
			return nil, NewValidationError(EnvQueryEncoding, fmt.Sprintf("unknown encoding %q", v)).WithCause(err)
		}
		cfg.QueryEncoding = enc
	}

	return cfg, nil
}

// NewFromEnv creates a client configured from environment variables that
// sends requests through the default net/http transport.
// Explicit options are applied after the environment and take precedence.
//
// Example:
//
//	client, err := hubspot.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.Contacts().GetByEmail(ctx, "jane@example.com", nil)
func NewFromEnv(opts ...ConfigOption) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := NewWithConfig(cfg, transport.NewHTTP(transport.WithLogger(cfg.Logger)))
	if errors.Is(err, ErrMissingToken) {
		return nil, fmt.Errorf("%w: set %s", err, EnvAccessToken)
	}
	return client, err
}
