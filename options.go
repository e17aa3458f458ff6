package hubspot

import "golang.org/x/oauth2"

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithBaseURL sets a custom base URL for the HubSpot API.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithOAuth marks the token as an OAuth access token.
func WithOAuth(oauth bool) ConfigOption {
	return func(c *Config) {
		c.OAuth = oauth
	}
}

// WithQueryEncoding sets the query percent-encoding mode.
func WithQueryEncoding(enc QueryEncoding) ConfigOption {
	return func(c *Config) {
		c.QueryEncoding = enc
	}
}

// WithOmitEmptyQuery drops the trailing '?' when a request has no parameters.
func WithOmitEmptyQuery(omit bool) ConfigOption {
	return func(c *Config) {
		c.OmitEmptyQuery = omit
	}
}

// WithTokenSource sets an OAuth token source and enables OAuth mode.
//
// Example:
//
//	ts := oauthConfig.TokenSource(ctx, tok)
//	client, _ := hubspot.New("", transport, hubspot.WithTokenSource(ts))
func WithTokenSource(ts oauth2.TokenSource) ConfigOption {
	return func(c *Config) {
		c.TokenSource = ts
		c.OAuth = true
	}
}

// WithLogger sets the logger handed to the default transport built by
// NewFromEnv. It has no effect with New or NewWithConfig, where the caller
// supplies the transport and configures its logging directly.
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}
