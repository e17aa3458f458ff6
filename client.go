package hubspot

import (
	"context"

	"github.com/jdziat/hubspot-go/pkg/api/companies"
	"github.com/jdziat/hubspot-go/pkg/api/contacts"
	"github.com/jdziat/hubspot-go/pkg/api/deals"
	"github.com/jdziat/hubspot-go/pkg/api/lists"
	"github.com/jdziat/hubspot-go/pkg/api/owners"
	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
)

// Client is the HubSpot API client. It is safe for concurrent use.
type Client struct {
	config     Config
	dispatcher *pkghttp.Dispatcher

	contacts  *contacts.Client
	companies *companies.Client
	deals     *deals.Client
	lists     *lists.Client
	owners    *owners.Client
}

// New creates a new HubSpot client that sends requests through transport.
//
// Example:
//
//	client, err := hubspot.New(os.Getenv("HUBSPOT_ACCESS_TOKEN"), transport.NewHTTP())
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(token string, transport Transport, opts ...ConfigOption) (*Client, error) {
	cfg := &Config{
		Token: token,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return NewWithConfig(cfg, transport)
}

// NewWithConfig creates a new HubSpot client from a Config struct.
// The config is copied; later changes to cfg do not affect the client.
//
// Example:
//
//	client, err := hubspot.NewWithConfig(&hubspot.Config{
//	    Token:         os.Getenv("HUBSPOT_ACCESS_TOKEN"),
//	    QueryEncoding: hubspot.EncodingLegacyForm,
//	}, transport.NewHTTP())
func NewWithConfig(cfg *Config, transport Transport) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if transport == nil {
		return nil, ErrNilTransport
	}

	cfgCopy := *cfg
	cfgCopy.applyDefaults()

	if err := cfgCopy.validate(); err != nil {
		return nil, err
	}

	d := pkghttp.NewDispatcher(cfgCopy.settings(), transport)

	return &Client{
		config:     cfgCopy,
		dispatcher: d,
		contacts:   contacts.New(d),
		companies:  companies.New(d),
		deals:      deals.New(d),
		lists:      lists.New(d),
		owners:     owners.New(d),
	}, nil
}

// Config returns a copy of the client's effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Send issues an authenticated request to endpoint with the given query
// parameters. The response is returned as received, including non-2xx
// statuses; transport errors are returned unchanged.
func (c *Client) Send(ctx context.Context, method Method, endpoint string, opts *Options, params *Params) (*Response, error) {
	return c.dispatcher.Send(ctx, method, endpoint, opts, params)
}

// URL returns the full request URL for endpoint and params.
func (c *Client) URL(endpoint string, params *Params) string {
	return c.dispatcher.URL(endpoint, params)
}

// Contacts returns the contacts API client.
func (c *Client) Contacts() *contacts.Client {
	return c.contacts
}

// Companies returns the companies API client.
func (c *Client) Companies() *companies.Client {
	return c.companies
}

// Deals returns the deals API client.
func (c *Client) Deals() *deals.Client {
	return c.deals
}

// Lists returns the contact lists API client.
func (c *Client) Lists() *lists.Client {
	return c.lists
}

// Owners returns the owners API client.
func (c *Client) Owners() *owners.Client {
	return c.owners
}
