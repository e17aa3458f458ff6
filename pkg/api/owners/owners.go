// Package owners provides the HubSpot Owners API client.
package owners

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// Endpoint for the owners API.
const Endpoint = "/owners/v2/owners"

// Client handles owner lookups.
type Client struct {
	http http.Sender
}

// New creates a new owners client with the given sender.
func New(sender http.Sender) *Client {
	return &Client{http: sender}
}

// All lists owners. Common params: email, includeInactive.
func (c *Client) All(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint, nil, params)
}

// Get retrieves an owner by ID.
func (c *Client) Get(ctx context.Context, id string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, fmt.Sprintf("%s/%s", Endpoint, url.PathEscape(id)), nil, nil)
}
