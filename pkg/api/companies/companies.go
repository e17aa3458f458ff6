// Package companies provides the HubSpot Companies API client.
package companies

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// Endpoint for the companies API.
const Endpoint = "/companies/v2/companies"

// Client handles company-related API operations.
type Client struct {
	http http.Sender
}

// New creates a new companies client with the given sender.
func New(sender http.Sender) *Client {
	return &Client{http: sender}
}

// Property is a single company property in the write format.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Properties converts a map into the properties payload, sorted by name.
func Properties(props map[string]string) map[string][]Property {
	names := make([]string, 0, len(props))
	for k := range props {
		names = append(names, k)
	}
	sort.Strings(names)

	out := make([]Property, 0, len(names))
	for _, name := range names {
		out = append(out, Property{Name: name, Value: props[name]})
	}
	return map[string][]Property{"properties": out}
}

// All lists companies page by page.
// Common params: limit, offset, properties (list).
func (c *Client) All(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint+"/paged", nil, params)
}

// RecentlyModified lists companies ordered by last modification.
func (c *Client) RecentlyModified(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint+"/recent/modified", nil, params)
}

// Get retrieves a single company by ID.
func (c *Client) Get(ctx context.Context, id string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, path(id), nil, nil)
}

// Create creates a company.
func (c *Client) Create(ctx context.Context, props map[string]string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPost, Endpoint, &http.Options{JSON: Properties(props)}, nil)
}

// Update updates a company's properties.
func (c *Client) Update(ctx context.Context, id string, props map[string]string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPut, path(id), &http.Options{JSON: Properties(props)}, nil)
}

// Delete deletes a company by ID.
func (c *Client) Delete(ctx context.Context, id string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodDelete, path(id), nil, nil)
}

func path(id string) string {
	return fmt.Sprintf("%s/%s", Endpoint, url.PathEscape(id))
}
