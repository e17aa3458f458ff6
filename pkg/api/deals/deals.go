// Package deals provides the HubSpot Deals API client.
package deals

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// Endpoint for the deals API.
const Endpoint = "/deals/v1/deal"

// Client handles deal-related API operations.
type Client struct {
	http http.Sender
}

// New creates a new deals client with the given sender.
func New(sender http.Sender) *Client {
	return &Client{http: sender}
}

// Property is a single deal property in the write format.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Associations links a deal to contacts and companies on creation.
type Associations struct {
	AssociatedVids       []int64 `json:"associatedVids,omitempty"`
	AssociatedCompanyIDs []int64 `json:"associatedCompanyIds,omitempty"`
}

// Payload is the body of create and update requests.
type Payload struct {
	Associations *Associations `json:"associations,omitempty"`
	Properties   []Property    `json:"properties"`
}

// NewPayload converts a map into a payload with properties sorted by name.
func NewPayload(props map[string]string, assoc *Associations) Payload {
	names := make([]string, 0, len(props))
	for k := range props {
		names = append(names, k)
	}
	sort.Strings(names)

	p := Payload{Associations: assoc, Properties: make([]Property, 0, len(names))}
	for _, name := range names {
		p.Properties = append(p.Properties, Property{Name: name, Value: props[name]})
	}
	return p
}

// All lists deals page by page.
// Common params: limit, offset, properties (list), includeAssociations.
func (c *Client) All(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint+"/paged", nil, params)
}

// RecentlyModified lists deals ordered by last modification.
func (c *Client) RecentlyModified(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint+"/recent/modified", nil, params)
}

// Get retrieves a single deal by ID.
func (c *Client) Get(ctx context.Context, id string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, path(id), nil, nil)
}

// Create creates a deal, optionally associated with contacts and companies.
func (c *Client) Create(ctx context.Context, props map[string]string, assoc *Associations) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPost, Endpoint, &http.Options{JSON: NewPayload(props, assoc)}, nil)
}

// Update updates a deal's properties.
func (c *Client) Update(ctx context.Context, id string, props map[string]string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPut, path(id), &http.Options{JSON: NewPayload(props, nil)}, nil)
}

// Delete deletes a deal by ID.
func (c *Client) Delete(ctx context.Context, id string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodDelete, path(id), nil, nil)
}

func path(id string) string {
	return fmt.Sprintf("%s/%s", Endpoint, url.PathEscape(id))
}
