// Package contacts provides the HubSpot Contacts API client.
package contacts

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// Endpoint is the base path of the contacts API.
const Endpoint = "/contacts/v1"

// Client handles contact-related API operations.
// Responses are returned as received; decoding is left to the caller.
type Client struct {
	http http.Sender
}

// New creates a new contacts client with the given sender.
func New(sender http.Sender) *Client {
	return &Client{http: sender}
}

// Property is a single contact property in the legacy write format.
type Property struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Properties converts a map into the legacy properties payload, sorted by
// property name.
func Properties(props map[string]string) map[string][]Property {
	names := make([]string, 0, len(props))
	for k := range props {
		names = append(names, k)
	}
	sort.Strings(names)

	out := make([]Property, 0, len(names))
	for _, name := range names {
		out = append(out, Property{Property: name, Value: props[name]})
	}
	return map[string][]Property{"properties": out}
}

// All lists contacts, newest first.
// Common params: count, vidOffset, property (list).
func (c *Client) All(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint+"/lists/all/contacts/all", nil, params)
}

// Recent lists recently updated contacts.
func (c *Client) Recent(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint+"/lists/recently_updated/contacts/recent", nil, params)
}

// GetByID retrieves a contact by its vid.
func (c *Client) GetByID(ctx context.Context, vid string, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, fmt.Sprintf("%s/contact/vid/%s/profile", Endpoint, url.PathEscape(vid)), nil, params)
}

// GetByEmail retrieves a contact by e-mail address.
func (c *Client) GetByEmail(ctx context.Context, email string, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, fmt.Sprintf("%s/contact/email/%s/profile", Endpoint, url.PathEscape(email)), nil, params)
}

// Search finds contacts matching q. Extra params (count, offset, property)
// are appended after q.
func (c *Client) Search(ctx context.Context, q string, params *query.Params) (*http.Response, error) {
	p := query.New().Set("q", q).Merge(params).Set("q", q)
	return c.http.Send(ctx, http.MethodGet, Endpoint+"/search/query", nil, p)
}

// Create creates a contact with the given properties.
func (c *Client) Create(ctx context.Context, props map[string]string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPost, Endpoint+"/contact", &http.Options{JSON: Properties(props)}, nil)
}

// Update updates the properties of the contact with the given vid.
func (c *Client) Update(ctx context.Context, vid string, props map[string]string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPost, fmt.Sprintf("%s/contact/vid/%s/profile", Endpoint, url.PathEscape(vid)), &http.Options{JSON: Properties(props)}, nil)
}

// Delete deletes the contact with the given vid.
func (c *Client) Delete(ctx context.Context, vid string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodDelete, fmt.Sprintf("%s/contact/vid/%s", Endpoint, url.PathEscape(vid)), nil, nil)
}
