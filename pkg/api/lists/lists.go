// Package lists provides the HubSpot contact lists API client.
package lists

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// Endpoint for the contact lists API.
const Endpoint = "/contacts/v1/lists"

// Client handles contact list operations.
type Client struct {
	http http.Sender
}

// New creates a new lists client with the given sender.
func New(sender http.Sender) *Client {
	return &Client{http: sender}
}

// CreateRequest is the body of a list creation request.
// Dynamic lists require Filters; static lists ignore them.
type CreateRequest struct {
	Name    string `json:"name"`
	Dynamic bool   `json:"dynamic"`
	Filters any    `json:"filters,omitempty"`
}

// membership is the body of add and remove requests.
type membership struct {
	Vids   []int64  `json:"vids,omitempty"`
	Emails []string `json:"emails,omitempty"`
}

// All lists contact lists.
// Common params: count, offset.
func (c *Client) All(ctx context.Context, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, Endpoint, nil, params)
}

// Get retrieves a list by ID.
func (c *Client) Get(ctx context.Context, id string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, path(id), nil, nil)
}

// Contacts lists the contacts in a list.
// Common params: count, vidOffset, property (list).
func (c *Client) Contacts(ctx context.Context, id string, params *query.Params) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodGet, path(id)+"/contacts/all", nil, params)
}

// Create creates a contact list.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPost, Endpoint, &http.Options{JSON: req}, nil)
}

// AddContacts adds contacts to a static list by vid and/or e-mail.
func (c *Client) AddContacts(ctx context.Context, id string, vids []int64, emails []string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPost, path(id)+"/add", &http.Options{JSON: membership{Vids: vids, Emails: emails}}, nil)
}

// RemoveContacts removes contacts from a static list by vid.
func (c *Client) RemoveContacts(ctx context.Context, id string, vids []int64) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodPost, path(id)+"/remove", &http.Options{JSON: membership{Vids: vids}}, nil)
}

// Delete deletes a list by ID.
func (c *Client) Delete(ctx context.Context, id string) (*http.Response, error) {
	return c.http.Send(ctx, http.MethodDelete, path(id), nil, nil)
}

func path(id string) string {
	return fmt.Sprintf("%s/%s", Endpoint, url.PathEscape(id))
}
