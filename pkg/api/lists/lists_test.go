package lists_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jdziat/hubspot-go/hubspottest"
	"github.com/jdziat/hubspot-go/pkg/api/lists"
	"github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

func newClient() (*lists.Client, *hubspottest.Transport) {
	tr := hubspottest.NewTransport()
	return lists.New(http.NewDispatcher(http.Settings{Token: "tok"}, tr)), tr
}

func TestListsRoutes(t *testing.T) {
	tests := []struct {
		name     string
		call     func(ctx context.Context, c *lists.Client) (*http.Response, error)
		wantMeth http.Method
		wantURL  string
		wantBody string
	}{
		{
			name: "All",
			call: func(ctx context.Context, c *lists.Client) (*http.Response, error) {
				return c.All(ctx, query.New().SetInt("count", 20).SetInt("offset", 0))
			},
			wantMeth: http.MethodGet,
			wantURL:  "https://api.hubapi.com/contacts/v1/lists?count=20&offset=0",
		},
		{
			name: "Get",
			call: func(ctx context.Context, c *lists.Client) (*http.Response, error) {
				return c.Get(ctx, "226468")
			},
			wantMeth: http.MethodGet,
			wantURL:  "https://api.hubapi.com/contacts/v1/lists/226468?",
		},
		{
			name: "Contacts",
			call: func(ctx context.Context, c *lists.Client) (*http.Response, error) {
				return c.Contacts(ctx, "226468", query.New().SetList("property", "email"))
			},
			wantMeth: http.MethodGet,
			wantURL:  "https://api.hubapi.com/contacts/v1/lists/226468/contacts/all?property%5B%5D=email",
		},
		{
			name: "Create static",
			call: func(ctx context.Context, c *lists.Client) (*http.Response, error) {
				return c.Create(ctx, lists.CreateRequest{Name: "Newsletter"})
			},
			wantMeth: http.MethodPost,
			wantURL:  "https://api.hubapi.com/contacts/v1/lists?",
			wantBody: `{"name":"Newsletter","dynamic":false}`,
		},
		{
			name: "AddContacts",
			call: func(ctx context.Context, c *lists.Client) (*http.Response, error) {
				return c.AddContacts(ctx, "5", []int64{3, 4}, []string{"a@example.com"})
			},
			wantMeth: http.MethodPost,
			wantURL:  "https://api.hubapi.com/contacts/v1/lists/5/add?",
			wantBody: `{"vids":[3,4],"emails":["a@example.com"]}`,
		},
		{
			name: "RemoveContacts",
			call: func(ctx context.Context, c *lists.Client) (*http.Response, error) {
				return c.RemoveContacts(ctx, "5", []int64{3})
			},
			wantMeth: http.MethodPost,
			wantURL:  "https://api.hubapi.com/contacts/v1/lists/5/remove?",
			wantBody: `{"vids":[3]}`,
		},
		{
			name: "Delete",
			call: func(ctx context.Context, c *lists.Client) (*http.Response, error) {
				return c.Delete(ctx, "5")
			},
			wantMeth: http.MethodDelete,
			wantURL:  "https://api.hubapi.com/contacts/v1/lists/5?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newClient()
			if _, err := tt.call(context.Background(), c); err != nil {
				t.Fatalf("call error = %v", err)
			}

			call, _ := tr.LastCall()
			if call.Method != tt.wantMeth {
				t.Errorf("Method = %s, want %s", call.Method, tt.wantMeth)
			}
			if call.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", call.URL, tt.wantURL)
			}
			if tt.wantBody == "" {
				return
			}
			body, err := json.Marshal(call.Options.JSON)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %s, want %s", body, tt.wantBody)
			}
		})
	}
}
