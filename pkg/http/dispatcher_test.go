package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"

	"github.com/jdziat/hubspot-go/pkg/query"
)

type recordedCall struct {
	method Method
	url    string
	opts   *Options
}

// recordingTransport records every call and returns a canned response.
type recordingTransport struct {
	mu    sync.Mutex
	calls []recordedCall
	resp  *Response
	err   error
}

func (r *recordingTransport) transport() Transport {
	return TransportFunc(func(ctx context.Context, method Method, url string, opts *Options) (*Response, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, recordedCall{method: method, url: url, opts: opts})
		return r.resp, r.err
	})
}

func (r *recordingTransport) last(t *testing.T) recordedCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		t.Fatal("transport was not called")
	}
	return r.calls[len(r.calls)-1]
}

func TestDispatcherURL(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		endpoint string
		params   *query.Params
		want     string
	}{
		{
			name:     "list query",
			endpoint: "/contacts/v1/lists",
			params:   query.New().Set("count", "10").SetList("property", "firstname", "lastname"),
			want:     "https://api.hubapi.com/contacts/v1/lists?count=10&property%5B%5D=firstname&property%5B%5D=lastname",
		},
		{
			name:     "empty query keeps trailing question mark",
			endpoint: "/deals/v1/deal",
			params:   query.New(),
			want:     "https://api.hubapi.com/deals/v1/deal?",
		},
		{
			name:     "nil query keeps trailing question mark",
			endpoint: "/deals/v1/deal",
			want:     "https://api.hubapi.com/deals/v1/deal?",
		},
		{
			name:     "omit empty query",
			settings: Settings{OmitEmptyQuery: true},
			endpoint: "/deals/v1/deal",
			want:     "https://api.hubapi.com/deals/v1/deal",
		},
		{
			name:     "omit empty query with params",
			settings: Settings{OmitEmptyQuery: true},
			endpoint: "/deals/v1/deal/paged",
			params:   query.New().SetInt("limit", 5),
			want:     "https://api.hubapi.com/deals/v1/deal/paged?limit=5",
		},
		{
			name:     "legacy form encoding",
			settings: Settings{Encoding: query.EncodingLegacyForm},
			endpoint: "/contacts/v1/search/query",
			params:   query.New().Set("q", "jane doe"),
			want:     "https://api.hubapi.com/contacts/v1/search/query?q=jane+doe",
		},
		{
			name:     "rfc3986 encoding",
			endpoint: "/contacts/v1/search/query",
			params:   query.New().Set("q", "jane doe"),
			want:     "https://api.hubapi.com/contacts/v1/search/query?q=jane%20doe",
		},
		{
			name:     "custom base url",
			settings: Settings{BaseURL: "http://localhost:8080"},
			endpoint: "/owners/v2/owners",
			want:     "http://localhost:8080/owners/v2/owners?",
		},
		{
			name:     "endpoint is not validated",
			endpoint: "contacts",
			want:     "https://api.hubapi.comcontacts?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(tt.settings, nil)
			if got := d.URL(tt.endpoint, tt.params); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDispatcherSendDecoratesHeaders(t *testing.T) {
	rec := &recordingTransport{resp: &Response{StatusCode: 200}}
	d := NewDispatcher(Settings{Token: "secret-token"}, rec.transport())

	_, err := d.Send(context.Background(), MethodGet, "/contacts/v1/contact", nil, nil)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	call := rec.last(t)
	if call.method != MethodGet {
		t.Errorf("method = %v, want GET", call.method)
	}
	if call.url != "https://api.hubapi.com/contacts/v1/contact?" {
		t.Errorf("url = %q", call.url)
	}
	if diff := cmp.Diff([]string{"Bearer secret-token"}, call.opts.Headers.Values("Authorization")); diff != "" {
		t.Errorf("Authorization mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{UserAgent}, call.opts.Headers.Values("User-Agent")); diff != "" {
		t.Errorf("User-Agent mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatcherSendOverwritesCallerHeaders(t *testing.T) {
	rec := &recordingTransport{resp: &Response{StatusCode: 200}}
	d := NewDispatcher(Settings{Token: "configured-token"}, rec.transport())

	opts := &Options{Headers: http.Header{
		"Authorization": {"stale", "second"},
		"authorization": {"lowercase"},
		"User-Agent":    {"curl/8.0"},
		"USER-AGENT":    {"shouty"},
		"X-Custom":      {"kept"},
	}}

	if _, err := d.Send(context.Background(), MethodGet, "/contacts/v1/contact", opts, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	got := rec.last(t).opts.Headers
	want := http.Header{
		"Authorization": {"Bearer configured-token"},
		"User-Agent":    {UserAgent},
		"X-Custom":      {"kept"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatcherSendDoesNotMutateCallerOptions(t *testing.T) {
	rec := &recordingTransport{resp: &Response{StatusCode: 200}}
	d := NewDispatcher(Settings{Token: "tok"}, rec.transport())

	body := strings.NewReader(`{"a":1}`)
	opts := &Options{
		Headers: http.Header{"Authorization": {"stale"}},
		Body:    body,
	}

	if _, err := d.Send(context.Background(), MethodPost, "/deals/v1/deal", opts, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if got := opts.Headers.Get("Authorization"); got != "stale" {
		t.Errorf("caller Authorization = %q, want stale", got)
	}
	if opts.Headers.Get("User-Agent") != "" {
		t.Error("caller options gained a User-Agent header")
	}
	if rec.last(t).opts.Body != body {
		t.Error("Body was not passed through")
	}
}

func TestDispatcherSendPassesOptionsThrough(t *testing.T) {
	rec := &recordingTransport{resp: &Response{StatusCode: 200}}
	d := NewDispatcher(Settings{Token: "tok"}, rec.transport())

	payload := map[string]string{"name": "Acme"}
	opts := &Options{JSON: payload, Timeout: 42}

	if _, err := d.Send(context.Background(), MethodPut, "/companies/v2/companies/1", opts, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	call := rec.last(t)
	if diff := cmp.Diff(payload, call.opts.JSON); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
	if call.opts.Timeout != 42 {
		t.Errorf("Timeout = %v, want 42", call.opts.Timeout)
	}
}

func TestDispatcherSendRoutesMethods(t *testing.T) {
	for _, m := range []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete} {
		t.Run(string(m), func(t *testing.T) {
			rec := &recordingTransport{resp: &Response{StatusCode: 204}}
			d := NewDispatcher(Settings{Token: "tok"}, rec.transport())

			if _, err := d.Send(context.Background(), m, "/x", nil, nil); err != nil {
				t.Fatalf("Send failed: %v", err)
			}
			if got := rec.last(t).method; got != m {
				t.Errorf("method = %v, want %v", got, m)
			}
		})
	}
}

func TestDispatcherSendReturnsTransportResultUnchanged(t *testing.T) {
	resp := &Response{StatusCode: 500, Body: []byte("boom")}
	transportErr := errors.New("connection reset")
	rec := &recordingTransport{resp: resp, err: transportErr}
	d := NewDispatcher(Settings{Token: "tok"}, rec.transport())

	got, err := d.Send(context.Background(), MethodGet, "/x", nil, nil)
	if err != transportErr {
		t.Errorf("err = %v, want the transport error itself", err)
	}
	if got != resp {
		t.Error("response was not returned unchanged")
	}
}

func TestDispatcherSendUnsupportedMethod(t *testing.T) {
	rec := &recordingTransport{}
	d := NewDispatcher(Settings{Token: "tok"}, rec.transport())

	_, err := d.Send(context.Background(), Method("TRACE"), "/x", nil, nil)
	if !errors.Is(err, ErrUnsupportedMethod) {
		t.Errorf("err = %v, want ErrUnsupportedMethod", err)
	}
	if len(rec.calls) != 0 {
		t.Error("transport should not be called")
	}
}

func TestDispatcherOAuthFlagKeepsBearerHeader(t *testing.T) {
	rec := &recordingTransport{resp: &Response{StatusCode: 200}}
	d := NewDispatcher(Settings{Token: "access-token", OAuth: true}, rec.transport())

	if _, err := d.Send(context.Background(), MethodGet, "/x", nil, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got := rec.last(t).opts.Headers.Get("Authorization"); got != "Bearer access-token" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestDispatcherOAuthTokenSource(t *testing.T) {
	rec := &recordingTransport{resp: &Response{StatusCode: 200}}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source"})

	d := NewDispatcher(Settings{Token: "ignored", OAuth: true, TokenSource: ts}, rec.transport())
	if _, err := d.Send(context.Background(), MethodGet, "/x", nil, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got := rec.last(t).opts.Headers.Get("Authorization"); got != "Bearer from-source" {
		t.Errorf("Authorization = %q, want Bearer from-source", got)
	}

	// Without the OAuth flag the token source is not consulted.
	d = NewDispatcher(Settings{Token: "static", TokenSource: ts}, rec.transport())
	if _, err := d.Send(context.Background(), MethodGet, "/x", nil, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got := rec.last(t).opts.Headers.Get("Authorization"); got != "Bearer static" {
		t.Errorf("Authorization = %q, want Bearer static", got)
	}
}

type failingTokenSource struct{ err error }

func (f failingTokenSource) Token() (*oauth2.Token, error) { return nil, f.err }

func TestDispatcherOAuthTokenSourceError(t *testing.T) {
	rec := &recordingTransport{}
	srcErr := errors.New("refresh failed")
	d := NewDispatcher(Settings{OAuth: true, TokenSource: failingTokenSource{err: srcErr}}, rec.transport())

	_, err := d.Send(context.Background(), MethodGet, "/x", nil, nil)
	if !errors.Is(err, srcErr) {
		t.Errorf("err = %v, want wrapped token source error", err)
	}
	if len(rec.calls) != 0 {
		t.Error("transport should not be called when the token is unavailable")
	}
}

func TestDispatcherDefaults(t *testing.T) {
	s := NewDispatcher(Settings{}, nil).Settings()
	if s.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", s.BaseURL, DefaultBaseURL)
	}
	if s.Encoding != query.EncodingRFC3986 {
		t.Errorf("Encoding = %q, want rfc3986", s.Encoding)
	}
}

func TestDispatcherConcurrentSend(t *testing.T) {
	rec := &recordingTransport{resp: &Response{StatusCode: 200}}
	d := NewDispatcher(Settings{Token: "tok"}, rec.transport())

	shared := &Options{Headers: http.Header{"X-Trace": {"1"}}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Send(context.Background(), MethodGet, "/x", shared, query.New().Set("a", "b"))
		}()
	}
	wg.Wait()

	if len(rec.calls) != 50 {
		t.Fatalf("calls = %d, want 50", len(rec.calls))
	}
	if len(shared.Headers) != 1 {
		t.Errorf("shared options were mutated: %v", shared.Headers)
	}
}

func TestUserAgentConstant(t *testing.T) {
	if !strings.HasPrefix(UserAgent, "hubspot-go/"+Version) {
		t.Errorf("UserAgent = %q", UserAgent)
	}
}
