package hubspottest

import (
	hubspot "github.com/jdziat/hubspot-go"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Helper()
}

// TestToken is the access token used by NewTestClient.
const TestToken = "pat-na1-test-token"

// NewTestClient creates a client that sends every request to a recording
// Transport. Options are applied after the test token.
func NewTestClient(t TestingT, opts ...hubspot.ConfigOption) (*hubspot.Client, *Transport) {
	t.Helper()

	tr := NewTransport()

	client, err := hubspot.New(TestToken, tr, opts...)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	return client, tr
}
