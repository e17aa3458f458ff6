// Package hubspottest provides testing utilities for applications using the hubspot-go SDK.
//
// # Recording Transport
//
// Use Transport to capture requests without any network I/O:
//
//	tr := hubspottest.NewTransport()
//	tr.SetResponse(hubspot.MethodGet, "/owners/v2/owners", 200, `[{"ownerId":1}]`)
//
//	client, _ := hubspot.New("token", tr)
//	resp, _ := client.Owners().All(ctx, nil)
//
//	call, _ := tr.LastCall()
//	// call.Method, call.URL, call.Header("Authorization")
//
// # Test Client
//
// Use NewTestClient for a client wired to a recording transport:
//
//	func TestMyFeature(t *testing.T) {
//	    client, tr := hubspottest.NewTestClient(t)
//	    // ...
//	    if tr.CallCount() != 1 {
//	        t.Error("expected 1 request")
//	    }
//	}
//
// # Mock Server
//
// Use MockServer to exercise a real transport against a local HTTP server:
//
//	server := hubspottest.NewMockServer()
//	defer server.Close()
//
//	client, _ := hubspot.New("token", transport.NewHTTP(), hubspot.WithBaseURL(server.URL))
package hubspottest
