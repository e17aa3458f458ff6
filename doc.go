// Package hubspot provides a thin Go client for the HubSpot CRM API.
//
// The client builds request URLs, adds the Authorization and User-Agent
// headers, and hands each request to a Transport. It does not retry, rate
// limit or decode responses; callers receive the raw status, headers and body.
//
// # Quick Start
//
//	client, err := hubspot.New(
//	    os.Getenv("HUBSPOT_ACCESS_TOKEN"),
//	    transport.NewHTTP(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	params := hubspot.NewParams().
//	    SetInt("count", 10).
//	    SetList("property", "firstname", "lastname")
//
//	resp, err := client.Contacts().All(ctx, params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.StatusCode, string(resp.Body))
//
// # Query Encoding
//
// Query components are percent-encoded per RFC 3986 by default (space as
// %20). Older integrations that expect form encoding (space as '+') can use
// WithQueryEncoding(EncodingLegacyForm). Sequence values are expanded as
// repeated key[]=value pairs.
//
// # Transports
//
// Package transport provides a net/http transport with request hooks, a resty
// adapter, and Prometheus and OpenTelemetry decorators:
//
//	m, _ := transport.NewMetrics(prometheus.DefaultRegisterer)
//	t := transport.Trace(transport.Instrument(transport.NewHTTP(), m), nil)
//	client, _ := hubspot.New(token, t)
//
// # OAuth
//
// OAuth access tokens are sent as Bearer tokens like private app tokens. To
// refresh them, supply an oauth2.TokenSource:
//
//	client, _ := hubspot.New("", t, hubspot.WithTokenSource(ts))
//
// # Thread Safety
//
// Client and the resource clients are safe for concurrent use. Params values
// are not; build one per request.
package hubspot
