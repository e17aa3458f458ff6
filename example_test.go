package hubspot_test

import (
	"context"
	"fmt"

	hubspot "github.com/jdziat/hubspot-go"
	"github.com/jdziat/hubspot-go/hubspottest"
)

// This example builds a request URL with a list-valued parameter.
func ExampleClient_URL() {
	client, err := hubspot.New("pat-na1-xxxx", hubspottest.NewTransport())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	params := hubspot.NewParams().
		SetInt("count", 10).
		SetList("property", "firstname", "lastname")

	fmt.Println(client.URL("/contacts/v1/lists/all/contacts/all", params))
	// Output: https://api.hubapi.com/contacts/v1/lists/all/contacts/all?count=10&property%5B%5D=firstname&property%5B%5D=lastname
}

// This example sends a request through a recording transport and inspects
// the headers the client added.
func ExampleClient_Send() {
	tr := hubspottest.NewTransport()
	client, _ := hubspot.New("pat-na1-xxxx", tr)

	resp, err := client.Send(context.Background(), hubspot.MethodGet, "/deals/v1/deal/42", nil, nil)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	call, _ := tr.LastCall()
	fmt.Println(resp.StatusCode)
	fmt.Println(call.URL)
	fmt.Println(call.Header("Authorization"))
	// Output:
	// 200
	// https://api.hubapi.com/deals/v1/deal/42?
	// Bearer pat-na1-xxxx
}

// This example switches to legacy form encoding.
func ExampleWithQueryEncoding() {
	client, _ := hubspot.New("pat-na1-xxxx", hubspottest.NewTransport(),
		hubspot.WithQueryEncoding(hubspot.EncodingLegacyForm),
	)

	fmt.Println(client.URL("/contacts/v1/search/query", hubspot.NewParams().Set("q", "jane doe")))
	// Output: https://api.hubapi.com/contacts/v1/search/query?q=jane+doe
}
