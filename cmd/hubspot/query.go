package main

import (
	"fmt"
	"strings"

	"github.com/jdziat/hubspot-go/pkg/query"
)

// parseQuery converts repeated key=value flags into ordered parameters.
// A key given more than once, or written as key[]=value, becomes a list.
func parseQuery(pairs []string) (*query.Params, error) {
	var order []string
	values := make(map[string][]string)
	lists := make(map[string]bool)

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid query parameter %q: expected key=value", pair)
		}
		if trimmed, isList := strings.CutSuffix(key, "[]"); isList {
			key = trimmed
			lists[key] = true
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = append(values[key], value)
	}

	p := query.New()
	for _, key := range order {
		vals := values[key]
		if lists[key] || len(vals) > 1 {
			p.SetList(key, vals...)
		} else {
			p.Set(key, vals[0])
		}
	}
	return p, nil
}
