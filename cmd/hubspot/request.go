package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	hubspot "github.com/jdziat/hubspot-go"
	"github.com/jdziat/hubspot-go/pkg/logging"
	"github.com/jdziat/hubspot-go/pkg/transport"
)

func newRequestCmd(flags *globalFlags, method hubspot.Method) *cobra.Command {
	var (
		queryPairs []string
		data       string
		headers    []string
	)

	name := strings.ToLower(method.String())

	cmd := &cobra.Command{
		Use:   name + " <endpoint>",
		Short: fmt.Sprintf("Send a %s request", method),
		Long: fmt.Sprintf(`Send an authenticated %s request and print the response body.

The exit status is non-zero when the response status is not 2xx.

Example:
  hubspot %s /contacts/v1/contact/vid/51/profile -q property=email`, method, name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			clientCfg, err := cfg.ClientConfig()
			if err != nil {
				return err
			}
			params, err := parseQuery(queryPairs)
			if err != nil {
				return err
			}
			opts, err := requestOptions(data, headers)
			if err != nil {
				return err
			}
			opts.Timeout = cfg.Timeout

			zl := newLogger(cmd.ErrOrStderr(), flags.verbose)
			defer zl.Sync()
			logger := logging.NewZapAdapter(zl)

			t := transport.NewHTTP(
				transport.WithLogger(logger),
				transport.WithHooks(transport.LoggingHook(logger)),
			)
			defer t.Close()
			client, err := hubspot.NewWithConfig(clientCfg, t)
			if err != nil {
				return err
			}

			resp, err := client.Send(cmd.Context(), method, args[0], opts, params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(resp.Body) > 0 {
				out.Write(prettyJSON(resp.Body))
				fmt.Fprintln(out)
			}
			if !resp.IsSuccess() {
				return fmt.Errorf("request failed with status %d", resp.StatusCode)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&queryPairs, "query", "q", nil, "Query parameter as key=value (repeatable)")
	f.StringArrayVarP(&headers, "header", "H", nil, "Extra request header as 'Name: value' (repeatable)")
	if method != hubspot.MethodGet && method != hubspot.MethodDelete {
		f.StringVarP(&data, "data", "d", "", "JSON request body")
	}

	return cmd
}

// requestOptions builds transport options from the --data and --header flags.
func requestOptions(data string, headers []string) (*hubspot.Options, error) {
	opts := &hubspot.Options{}

	if data != "" {
		if !json.Valid([]byte(data)) {
			return nil, fmt.Errorf("--data is not valid JSON")
		}
		opts.JSON = json.RawMessage(data)
	}

	for _, h := range headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q: expected 'Name: value'", h)
		}
		if opts.Headers == nil {
			opts.Headers = http.Header{}
		}
		opts.Headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	return opts, nil
}

// prettyJSON indents body when it is JSON and returns it unchanged otherwise.
func prettyJSON(body []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return body
	}
	return buf.Bytes()
}
