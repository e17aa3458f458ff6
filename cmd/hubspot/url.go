package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
	"github.com/jdziat/hubspot-go/pkg/query"
)

func newURLCmd(flags *globalFlags) *cobra.Command {
	var queryPairs []string

	cmd := &cobra.Command{
		Use:   "url <endpoint>",
		Short: "Print the request URL for an endpoint",
		Long: `Print the full request URL for an endpoint and query parameters
without sending anything. No access token is required.

Example:
  hubspot url /contacts/v1/lists/all/contacts/all -q count=10 -q property=firstname -q property=lastname`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			enc, err := query.ParseEncoding(cfg.QueryEncoding)
			if err != nil {
				return err
			}
			params, err := parseQuery(queryPairs)
			if err != nil {
				return err
			}

			d := pkghttp.NewDispatcher(pkghttp.Settings{
				BaseURL:        cfg.BaseURL,
				Encoding:       enc,
				OmitEmptyQuery: cfg.OmitEmptyQuery,
			}, nil)

			fmt.Fprintln(cmd.OutOrStdout(), d.URL(args[0], params))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&queryPairs, "query", "q", nil, "Query parameter as key=value (repeatable)")

	return cmd
}
