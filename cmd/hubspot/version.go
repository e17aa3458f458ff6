package main

import (
	"fmt"

	"github.com/spf13/cobra"

	hubspot "github.com/jdziat/hubspot-go"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hubspot version %s\n", hubspot.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "User-Agent: %s\n", hubspot.UserAgent)
		},
	}
}
