// Package cli wires the command line surface of the server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/schema-docs-server/internal/buildinfo"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var so serveOptions

	cmd := &cobra.Command{
		Use:          "schema-docs-server",
		Short:        "Serve interactive API docs for a compiled schema document",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, so)
		},
	}
	so.bind(cmd)

	cmd.AddCommand(serveCmd(), checkCmd(), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
