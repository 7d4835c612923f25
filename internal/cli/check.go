package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/schema-docs-server/internal/config"
	"github.com/fairyhunter13/schema-docs-server/internal/schema"
)

func checkCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "check [path]",
		Short: "Inspect and validate a compiled schema document (defaults to SCHEMA_PATH)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Load().SchemaPath
			if len(args) == 1 {
				path = args[0]
			}
			b, err := schema.NewFile(path).Read()
			if err != nil {
				return err
			}
			s, err := schema.Inspect(b)
			if err != nil {
				return err
			}
			if err := schema.Validate(cmd.Context(), b); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			fmt.Fprintf(out, "OK %s\n", path)
			fmt.Fprintf(out, "  openapi:    %s\n", s.OpenAPI)
			fmt.Fprintf(out, "  title:      %s\n", s.Title)
			fmt.Fprintf(out, "  version:    %s\n", s.Version)
			fmt.Fprintf(out, "  paths:      %d\n", s.Paths)
			fmt.Fprintf(out, "  operations: %d\n", s.Operations)
			return nil
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return c
}
