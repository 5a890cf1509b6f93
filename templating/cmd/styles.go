package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byte4ever/template_dialect/dialect"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the predefined placeholder dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range dialect.StyleNames() {
				di, _ := dialect.Lookup(name)

				if _, err := fmt.Fprintf(
					cmd.OutOrStdout(), "%s\t%s\n", name, di,
				); err != nil {
					return fmt.Errorf("listing styles: %w", err)
				}
			}

			return nil
		},
	}
}
