package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-realtime/internal/catalog"
	"github.com/KirkDiggler/rpg-realtime/internal/errors"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the catalog JSON schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaOut == "" {
			return catalog.WriteSchema(cmd.OutOrStdout())
		}

		f, err := os.Create(schemaOut)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", schemaOut)
		}
		defer func() { _ = f.Close() }()

		return catalog.WriteSchema(f)
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOut, "out", "", "output file, stdout when empty")
}
