package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/config"
	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/schema"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [manifest|config]",
		Short:     "Print a JSON schema",
		Long:      "Print the JSON schema for sidebar manifests (default) or for navtree.yml.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"manifest", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "manifest"
			if len(args) > 0 {
				kind = args[0]
			}

			var data []byte
			switch kind {
			case "manifest":
				data = schema.Source()
			case "config":
				var err error
				data, err = config.GenerateSchema()
				if err != nil {
					return errors.Wrap(err, errors.ErrCodeInternal, "failed to generate config schema")
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
