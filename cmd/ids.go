package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/cli"
)

func newIDsCmd() *cobra.Command {
	var (
		collection string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "ids [manifest]",
		Short: "List referenced document ids in sidebar order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args, false)
			if err != nil {
				return err
			}
			trees, err := s.trees(collection, all)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				out := make(map[string][]string, len(trees))
				for _, tree := range trees {
					ids := tree.DocIDs()
					if ids == nil {
						ids = []string{}
					}
					out[tree.Collection] = ids
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, tree := range trees {
				for _, id := range tree.DocIDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&collection, "collection", "", "Collection to list (default: configured default_collection)")
	cmd.Flags().BoolVar(&all, "all", false, "List ids of every collection")
	return cmd
}
