package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/cli"
	"github.com/grovetools/navtree/logging"
	"github.com/grovetools/navtree/nav"
)

type collectionSummary struct {
	Name       string   `json:"name"`
	Docs       int      `json:"docs"`
	Categories int      `json:"categories"`
	Links      int      `json:"links"`
	Warnings   []string `json:"warnings,omitempty"`
}

type validateResult struct {
	Path        string              `json:"path"`
	Valid       bool                `json:"valid"`
	Collections []collectionSummary `json:"collections"`
}

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Validate a sidebar manifest",
		Long: `Load every collection of a sidebar manifest and report the first
invalid node. Empty categories and documents referenced more than once are
reported as warnings and do not fail validation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args, strict)
			if err != nil {
				return err
			}

			result := validateResult{Path: s.path, Valid: true}
			for _, tree := range s.manifest.Collections {
				counts := tree.Count()
				summary := collectionSummary{
					Name:       tree.Collection,
					Docs:       counts[nav.KindDoc],
					Categories: counts[nav.KindCategory],
					Links:      counts[nav.KindLink],
				}
				for _, w := range nav.Lint(tree) {
					summary.Warnings = append(summary.Warnings, w.String())
				}
				result.Collections = append(result.Collections, summary)
			}

			if cli.GetOptions(cmd).JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			for _, c := range result.Collections {
				for _, w := range c.Warnings {
					pretty.Warn(w)
				}
			}
			pretty.Success(fmt.Sprintf("%s is valid", filepath.Base(s.path)))
			for _, c := range result.Collections {
				pretty.Field(c.Name, fmt.Sprintf("%d docs, %d categories, %d links", c.Docs, c.Categories, c.Links))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Also validate against the manifest JSON schema")
	return cmd
}
