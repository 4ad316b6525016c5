package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/cli"
	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/logging"
	"github.com/grovetools/navtree/nav"
)

type checkResult struct {
	Documents int      `json:"documents"`
	Missing   []string `json:"missing"`
	Orphans   []string `json:"orphans"`
}

func newCheckCmd() *cobra.Command {
	var (
		contentDir string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "check [manifest]",
		Short: "Check sidebar references against the docs directory",
		Long: `Scan the docs directory and compare it with every collection of the
manifest. References to documents that do not exist fail the check.
Documents that no collection references are listed as orphans, and fail
the check only with --strict.`,
		Example: `  navtree check --content docs/`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args, false)
			if err != nil {
				return err
			}
			idx, err := s.scanContent(contentDir)
			if err != nil {
				return err
			}
			if idx == nil {
				return errors.New(errors.ErrCodeInvalidInput, "no docs directory: pass --content or set content_dir in navtree.yml")
			}

			result := checkResult{Documents: idx.Len(), Missing: []string{}, Orphans: []string{}}
			var missing []*nav.ValidationError
			for _, tree := range s.manifest.Collections {
				for _, m := range idx.Missing(tree) {
					missing = append(missing, m)
					result.Missing = append(result.Missing, m.Error())
				}
			}
			for _, doc := range idx.Orphans(s.manifest.Collections...) {
				result.Orphans = append(result.Orphans, doc.ID)
			}

			if cli.GetOptions(cmd).JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
				for _, m := range result.Missing {
					pretty.Error(m, nil)
				}
				for _, id := range result.Orphans {
					pretty.Warn(fmt.Sprintf("document %q is not in any sidebar", id))
				}
				if len(result.Missing) == 0 {
					pretty.Success(fmt.Sprintf("all references resolve (%d documents)", result.Documents))
				}
			}

			if len(missing) > 0 {
				return errors.New(errors.ErrCodeDocNotFound, fmt.Sprintf("%d sidebar references have no document", len(missing))).
					WithDetail("node", missing[0].Path).
					WithDetail("reason", missing[0].Reason)
			}
			if strict && len(result.Orphans) > 0 {
				return errors.New(errors.ErrCodeContentInvalid, fmt.Sprintf("%d documents are not in any sidebar", len(result.Orphans))).
					WithDetail("orphans", result.Orphans)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "", "Docs directory (default: configured content_dir)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when documents are not referenced by any sidebar")
	return cmd
}
