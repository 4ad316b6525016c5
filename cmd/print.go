package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/render"
)

func newPrintCmd() *cobra.Command {
	var (
		collection string
		format     string
		contentDir string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "print [manifest]",
		Short: "Render a sidebar collection",
		Long: `Render a sidebar collection as an outline, a markdown list, or in
manifest form as JSON or YAML. With --content, document titles are read
from front matter.`,
		Example: `  navtree print
  navtree print --format markdown --content docs/
  navtree print --all --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid --format")
			}

			s, err := openSession(cmd, args, false)
			if err != nil {
				return err
			}

			if all {
				switch f {
				case render.FormatJSON:
					return render.JSON(cmd.OutOrStdout(), s.manifest.Encodable())
				case render.FormatYAML:
					return render.YAML(cmd.OutOrStdout(), s.manifest.Encodable())
				}
			}

			trees, err := s.trees(collection, all)
			if err != nil {
				return err
			}

			opts := render.Options{Color: isTerminal(cmd)}
			if contentDir != "" {
				idx, err := s.scanContent(contentDir)
				if err != nil {
					return err
				}
				opts.Title = func(id string) string {
					doc, ok := idx.Get(id)
					if !ok {
						return ""
					}
					if doc.SidebarLabel != "" {
						return doc.SidebarLabel
					}
					return doc.Title
				}
			}

			for _, tree := range trees {
				if err := render.Write(cmd.OutOrStdout(), tree, f, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&collection, "collection", "", "Collection to render (default: configured default_collection)")
	cmd.Flags().StringVarP(&format, "format", "f", "outline", "Output format: outline, markdown, json, yaml")
	cmd.Flags().StringVar(&contentDir, "content", "", "Docs directory to read document titles from")
	cmd.Flags().BoolVar(&all, "all", false, "Render every collection")
	return cmd
}
