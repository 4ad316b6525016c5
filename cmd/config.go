package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/navtree/cli"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective navtree configuration",
		Long: `Print the configuration navtree uses in the current directory: the
nearest navtree.yml or navtree.toml (or the XDG config file) with defaults
applied, and the manifest path it resolves to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			cfg, err := cli.InitConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			manifestPath, findErr := cli.ResolveManifest(cfg, "")

			out := cmd.OutOrStdout()
			if opts.JSONOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"dir":                cfg.Dir,
					"manifest":           manifestPath,
					"content_dir":        cfg.ResolvePath(cfg.ContentDir),
					"default_collection": cfg.DefaultCollection,
					"exclude":            cfg.Exclude,
					"strict":             cfg.Strict,
				})
			}

			fmt.Fprintf(out, "# Directory: %s\n", cfg.Dir)
			if findErr == nil {
				fmt.Fprintf(out, "# Manifest: %s\n", manifestPath)
			} else {
				fmt.Fprintf(out, "# Manifest: not found\n")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
