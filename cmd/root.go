// Package cmd implements the navtree command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/cli"
)

// NewRootCmd builds the navtree command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"navtree",
		"Load, check and render documentation sidebar manifests",
	)
	rootCmd.Long = `navtree reads a sidebar manifest (sidebars.yml, sidebars.toml or
sidebars.json) and turns each collection into a navigation tree of
documents, categories and external links. Invalid manifests are reported
with the path of the offending node.`
	rootCmd.Example = `  # Check the nearest sidebars.yml
  navtree validate

  # Show the docs sidebar as an outline
  navtree print --collection docs

  # Find references to documents that do not exist
  navtree check --content docs/`

	cli.SetVersionTemplate(rootCmd)

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newIDsCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("navtree"))

	cli.SetStyledHelp(rootCmd)
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	cli.InitColor()

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		return 1
	}
	return 0
}
