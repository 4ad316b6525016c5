package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/config"
	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/logging"
	"github.com/grovetools/navtree/manifest"
)

// CommandOptions holds common options for navtree commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard navtree flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to navtree.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the navtree logger for a command. Without --verbose or
// --json this is the shared component logger. Otherwise a logger is built
// for this command writing to its stderr: --verbose logs at debug level
// even on an interactive terminal, --json switches to the JSON preset.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	opts := GetOptions(cmd)
	if !opts.Verbose && !opts.JSONOutput {
		return logging.NewLogger("navtree")
	}

	logCfg := logging.LoadConfig()
	if opts.JSONOutput {
		logCfg.Format.Preset = "json"
	}
	if opts.Verbose {
		logCfg.Level = "debug"
		logCfg.Format.StructuredToStderr = "always"
	}

	entry := logging.NewLoggerWithConfig("navtree", logCfg, cmd.ErrOrStderr())
	if opts.Verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}
	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// InitConfig loads the configuration named by configFile, or the nearest
// one above the working directory. A missing config file is not an error
// unless configFile was given explicitly; defaults rooted at the working
// directory are returned instead.
func InitConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
	}

	cfg, err := config.LoadFrom(cwd)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			cfg = config.Default()
			cfg.Dir = cwd
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ResolveManifest picks the manifest path: an explicit argument first,
// then the configured manifest, then a search upwards from the working
// directory.
func ResolveManifest(cfg *config.Config, arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if cfg != nil && cfg.Manifest != "" {
		return cfg.ResolvePath(cfg.Manifest), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
	}
	return manifest.FindManifest(cwd)
}
