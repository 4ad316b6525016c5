package config

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the navtree tool configuration, read from navtree.yml or
// navtree.toml. Relative paths are resolved against Dir.
type Config struct {
	// Manifest is the sidebar manifest path. Empty means search upwards
	// from the working directory.
	Manifest string `yaml:"manifest,omitempty" toml:"manifest,omitempty" jsonschema:"description=Path to the sidebar manifest (sidebars.yml/.toml/.json)"`

	// ContentDir is the docs directory used for reference checks.
	ContentDir string `yaml:"content_dir,omitempty" toml:"content_dir,omitempty" jsonschema:"description=Directory holding the markdown documents referenced by the sidebar"`

	// DefaultCollection is the collection used when a command names none.
	DefaultCollection string `yaml:"default_collection,omitempty" toml:"default_collection,omitempty" jsonschema:"description=Collection used when none is given (default: docs)"`

	// Exclude holds .dockerignore-style patterns skipped while scanning ContentDir.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty" jsonschema:"description=Patterns excluded from the content scan"`

	// Strict enables JSON Schema validation of manifests before loading.
	Strict bool `yaml:"strict,omitempty" toml:"strict,omitempty" jsonschema:"description=Validate manifests against the JSON schema before loading"`

	// Dir is the directory of the file this config was loaded from.
	Dir string `yaml:"-" toml:"-" jsonschema:"-"`

	// Extensions captures all other top-level keys, e.g. "logging".
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// knownKeys are the top-level keys owned by Config itself.
var knownKeys = map[string]bool{
	"manifest":           true,
	"content_dir":        true,
	"default_collection": true,
	"exclude":            true,
	"strict":             true,
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.DefaultCollection == "" {
		c.DefaultCollection = "docs"
	}
}

// UnmarshalExtension decodes the named top-level section into target,
// which must be a pointer. A missing section leaves target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
