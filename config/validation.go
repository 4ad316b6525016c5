package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/grovetools/navtree/errors"
)

var collectionNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !collectionNameRegex.MatchString(c.DefaultCollection) {
		return errors.New(errors.ErrCodeConfigValidation, "default_collection must start with a letter and contain only letters, numbers, underscores, and hyphens").
			WithDetail("default_collection", c.DefaultCollection)
	}

	if c.Manifest != "" {
		ext := strings.ToLower(filepath.Ext(c.Manifest))
		switch ext {
		case ".yml", ".yaml", ".toml", ".json":
		default:
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("manifest must be a .yml, .yaml, .toml or .json file: %s", c.Manifest)).
				WithDetail("manifest", c.Manifest)
		}
		if err := validatePath("manifest", c.Manifest); err != nil {
			return err
		}
	}

	if err := validatePath("content_dir", c.ContentDir); err != nil {
		return err
	}

	for _, pattern := range c.Exclude {
		if strings.TrimSpace(pattern) == "" {
			return errors.New(errors.ErrCodeConfigValidation, "exclude patterns cannot be empty")
		}
	}

	return nil
}

// validatePath validates that a path is appropriate for the current OS
func validatePath(fieldName, path string) error {
	if path == "" {
		return nil
	}

	if runtime.GOOS != "windows" && filepath.IsAbs(path) && strings.Contains(path, "\\") {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("%s contains Windows-style path on Unix system", fieldName)).
			WithDetail("path", path)
	}

	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("%s contains Unix-style path on Windows system", fieldName)).
			WithDetail("path", path)
	}

	return nil
}
