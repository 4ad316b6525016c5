package errors

import (
	"fmt"
)

// ManifestNotFound creates a manifest not found error
func ManifestNotFound(path string) *NavError {
	return New(ErrCodeManifestNotFound, fmt.Sprintf("sidebar manifest not found: %s", path)).
		WithDetail("path", path)
}

// ManifestInvalid creates an error for a manifest that could not be decoded
func ManifestInvalid(path string, err error) *NavError {
	return Wrap(err, ErrCodeManifestInvalid, "failed to parse sidebar manifest").
		WithDetail("path", path)
}

// CollectionNotFound creates an error for a missing sidebar collection
func CollectionNotFound(name string) *NavError {
	return New(ErrCodeCollectionNotFound, fmt.Sprintf("collection '%s' not found in manifest", name)).
		WithDetail("collection", name)
}

// DocNotFound creates an error for a document reference with no backing document
func DocNotFound(id, path string) *NavError {
	return New(ErrCodeDocNotFound, fmt.Sprintf("document '%s' referenced at %s does not exist", id, path)).
		WithDetail("id", id).
		WithDetail("path", path)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *NavError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *NavError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
