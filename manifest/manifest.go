// Package manifest finds, decodes and loads sidebar manifest files.
//
// A manifest maps collection names to sidebar lists:
//
//	docs:
//	  - welcome
//	  - type: category
//	    label: Guides
//	    items: [guides/install, guides/usage]
//
// YAML, TOML and JSON encodings are accepted. Document ids must be strings:
// quote ids that look like numbers or booleans ("404", "true") in YAML.
//
// ${VAR} and ${VAR:-default} are expanded inside category and link fields
// (label, href) after decoding. Document ids are taken literally.
package manifest

import (
	"sort"

	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/nav"
)

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Manifest holds every collection of one manifest file.
type Manifest struct {
	// Path is the file the manifest was read from; empty for LoadBytes.
	Path string
	// Collections are sorted by name.
	Collections []*nav.Tree
}

// Names returns the collection names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Collections))
	for _, c := range m.Collections {
		names = append(names, c.Collection)
	}
	return names
}

// Collection returns the named collection.
func (m *Manifest) Collection(name string) (*nav.Tree, error) {
	i := sort.Search(len(m.Collections), func(i int) bool {
		return m.Collections[i].Collection >= name
	})
	if i < len(m.Collections) && m.Collections[i].Collection == name {
		return m.Collections[i], nil
	}
	return nil, errors.CollectionNotFound(name).WithDetail("available", m.Names())
}

// Default returns the "docs" collection, or the only collection when the
// manifest has exactly one.
func (m *Manifest) Default() (*nav.Tree, error) {
	if len(m.Collections) == 1 {
		return m.Collections[0], nil
	}
	return m.Collection(nav.DefaultCollection)
}

// Encodable returns the manifest in a shape that encodes back to manifest
// form with encoding/json or yaml.v3.
func (m *Manifest) Encodable() map[string][]nav.Node {
	out := make(map[string][]nav.Node, len(m.Collections))
	for _, c := range m.Collections {
		out[c.Collection] = c.Items
	}
	return out
}
