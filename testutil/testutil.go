// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleManifestYAML is a small but complete manifest exercising every
// node type, nesting and an external link.
const SampleManifestYAML = `docs:
  - welcome
  - type: category
    label: About Mina
    items:
      - about-mina/index
      - about-mina/consensus
      - type: link
        label: Whitepaper
        href: https://minaprotocol.com/wp-content/uploads/economicsWhitepaper.pdf
  - type: category
    label: zkApp Developers
    items:
      - zkapps/index
      - type: category
        label: Tutorials
        items:
          - zkapps/tutorials/anonymous-message-board
      - zkapps/snarkyjs-reference
  - glossary
`

// SampleManifestTOML is SampleManifestYAML in TOML.
const SampleManifestTOML = `docs = [
  "welcome",
  { type = "category", label = "About Mina", items = ["about-mina/index", "about-mina/consensus", { type = "link", label = "Whitepaper", href = "https://minaprotocol.com/wp-content/uploads/economicsWhitepaper.pdf" }] },
  { type = "category", label = "zkApp Developers", items = ["zkapps/index", { type = "category", label = "Tutorials", items = ["zkapps/tutorials/anonymous-message-board"] }, "zkapps/snarkyjs-reference"] },
  "glossary",
]
`

// SampleManifestJSON is SampleManifestYAML in JSON.
const SampleManifestJSON = `{
  "docs": [
    "welcome",
    {
      "type": "category",
      "label": "About Mina",
      "items": [
        "about-mina/index",
        "about-mina/consensus",
        {"type": "link", "label": "Whitepaper", "href": "https://minaprotocol.com/wp-content/uploads/economicsWhitepaper.pdf"}
      ]
    },
    {
      "type": "category",
      "label": "zkApp Developers",
      "items": [
        "zkapps/index",
        {"type": "category", "label": "Tutorials", "items": ["zkapps/tutorials/anonymous-message-board"]},
        "zkapps/snarkyjs-reference"
      ]
    },
    "glossary"
  ]
}
`

// SampleDocIDs are the document ids of the sample manifest in order.
var SampleDocIDs = []string{
	"welcome",
	"about-mina/index",
	"about-mina/consensus",
	"zkapps/index",
	"zkapps/tutorials/anonymous-message-board",
	"zkapps/snarkyjs-reference",
	"glossary",
}

// WriteFile writes content to dir/rel, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateDocs writes a markdown file for each document id under dir.
// An id may carry an extension ("intro.mdx"); ".md" is used otherwise.
func CreateDocs(t *testing.T, dir string, ids ...string) {
	t.Helper()

	for _, id := range ids {
		rel := id
		if !strings.HasSuffix(rel, ".md") && !strings.HasSuffix(rel, ".mdx") {
			rel += ".md"
		}
		title := filepath.Base(id)
		WriteFile(t, dir, rel, "# "+title+"\n")
	}
}

// Chdir changes the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}
