package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/navtree/manifest"
	"github.com/grovetools/navtree/nav"
	"github.com/grovetools/navtree/testutil"
)

func sampleTree(t *testing.T) *nav.Tree {
	t.Helper()
	m, err := manifest.NewLoader().LoadBytes([]byte(testutil.SampleManifestYAML), manifest.FormatYAML)
	require.NoError(t, err)
	tree, err := m.Default()
	require.NoError(t, err)
	return tree
}

func TestOutline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Outline(&buf, sampleTree(t), Options{}))

	expected := strings.Join([]string{
		"docs",
		"├─ welcome",
		"├─ About Mina/",
		"│  ├─ about-mina/index",
		"│  ├─ about-mina/consensus",
		"│  └─ Whitepaper → https://minaprotocol.com/wp-content/uploads/economicsWhitepaper.pdf",
		"├─ zkApp Developers/",
		"│  ├─ zkapps/index",
		"│  ├─ Tutorials/",
		"│  │  └─ zkapps/tutorials/anonymous-message-board",
		"│  └─ zkapps/snarkyjs-reference",
		"└─ glossary",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestOutlineTitles(t *testing.T) {
	tree := &nav.Tree{Collection: "docs", Items: []nav.Node{&nav.DocRef{ID: "welcome"}, &nav.DocRef{ID: "glossary"}}}
	titles := map[string]string{"welcome": "Welcome to Mina"}

	var buf bytes.Buffer
	require.NoError(t, Outline(&buf, tree, Options{Title: func(id string) string { return titles[id] }}))
	assert.Equal(t, "docs\n├─ Welcome to Mina (welcome)\n└─ glossary\n", buf.String())
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Href: func(id string) string { return "/docs/" + id }}
	require.NoError(t, Markdown(&buf, sampleTree(t), opts))

	expected := strings.Join([]string{
		"- [welcome](/docs/welcome)",
		"- **About Mina**",
		"  - [about-mina/index](/docs/about-mina/index)",
		"  - [about-mina/consensus](/docs/about-mina/consensus)",
		"  - [Whitepaper](https://minaprotocol.com/wp-content/uploads/economicsWhitepaper.pdf)",
		"- **zkApp Developers**",
		"  - [zkapps/index](/docs/zkapps/index)",
		"  - **Tutorials**",
		"    - [zkapps/tutorials/anonymous-message-board](/docs/zkapps/tutorials/anonymous-message-board)",
		"  - [zkapps/snarkyjs-reference](/docs/zkapps/snarkyjs-reference)",
		"- [glossary](/docs/glossary)",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestMarkdownEscaping(t *testing.T) {
	tree := &nav.Tree{Collection: "docs", Items: []nav.Node{
		&nav.DocRef{ID: "guides/setup (old)"},
		&nav.Link{Label: `C:\docs [beta]`, Href: "https://en.wikipedia.org/wiki/Tree_(data structure)"},
	}}

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, tree, Options{}))
	expected := "- [guides/setup (old)](guides/setup%20%28old%29)\n" +
		"- [C:\\\\docs \\[beta\\]](https://en.wikipedia.org/wiki/Tree_%28data%20structure%29)\n"
	assert.Equal(t, expected, buf.String())
}

func TestEncodedTreesLoadBack(t *testing.T) {
	tree := sampleTree(t)
	collapsed := true
	tree.Items = append(tree.Items, &nav.Category{Label: "Empty", Items: []nav.Node{}, Collapsed: &collapsed})

	tests := []struct {
		format Format
		mf     manifest.Format
	}{
		{FormatJSON, manifest.FormatJSON},
		{FormatYAML, manifest.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tree, tt.format, Options{}))

			m, err := manifest.NewLoader().LoadBytes(buf.Bytes(), tt.mf)
			require.NoError(t, err, buf.String())
			got, err := m.Collection("docs")
			require.NoError(t, err)
			assert.True(t, nav.Equal(tree, got), buf.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         FormatOutline,
		"tree":     FormatOutline,
		"MD":       FormatMarkdown,
		"markdown": FormatMarkdown,
		"json":     FormatJSON,
		"yml":      FormatYAML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("html")
	assert.Error(t, err)
}
