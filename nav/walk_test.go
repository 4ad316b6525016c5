package nav

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := Load("docs", []any{
		"welcome",
		category("About", "about/index", link("Whitepaper", "https://example.com/wp.pdf")),
		category("Developers", category("Tutorials", "dev/tutorial")),
	})
	require.NoError(t, err)
	return tree
}

func TestWalkVisitsInPreOrder(t *testing.T) {
	tree := sampleTree(t)

	var paths []string
	var trails [][]string
	err := tree.Walk(func(n Node, pos Position) error {
		paths = append(paths, pos.Path)
		trails = append(trails, pos.Trail)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"docs[0]",
		"docs[1]",
		"docs[1].items[0]",
		"docs[1].items[1]",
		"docs[2]",
		"docs[2].items[0]",
		"docs[2].items[0].items[0]",
	}, paths)
	assert.Equal(t, []string{"Developers", "Tutorials"}, trails[6])
	assert.Empty(t, trails[0])
}

func TestWalkSkipChildren(t *testing.T) {
	tree := sampleTree(t)

	var visited int
	err := tree.Walk(func(n Node, pos Position) error {
		visited++
		if n.Kind() == KindCategory {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, visited)
}

func TestCount(t *testing.T) {
	counts := sampleTree(t).Count()
	assert.Equal(t, 3, counts[KindDoc])
	assert.Equal(t, 3, counts[KindCategory])
	assert.Equal(t, 1, counts[KindLink])
}

func TestLint(t *testing.T) {
	tree, err := Load("docs", []any{"a", category("Empty"), category("B", "a")})
	require.NoError(t, err)

	warnings := Lint(tree)
	require.Len(t, warnings, 2)
	assert.Equal(t, "docs[1]", warnings[0].Path)
	assert.Contains(t, warnings[0].Message, `"Empty" has no items`)
	assert.Equal(t, "docs[2].items[0]", warnings[1].Path)
	assert.Contains(t, warnings[1].Message, "already referenced at docs[0]")

	assert.Empty(t, Lint(sampleTree(t)))
}

func TestEncodedTreeLoadsBackEqual(t *testing.T) {
	tree := sampleTree(t)
	collapsed := true
	tree.Items[1].(*Category).Collapsed = &collapsed

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(tree.Items)
		require.NoError(t, err)

		var raw []any
		require.NoError(t, json.Unmarshal(data, &raw))
		reloaded, err := Load("docs", raw)
		require.NoError(t, err)
		assert.True(t, Equal(tree, reloaded))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(tree.Items)
		require.NoError(t, err)

		var raw []any
		require.NoError(t, yaml.Unmarshal(data, &raw))
		reloaded, err := Load("docs", raw)
		require.NoError(t, err)
		assert.True(t, Equal(tree, reloaded))
	})
}

func TestEncodeEmptyCategoryKeepsItems(t *testing.T) {
	data, err := json.Marshal(&Category{Label: "Empty"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"category","label":"Empty","items":[]}`, string(data))
}
