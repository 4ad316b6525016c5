// Package render writes navigation trees for people and tools: an
// indented outline for terminals, a nested markdown list, and the
// manifest shape itself as JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/navtree/nav"
)

// Format names an output format.
type Format string

const (
	FormatOutline  Format = "outline"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatOutline, FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat accepts a format name, with "md" and "yml" as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "outline", "tree":
		return FormatOutline, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want one of outline, markdown, json, yaml)", s)
}

// Options control how documents are labeled.
type Options struct {
	// Title returns a display title for a document id. Ids are shown
	// as-is when it is nil or returns "".
	Title func(id string) string
	// Href maps a document id to a markdown link target. Defaults to the id.
	Href func(id string) string
	// Color enables ANSI styling in outlines.
	Color bool
}

// Write renders t to w in the given format.
func Write(w io.Writer, t *nav.Tree, format Format, opts Options) error {
	switch format {
	case FormatOutline:
		return Outline(w, t, opts)
	case FormatMarkdown:
		return Markdown(w, t, opts)
	case FormatJSON:
		return JSON(w, map[string][]nav.Node{t.Collection: t.Items})
	case FormatYAML:
		return YAML(w, map[string][]nav.Node{t.Collection: t.Items})
	}
	return fmt.Errorf("unknown format %q", format)
}

// JSON writes v, typically a tree's items or a whole manifest, as
// indented JSON in manifest form.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v in manifest form.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type styles struct {
	collection lipgloss.Style
	category   lipgloss.Style
	doc        lipgloss.Style
	link       lipgloss.Style
	muted      lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		collection: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA066")),
		category:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FB4CA")),
		doc:        r.NewStyle(),
		link:       r.NewStyle().Foreground(lipgloss.Color("#957FB8")),
		muted:      r.NewStyle().Faint(true),
	}
}

// Outline writes the tree as an indented outline with tree connectors:
//
//	docs
//	├─ welcome
//	├─ Guides/
//	│  └─ guides/install
//	└─ Blog → https://example.com/blog
func Outline(w io.Writer, t *nav.Tree, opts Options) error {
	st := newStyles(w, opts.Color)

	var b strings.Builder
	b.WriteString(st.collection.Render(t.Collection))
	b.WriteString("\n")
	outlineItems(&b, t.Items, "", st, opts)

	_, err := io.WriteString(w, b.String())
	return err
}

func outlineItems(b *strings.Builder, items []nav.Node, indent string, st styles, opts Options) {
	for i, item := range items {
		last := i == len(items)-1
		connector, childIndent := "├─ ", indent+"│  "
		if last {
			connector, childIndent = "└─ ", indent+"   "
		}

		b.WriteString(st.muted.Render(indent + connector))
		switch n := item.(type) {
		case *nav.DocRef:
			label := n.ID
			if title := docTitle(opts, n.ID); title != "" && title != n.ID {
				label = title + " " + st.muted.Render("("+n.ID+")")
			}
			b.WriteString(st.doc.Render(label))
		case *nav.Category:
			b.WriteString(st.category.Render(n.Label + "/"))
		case *nav.Link:
			b.WriteString(st.link.Render(n.Label) + st.muted.Render(" → "+n.Href))
		}
		b.WriteString("\n")

		if c, ok := item.(*nav.Category); ok {
			outlineItems(b, c.Items, childIndent, st, opts)
		}
	}
}

// Markdown writes the tree as a nested markdown list. Categories become
// bold list entries, documents and links become markdown links.
func Markdown(w io.Writer, t *nav.Tree, opts Options) error {
	var b strings.Builder
	markdownItems(&b, t.Items, 0, opts)
	_, err := io.WriteString(w, b.String())
	return err
}

func markdownItems(b *strings.Builder, items []nav.Node, depth int, opts Options) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		switch n := item.(type) {
		case *nav.DocRef:
			label := docTitle(opts, n.ID)
			if label == "" {
				label = n.ID
			}
			href := n.ID
			if opts.Href != nil {
				href = opts.Href(n.ID)
			}
			fmt.Fprintf(b, "%s- [%s](%s)\n", indent, escapeMarkdown(label), escapeDestination(href))
		case *nav.Category:
			fmt.Fprintf(b, "%s- **%s**\n", indent, escapeMarkdown(n.Label))
			markdownItems(b, n.Items, depth+1, opts)
		case *nav.Link:
			fmt.Fprintf(b, "%s- [%s](%s)\n", indent, escapeMarkdown(n.Label), escapeDestination(n.Href))
		}
	}
}

func docTitle(opts Options, id string) string {
	if opts.Title == nil {
		return ""
	}
	return opts.Title(id)
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`, `*`, `\*`, `_`, `\_`)

// Characters that end or split a link destination are percent-encoded.
var destinationEscaper = strings.NewReplacer(
	` `, `%20`, `(`, `%28`, `)`, `%29`, `<`, `%3C`, `>`, `%3E`, "\t", `%09`, "\n", `%0A`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func escapeDestination(s string) string {
	return destinationEscaper.Replace(s)
}
