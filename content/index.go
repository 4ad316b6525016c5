// Package content indexes the documents of a docs directory so that
// sidebar document references can be checked against them.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/nav"
	"github.com/moby/patternmatcher"
)

var (
	// DefaultExclude skips partials and hidden files at any depth.
	DefaultExclude = []string{"_*", "**/_*", ".*", "**/.*"}
	// DefaultExtensions are the document file extensions indexed by Scan.
	DefaultExtensions = []string{".md", ".mdx"}

	numberPrefixRegex = regexp.MustCompile(`^\d+\s*[-_.]+\s*`)
	// Dates ("2024-01-release") and versions ("1.2-notes") keep their prefix.
	ignoredPrefixRegex = regexp.MustCompile(`^\d+[-_.]\d+`)
)

// Options controls Scan.
type Options struct {
	// Exclude holds .dockerignore-style patterns relative to the root.
	// Nil means DefaultExclude.
	Exclude []string
	// Extensions lists indexed file extensions. Nil means DefaultExtensions.
	Extensions []string
}

// Document is one indexed source file.
type Document struct {
	ID           string
	Path         string // slash-separated, relative to the index root
	Title        string
	SidebarLabel string
}

// Index maps document ids to documents.
type Index struct {
	Root string
	docs map[string]*Document
}

// Scan walks root and indexes every document it finds.
func Scan(root string, opts Options) (*Index, error) {
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}
	extensions := opts.Extensions
	if extensions == nil {
		extensions = DefaultExtensions
	}

	pm, err := patternmatcher.New(exclude)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid exclude pattern").
			WithDetail("patterns", exclude)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeContentInvalid, fmt.Sprintf("content directory not found: %s", root)).
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrCodeContentInvalid, "failed to stat content directory")
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeContentInvalid, fmt.Sprintf("content path is not a directory: %s", root)).
			WithDetail("path", root)
	}

	idx := &Index{Root: root, docs: make(map[string]*Document)}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		skip, err := pm.MatchesOrParentMatches(rel)
		if err != nil {
			return err
		}
		if skip {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !hasExtension(p, extensions) {
			return nil
		}

		doc, err := readDocument(p, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if prev, dup := idx.docs[doc.ID]; dup {
			return errors.New(errors.ErrCodeContentInvalid, fmt.Sprintf("duplicate document id '%s'", doc.ID)).
				WithDetail("id", doc.ID).
				WithDetail("paths", []string{prev.Path, doc.Path})
		}
		idx.docs[doc.ID] = doc
		return nil
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCodeContentInvalid, "failed to scan content directory").
			WithDetail("path", root)
	}
	return idx, nil
}

func readDocument(fullPath, rel string) (*Document, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fm, err := ParseFrontMatter(f)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeContentInvalid, "failed to read front matter").
			WithDetail("path", rel)
	}

	return &Document{
		ID:           DocumentID(rel, fm.ID),
		Path:         rel,
		Title:        fm.Title,
		SidebarLabel: fm.SidebarLabel,
	}, nil
}

// DocumentID derives a document id from a slash-separated relative path:
// the extension is dropped, numeric ordering prefixes ("01-", "2_") are
// stripped from every segment not starting like a date or version, and a
// non-empty front matter id replaces the final segment.
func DocumentID(rel, frontMatterID string) string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		if ignoredPrefixRegex.MatchString(seg) {
			continue
		}
		if stripped := numberPrefixRegex.ReplaceAllString(seg, ""); stripped != "" {
			segments[i] = stripped
		}
	}
	if frontMatterID != "" {
		segments[len(segments)-1] = frontMatterID
	}
	return strings.Join(segments, "/")
}

func hasExtension(p string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// Has reports whether a document with the id exists.
func (idx *Index) Has(id string) bool {
	_, ok := idx.docs[id]
	return ok
}

// Get returns the document with the id.
func (idx *Index) Get(id string) (*Document, bool) {
	doc, ok := idx.docs[id]
	return doc, ok
}

// IDs returns every document id in sorted order.
func (idx *Index) IDs() []string {
	ids := make([]string, 0, len(idx.docs))
	for id := range idx.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Missing returns a validation error for every document reference in the
// tree that has no document, in manifest order.
func (idx *Index) Missing(tree *nav.Tree) []*nav.ValidationError {
	var missing []*nav.ValidationError
	_ = tree.Walk(func(n nav.Node, pos nav.Position) error {
		if d, ok := n.(*nav.DocRef); ok && !idx.Has(d.ID) {
			missing = append(missing, &nav.ValidationError{
				Path:   pos.Path,
				Reason: fmt.Sprintf("%s %q", nav.ReasonUnknownDocument, d.ID),
			})
		}
		return nil
	})
	return missing
}

// Orphans returns the documents that none of the trees reference, sorted
// by id.
func (idx *Index) Orphans(trees ...*nav.Tree) []*Document {
	referenced := make(map[string]bool)
	for _, tree := range trees {
		for _, id := range tree.DocIDs() {
			referenced[id] = true
		}
	}

	var orphans []*Document
	for _, id := range idx.IDs() {
		if !referenced[id] {
			orphans = append(orphans, idx.docs[id])
		}
	}
	return orphans
}
