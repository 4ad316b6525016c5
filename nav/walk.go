package nav

import (
	"errors"
	"fmt"
	"reflect"
)

// SkipChildren can be returned from a WalkFunc on a *Category to skip its items.
var SkipChildren = errors.New("skip children")

// Position describes where a node sits in its tree.
type Position struct {
	Path  string   // e.g. "docs[2].items[0]"
	Depth int      // 0 for top-level nodes
	Trail []string // labels of enclosing categories, outermost first
}

// WalkFunc is called for every node in pre-order.
type WalkFunc func(n Node, pos Position) error

// Walk visits every node of the tree depth first, in manifest order.
func (t *Tree) Walk(fn WalkFunc) error {
	return walk(t.Items, Position{Path: t.Collection}, fn)
}

func walk(nodes []Node, parent Position, fn WalkFunc) error {
	for i, n := range nodes {
		pos := Position{
			Depth: parent.Depth,
			Trail: parent.Trail,
		}
		if parent.Depth == 0 && len(parent.Trail) == 0 {
			pos.Path = fmt.Sprintf("%s[%d]", parent.Path, i)
		} else {
			pos.Path = fmt.Sprintf("%s.items[%d]", parent.Path, i)
		}

		err := fn(n, pos)
		if err == SkipChildren {
			continue
		}
		if err != nil {
			return err
		}

		if cat, ok := n.(*Category); ok {
			trail := make([]string, len(pos.Trail), len(pos.Trail)+1)
			copy(trail, pos.Trail)
			child := Position{
				Path:  pos.Path,
				Depth: pos.Depth + 1,
				Trail: append(trail, cat.Label),
			}
			if err := walk(cat.Items, child, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// DocIDs returns the ids of every document reference in manifest order.
// Duplicates are kept.
func (t *Tree) DocIDs() []string {
	var ids []string
	_ = t.Walk(func(n Node, _ Position) error {
		if d, ok := n.(*DocRef); ok {
			ids = append(ids, d.ID)
		}
		return nil
	})
	return ids
}

// Count returns the number of nodes of each kind.
func (t *Tree) Count() map[Kind]int {
	counts := make(map[Kind]int, 3)
	_ = t.Walk(func(n Node, _ Position) error {
		counts[n.Kind()]++
		return nil
	})
	return counts
}

// Equal reports whether two trees have the same collection and structure.
func Equal(a, b *Tree) bool {
	return reflect.DeepEqual(a, b)
}
