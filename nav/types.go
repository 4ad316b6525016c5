// Package nav models a documentation sidebar as an ordered tree of
// navigation nodes and loads it from decoded manifest values.
//
// A Node is one of three concrete types: *DocRef, *Category or *Link.
// Callers switch on the concrete type; the raw manifest shape is inspected
// exactly once, in Load.
package nav

// DefaultCollection is the sidebar collection name used when none is given.
const DefaultCollection = "docs"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindDoc Kind = iota
	KindCategory
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindDoc:
		return "doc"
	case KindCategory:
		return "category"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Node is a single sidebar entry.
type Node interface {
	Kind() Kind
	node()
}

// DocRef references a document in the site's content set by its id.
type DocRef struct {
	ID string
}

// Category is a labeled, collapsible group of child nodes.
type Category struct {
	Label string
	Items []Node

	// Collapsible and Collapsed are optional renderer hints; nil means unset.
	Collapsible *bool
	Collapsed   *bool
}

// Link points to a URL outside the site's content set.
type Link struct {
	Label string
	Href  string
}

func (*DocRef) Kind() Kind   { return KindDoc }
func (*Category) Kind() Kind { return KindCategory }
func (*Link) Kind() Kind     { return KindLink }

func (*DocRef) node()   {}
func (*Category) node() {}
func (*Link) node()     {}

// Tree is the ordered top level of one named sidebar collection.
type Tree struct {
	Collection string
	Items      []Node
}
