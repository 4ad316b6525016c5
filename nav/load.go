package nav

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	typeCategory = "category"
	typeLink     = "link"
)

var allowedFields = map[string]map[string]bool{
	typeCategory: {"type": true, "label": true, "items": true, "collapsible": true, "collapsed": true},
	typeLink:     {"type": true, "label": true, "href": true},
}

// Load classifies a decoded manifest value into a Tree for the named
// collection. The value must be a list whose elements are document ids
// (strings) or objects tagged with type "category" or "link". Sibling order
// is preserved at every depth.
//
// Load stops at the first structural violation and returns it as a
// *ValidationError. It does not check that referenced documents exist.
func Load(collection string, config any) (*Tree, error) {
	if collection == "" {
		return nil, invalid("", ReasonEmptyCollection)
	}

	items, ok := asList(config)
	if !ok {
		return nil, invalid(collection, ReasonNotAList)
	}

	nodes, err := classifyList(collection, items)
	if err != nil {
		return nil, err
	}
	return &Tree{Collection: collection, Items: nodes}, nil
}

// LoadNode classifies a single decoded manifest entry. path prefixes the
// paths of any returned *ValidationError, as in "docs[3]".
func LoadNode(path string, raw any) (Node, error) {
	return classify(path, raw)
}

func classifyList(path string, items []any) ([]Node, error) {
	nodes := make([]Node, 0, len(items))
	for i, raw := range items {
		n, err := classify(fmt.Sprintf("%s[%d]", path, i), raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// classify is the single place where raw shape decides the node variant.
func classify(path string, raw any) (Node, error) {
	if s, ok := raw.(string); ok {
		if strings.TrimSpace(s) == "" {
			return nil, invalid(path, ReasonEmptyDocID)
		}
		return &DocRef{ID: s}, nil
	}

	obj, ok := asObject(raw)
	if !ok {
		switch raw.(type) {
		case int, int64, uint64, float64, bool:
			return nil, invalid(path, ReasonDocIDNotString)
		}
		return nil, invalid(path, ReasonUnrecognized)
	}

	rawType, ok := obj["type"]
	if !ok {
		return nil, invalid(path, ReasonMissingType)
	}
	typ, ok := rawType.(string)
	if !ok {
		return nil, wrongShape(path+".type", "type", "string")
	}

	allowed, known := allowedFields[typ]
	if !known {
		return nil, unknownType(path, typ)
	}
	if err := checkFields(path, obj, allowed); err != nil {
		return nil, err
	}

	switch typ {
	case typeCategory:
		return classifyCategory(path, obj)
	default:
		return classifyLink(path, obj)
	}
}

func classifyCategory(path string, obj map[string]any) (Node, error) {
	label, err := requireLabel(path, obj)
	if err != nil {
		return nil, err
	}

	rawItems, ok := obj["items"]
	if !ok {
		return nil, missingField(path, "items")
	}
	items, ok := asList(rawItems)
	if !ok {
		return nil, wrongShape(path+".items", "items", "list")
	}

	cat := &Category{Label: label}
	if cat.Collapsible, err = optionalBool(path, obj, "collapsible"); err != nil {
		return nil, err
	}
	if cat.Collapsed, err = optionalBool(path, obj, "collapsed"); err != nil {
		return nil, err
	}

	cat.Items, err = classifyList(path+".items", items)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func classifyLink(path string, obj map[string]any) (Node, error) {
	label, err := requireLabel(path, obj)
	if err != nil {
		return nil, err
	}

	rawHref, ok := obj["href"]
	if !ok {
		return nil, missingField(path, "href")
	}
	href, ok := rawHref.(string)
	if !ok {
		return nil, wrongShape(path+".href", "href", "string")
	}
	if strings.TrimSpace(href) == "" {
		return nil, invalid(path+".href", ReasonEmptyHref)
	}
	if !IsAbsoluteURL(href) {
		return nil, invalid(path+".href", ReasonMalformedURL)
	}

	return &Link{Label: label, Href: href}, nil
}

func requireLabel(path string, obj map[string]any) (string, error) {
	rawLabel, ok := obj["label"]
	if !ok {
		return "", missingField(path, "label")
	}
	label, ok := rawLabel.(string)
	if !ok {
		return "", wrongShape(path+".label", "label", "string")
	}
	if strings.TrimSpace(label) == "" {
		return "", invalid(path+".label", ReasonEmptyLabel)
	}
	return label, nil
}

func optionalBool(path string, obj map[string]any, field string) (*bool, error) {
	raw, ok := obj[field]
	if !ok {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, wrongShape(path+"."+field, field, "boolean")
	}
	return &b, nil
}

// checkFields rejects keys the variant does not accept. Keys are checked
// in sorted order so the reported field is deterministic.
func checkFields(path string, obj map[string]any, allowed map[string]bool) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !allowed[k] {
			return unknownField(path, k)
		}
	}
	return nil
}

// IsAbsoluteURL reports whether href is a syntactically valid absolute URL.
// Hierarchical URLs (http, https, ftp, ...) must also name a host.
func IsAbsoluteURL(href string) bool {
	if strings.ContainsAny(href, " \t\r\n") {
		return false
	}
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		return false
	}
	if u.Opaque == "" && u.Host == "" {
		return false
	}
	return true
}

// asList accepts the list shapes produced by the YAML, TOML and JSON
// decoders, plus []string for programmatic callers.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}
