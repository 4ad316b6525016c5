package nav

import "fmt"

// Warning is a non-fatal finding about a loaded tree.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// Lint reports empty categories and documents referenced more than once.
// Neither is a structural error, but both usually indicate a mistake.
func Lint(t *Tree) []Warning {
	var warnings []Warning
	firstSeen := make(map[string]string)

	_ = t.Walk(func(n Node, pos Position) error {
		switch v := n.(type) {
		case *Category:
			if len(v.Items) == 0 {
				warnings = append(warnings, Warning{
					Path:    pos.Path,
					Message: fmt.Sprintf("category %q has no items", v.Label),
				})
			}
		case *DocRef:
			if prev, dup := firstSeen[v.ID]; dup {
				warnings = append(warnings, Warning{
					Path:    pos.Path,
					Message: fmt.Sprintf("document %q already referenced at %s", v.ID, prev),
				})
			} else {
				firstSeen[v.ID] = pos.Path
			}
		}
		return nil
	})
	return warnings
}
