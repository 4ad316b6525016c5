package nav

import "fmt"

// Reasons reported by ValidationError.
const (
	ReasonMissingType     = "missing type"
	ReasonEmptyLabel      = "empty label"
	ReasonEmptyDocID      = "empty document id"
	ReasonDocIDNotString  = "document id must be a string"
	ReasonEmptyHref       = "empty href"
	ReasonMalformedURL    = "malformed URL"
	ReasonUnrecognized    = "unrecognized node shape"
	ReasonNotAList        = "collection must be a list"
	ReasonEmptyCollection = "empty collection name"
	ReasonUnknownDocument = "unknown document"
)

// ValidationError identifies the node that violated a structural rule.
// Path locates the node, e.g. "docs[3].items[1].href".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func invalid(path, reason string) *ValidationError {
	return &ValidationError{Path: path, Reason: reason}
}

func unknownType(path, t string) *ValidationError {
	return invalid(path, fmt.Sprintf("unknown type %q", t))
}

func missingField(path, field string) *ValidationError {
	return invalid(path, fmt.Sprintf("missing required field %q", field))
}

func unknownField(path, field string) *ValidationError {
	return invalid(path, fmt.Sprintf("unknown field %q", field))
}

func wrongShape(path, field, want string) *ValidationError {
	return invalid(path, fmt.Sprintf("field %q must be a %s", field, want))
}
