package content

import (
	"fmt"
	"strings"
)

// NotFoundError reports a missing collection or entry.
type NotFoundError struct {
	Kind string // "collection" or "entry"
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// DecodeError reports an entry file that could not be parsed.
type DecodeError struct {
	Path string
	Err  error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// Violation is a single schema failure for one entry.
type Violation struct {
	Slug    string `json:"slug"`
	Message string `json:"message"`
}

// SchemaError reports schema violations found in a collection.
type SchemaError struct {
	Collection string
	Violations []Violation
}

func (e SchemaError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "collection %s: %d schema violation(s)", e.Collection, len(e.Violations))
	for _, v := range e.Violations {
		fmt.Fprintf(&sb, "\n  %s: %s", v.Slug, v.Message)
	}
	return sb.String()
}
