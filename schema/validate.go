package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSchema is wrapped by every validation failure.
var ErrMalformedSchema = errors.New("malformed schema")

// MalformedError reports the first malformed node found in a schema tree.
type MalformedError struct {
	// Path locates the node, e.g. "root.results.items".
	Path   string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed schema at %s: %s", e.Path, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedSchema
}

// rootPath names the top of a schema tree in error paths.
const rootPath = "root"

// IsSchema reports whether s is a well-formed schema: a valid mode and
// children that are all well-formed schemas. Patterns are opaque here; the
// querier judges them at resolution. It never panics, whatever the input.
func IsSchema(s *Schema) bool {
	return validate(s, rootPath) == nil
}

// Validate checks s and every schema reachable from it. The returned error
// is a *MalformedError wrapping ErrMalformedSchema.
func Validate(s *Schema) error {
	return validate(s, rootPath)
}

func validate(s *Schema, path string) error {
	if s == nil {
		return &MalformedError{Path: path, Reason: "schema is nil"}
	}
	if s.err != nil {
		return &MalformedError{Path: path, Reason: s.err.Error()}
	}
	if !s.sel.Mode.Valid() {
		return &MalformedError{Path: path, Reason: fmt.Sprintf("invalid mode %s", s.sel.Mode)}
	}
	for _, name := range s.children.Names() {
		if strings.TrimSpace(name) == "" {
			return &MalformedError{Path: path, Reason: "empty child name"}
		}
		if err := validate(s.children[name], path+"."+name); err != nil {
			return err
		}
	}
	return nil
}
