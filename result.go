package pageobject

import (
	"fmt"

	"github.com/tsawler/pageobject/schema"
)

// Result is the outcome of resolving a selector against a scope.
//
// In Single mode a Result holds either one Element or nothing (not found).
// In Multi mode it holds a sequence of Elements, possibly empty. Not found is
// a value to branch on, never an error.
type Result struct {
	sel      schema.Selector
	children schema.Children
	elements []*Element
}

// emptyResult is the result of a child that could not be looked up because
// its parent was not found.
func emptyResult(s *schema.Schema) Result {
	return Result{sel: s.Selector(), children: s.Children()}
}

// Selector returns the selector that produced the result.
func (r Result) Selector() schema.Selector {
	return r.sel
}

// Mode returns the selector mode.
func (r Result) Mode() schema.Mode {
	return r.sel.Mode
}

// Pattern returns the selector pattern.
func (r Result) Pattern() string {
	return r.sel.Pattern
}

// Found reports whether at least one element matched. For a Single result
// false means not found; for a Multi result it means an empty sequence.
func (r Result) Found() bool {
	return len(r.elements) > 0
}

// Len returns the number of matched elements.
func (r Result) Len() int {
	return len(r.elements)
}

// Element returns the matched element of a Single result, or the first
// element of a Multi result. It returns nil when nothing matched.
func (r Result) Element() *Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// Elements returns the matched elements in document order. The slice is
// never nil and belongs to the caller.
func (r Result) Elements() []*Element {
	out := make([]*Element, len(r.elements))
	copy(out, r.elements)
	return out
}

// At returns the i-th element, or nil when i is out of range.
func (r Result) At(i int) *Element {
	if i < 0 || i >= len(r.elements) {
		return nil
	}
	return r.elements[i]
}

// Names returns the child names declared for the matched elements.
func (r Result) Names() []string {
	return r.children.Names()
}

// Texts returns the normalized text of every element.
func (r Result) Texts() []string {
	out := make([]string, 0, len(r.elements))
	for _, el := range r.elements {
		out = append(out, el.NormalizedText())
	}
	return out
}

// Child resolves the named child against the element of a Single result.
//
// When the Single result is not found, the child is not found either: an
// empty Single or Multi result according to the child's mode. A Multi
// result has no single scope to resolve against and returns
// ErrAmbiguousScope; iterate its Elements instead.
func (r Result) Child(name string) (Result, error) {
	child, ok := r.children[name]
	if !ok {
		return Result{}, fmt.Errorf("%w %q under %s", ErrUnknownChild, name, r.sel)
	}
	if child == nil {
		return Result{}, fmt.Errorf("child %q of %s: %w", name, r.sel, schema.ErrMalformedSchema)
	}
	if r.sel.Mode == schema.ModeMulti {
		return Result{}, fmt.Errorf("child %q of %s: %w", name, r.sel, ErrAmbiguousScope)
	}
	if len(r.elements) == 0 {
		return emptyResult(child), nil
	}
	return r.elements[0].Child(name)
}
