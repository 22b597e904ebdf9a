package schema

import (
	"errors"
	"sort"
	"strings"
)

// Children maps child names to the schemas resolved below each match of
// their parent. Names are unique within a schema; order carries no meaning.
type Children map[string]*Schema

// Names returns the child names in sorted order.
func (c Children) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Children) clone() Children {
	if len(c) == 0 {
		return nil
	}
	out := make(Children, len(c))
	for name, child := range c {
		out[name] = child
	}
	return out
}

func (c Children) childrenSource() (Children, bool, error) {
	return c, false, nil
}

// ChildrenSource is the optional second argument of [Single] and [Multi]:
// either a [Children] mapping or a *[Schema] whose children are adopted.
type ChildrenSource interface {
	childrenSource() (children Children, fromSchema bool, err error)
}

// Schema describes what to find and, through its children, what to find
// below each match. A Schema is immutable once built.
type Schema struct {
	sel      Selector
	children Children

	// err records malformed combinator input; see Validate.
	err error
}

// Selector returns the schema's selector.
func (s *Schema) Selector() Selector {
	return s.sel
}

// Mode returns the selector mode.
func (s *Schema) Mode() Mode {
	return s.sel.Mode
}

// Pattern returns the selector pattern.
func (s *Schema) Pattern() string {
	return s.sel.Pattern
}

// Children returns a copy of the child mapping. The result is never nil.
func (s *Schema) Children() Children {
	out := make(Children, len(s.children))
	for name, child := range s.children {
		out[name] = child
	}
	return out
}

// Child returns the child schema declared under name.
func (s *Schema) Child(name string) (*Schema, bool) {
	child, ok := s.children[name]
	return child, ok
}

// Names returns the declared child names in sorted order.
func (s *Schema) Names() []string {
	return s.children.Names()
}

// Len returns the number of declared children.
func (s *Schema) Len() int {
	return len(s.children)
}

func (s *Schema) childrenSource() (Children, bool, error) {
	if s == nil {
		return nil, true, errors.New("children schema is nil")
	}
	return s.children, true, nil
}

// String renders the schema tree compactly, children in name order.
func (s *Schema) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	s.write(&b)
	return b.String()
}

func (s *Schema) write(b *strings.Builder) {
	b.WriteString(s.sel.String())
	if len(s.children) == 0 {
		return
	}
	b.WriteString("{")
	for i, name := range s.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		if child := s.children[name]; child != nil {
			child.write(b)
		} else {
			b.WriteString("<nil>")
		}
	}
	b.WriteString("}")
}

// Equal reports whether a and b describe the same tree: same selectors and
// the same child names, recursively.
func Equal(a, b *Schema) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.sel != b.sel || len(a.children) != len(b.children) {
		return false
	}
	for name, ac := range a.children {
		bc, ok := b.children[name]
		if !ok || !Equal(ac, bc) {
			return false
		}
	}
	return true
}

// Input is the first argument of a combinator: either a raw pattern or an
// existing schema whose pattern (and, by default, children) is adopted.
type Input struct {
	pattern   string
	inherited *Schema
	isSchema  bool
}

// Pattern returns an Input holding a raw selector pattern.
func Pattern(p string) Input {
	return Input{pattern: p}
}

// Inherited returns an Input adopting the pattern and children of s.
func Inherited(s *Schema) Input {
	return Input{inherited: s, isSchema: true}
}

// IsInherited reports whether the input adopts an existing schema.
func (in Input) IsInherited() bool {
	return in.isSchema
}

// Source constrains the first argument of [Single] and [Multi].
type Source interface {
	string | *Schema
}

func inputOf[S Source](in S) Input {
	switch v := any(in).(type) {
	case *Schema:
		return Inherited(v)
	case string:
		return Pattern(v)
	}
	return Input{}
}

// Single returns a schema expecting exactly one match of in. See the package
// documentation for how in and children combine.
func Single[S Source](in S, children ...ChildrenSource) *Schema {
	return compose(ModeSingle, inputOf(in), children)
}

// Multi returns a schema expecting any number of matches of in. See the
// package documentation for how in and children combine.
func Multi[S Source](in S, children ...ChildrenSource) *Schema {
	return compose(ModeMulti, inputOf(in), children)
}

// Build is the validating form of the combinators. It returns an error
// wrapping ErrMalformedSchema if the composed schema is malformed.
func Build(mode Mode, in Input, children ChildrenSource) (*Schema, error) {
	var sources []ChildrenSource
	if children != nil {
		sources = append(sources, children)
	}
	s := compose(mode, in, sources)
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// compose applies the children precedence rules. Among several explicit
// sources a schema-typed one wins over a mapping; within a kind the first
// one given wins.
func compose(mode Mode, in Input, sources []ChildrenSource) *Schema {
	s := &Schema{sel: Selector{Mode: mode, Pattern: in.pattern}}

	var inherited Children
	if in.isSchema {
		if in.inherited == nil {
			s.err = errors.New("inherited schema is nil")
			return s
		}
		s.sel.Pattern = in.inherited.sel.Pattern
		inherited = in.inherited.children
		if in.inherited.err != nil {
			s.err = in.inherited.err
		}
	}

	var (
		fromSchema  Children
		fromMapping Children
		haveSchema  bool
		haveMapping bool
	)
	for _, src := range sources {
		if src == nil {
			continue
		}
		c, isSchema, err := src.childrenSource()
		if err != nil {
			s.err = err
			return s
		}
		switch {
		case isSchema && !haveSchema:
			fromSchema, haveSchema = c, true
		case !isSchema && !haveMapping:
			fromMapping, haveMapping = c, true
		}
	}

	switch {
	case haveSchema:
		s.children = fromSchema.clone()
	case haveMapping:
		s.children = fromMapping.clone()
	default:
		s.children = inherited.clone()
	}
	return s
}
