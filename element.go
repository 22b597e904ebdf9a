package pageobject

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/tsawler/pageobject/dom"
	"github.com/tsawler/pageobject/schema"
)

// Element is a live element decorated with the child schemas that apply to
// it. Every child lookup re-runs against the element at call time, so
// repeated lookups reflect the document as it is now.
type Element struct {
	node     *html.Node
	children schema.Children
	querier  dom.Querier
}

func wrap(q dom.Querier, n *html.Node, children schema.Children) *Element {
	return &Element{node: n, children: children, querier: q}
}

// Node returns the underlying element.
func (e *Element) Node() *html.Node {
	return e.node
}

// Same reports whether e and other wrap the same underlying element.
func (e *Element) Same(other *Element) bool {
	return e != nil && other != nil && e.node == other.node
}

// Names returns the declared child names in sorted order.
func (e *Element) Names() []string {
	return e.children.Names()
}

// Has reports whether name is a declared child.
func (e *Element) Has(name string) bool {
	_, ok := e.children[name]
	return ok
}

// Child resolves the declared child name relative to this element.
func (e *Element) Child(name string) (Result, error) {
	child, ok := e.children[name]
	if !ok {
		return Result{}, fmt.Errorf("%w %q on <%s>", ErrUnknownChild, name, dom.TagName(e.node))
	}
	if child == nil {
		return Result{}, fmt.Errorf("child %q on <%s>: %w", name, dom.TagName(e.node), schema.ErrMalformedSchema)
	}
	return Resolve(e.querier, e.node, child.Selector(), child.Children())
}

// Query runs an ad-hoc Single lookup below this element. The result has no
// declared children.
func (e *Element) Query(pattern string) (Result, error) {
	return Resolve(e.querier, e.node, schema.Selector{Mode: schema.ModeSingle, Pattern: pattern}, nil)
}

// QueryAll runs an ad-hoc Multi lookup below this element.
func (e *Element) QueryAll(pattern string) (Result, error) {
	return Resolve(e.querier, e.node, schema.Selector{Mode: schema.ModeMulti, Pattern: pattern}, nil)
}

// Text returns the raw text content.
func (e *Element) Text() string {
	return dom.TextContent(e.node)
}

// NormalizedText returns the text content with whitespace collapsed.
func (e *Element) NormalizedText() string {
	return dom.NormalizedText(e.node)
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	return dom.Attr(e.node, key)
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	return dom.HasAttr(e.node, key)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return dom.ID(e.node)
}

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return dom.TagName(e.node)
}

// Classes returns the class names.
func (e *Element) Classes() []string {
	return dom.ClassList(e.node)
}

// HasClass reports whether the element has the class.
func (e *Element) HasClass(name string) bool {
	return dom.HasClass(e.node, name)
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	return dom.InnerHTML(e.node)
}

// OuterHTML renders the element itself.
func (e *Element) OuterHTML() string {
	return dom.OuterHTML(e.node)
}

// Parent returns the parent element, or nil at the top of the tree. The
// parent carries no declared children.
func (e *Element) Parent() *Element {
	p := dom.Parent(e.node)
	if p == nil {
		return nil
	}
	return wrap(e.querier, p, nil)
}

// ElementChildren returns the direct element children in document order,
// without declared children of their own.
func (e *Element) ElementChildren() []*Element {
	nodes := dom.ElementChildren(e.node)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, wrap(e.querier, n, nil))
	}
	return out
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if e == nil || other == nil {
		return false
	}
	return dom.Contains(e.node, other.node)
}

// String identifies the element for debugging.
func (e *Element) String() string {
	s := "<" + e.TagName()
	if id := e.ID(); id != "" {
		s += " id=" + id
	}
	return s + ">"
}
