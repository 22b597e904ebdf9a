// Package pageobject builds lazily resolving page objects for UI tests.
//
// A page object is bound to a [schema.Schema] and a document. Nothing is
// looked up until it is resolved, and every resolution queries the live
// document from scratch, so a test can mutate the page and resolve again.
//
// Basic usage:
//
//	doc, err := dom.Parse(page)
//	if err != nil {
//	    // handle error
//	}
//
//	po, err := pageobject.New(doc, schema.Single(".a", schema.Children{
//	    "inner": schema.Single(".b"),
//	}))
//	if err != nil {
//	    // handle error
//	}
//
//	inner, err := po.Child("inner")
//	if err != nil {
//	    // handle error
//	}
//	if !inner.Found() {
//	    // absent
//	}
//	fmt.Println(inner.Element().Text())
//
// Single results signal absence through Found rather than an error, so an
// absence assertion needs no error handling. Multi results are sequences
// that are empty when nothing matches.
//
// Matched elements expose their declared children by name:
//
//	rows := pageobject.Must(po.Resolve())
//	for _, row := range rows.Elements() {
//	    cells := pageobject.Must(row.Child("cells"))
//	    fmt.Println(cells.Texts())
//	}
package pageobject

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pageobject/dom"
	"github.com/tsawler/pageobject/schema"
)

// PageObject resolves a schema against a document on demand.
type PageObject struct {
	doc    *dom.Document
	schema *schema.Schema
	opts   options
}

// New creates a page object for s over doc. The schema is validated here so
// that a malformed schema fails before any lookup. doc may be nil only when
// WithScope supplies the scope.
func New(doc *dom.Document, s *schema.Schema, opts ...Option) (*PageObject, error) {
	if err := schema.Validate(s); err != nil {
		return nil, fmt.Errorf("creating page object: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if doc == nil && o.scope == nil {
		return nil, fmt.Errorf("creating page object: %w", ErrNilScope)
	}

	return &PageObject{doc: doc, schema: s, opts: o}, nil
}

// Schema returns the bound schema.
func (p *PageObject) Schema() *schema.Schema {
	return p.schema
}

// Document returns the bound document, which may be nil when the page
// object was created with an explicit scope.
func (p *PageObject) Document() *dom.Document {
	return p.doc
}

// Scope returns the element resolution starts from: the WithScope element
// if one was given, otherwise the current document body.
func (p *PageObject) Scope() *html.Node {
	if p.opts.scope != nil {
		return p.opts.scope
	}
	return p.doc.Body()
}

// Names returns the root schema's child names.
func (p *PageObject) Names() []string {
	return p.schema.Names()
}

// Resolve resolves the root schema against the bound scope.
func (p *PageObject) Resolve() (Result, error) {
	return p.resolve(p.Scope())
}

// ResolveIn resolves the root schema against scope instead of the bound
// scope, for this call only.
func (p *PageObject) ResolveIn(scope *html.Node) (Result, error) {
	if scope == nil {
		return Result{}, fmt.Errorf("resolving %s: %w", p.schema.Selector(), ErrNilScope)
	}
	return p.resolve(scope)
}

func (p *PageObject) resolve(scope *html.Node) (Result, error) {
	return Resolve(p.opts.querier, scope, p.schema.Selector(), p.schema.Children())
}

// Child resolves the page object and then its declared child name. It is
// the same as calling Resolve and then Result.Child.
func (p *PageObject) Child(name string) (Result, error) {
	if _, ok := p.schema.Child(name); !ok {
		return Result{}, fmt.Errorf("%w %q under %s", ErrUnknownChild, name, p.schema.Selector())
	}
	r, err := p.Resolve()
	if err != nil {
		return Result{}, err
	}
	return r.Child(name)
}

// Lookup resolves a chain of child names, applying the rules of
// Result.Child at every step. An empty path resolves the root.
func (p *PageObject) Lookup(path ...string) (Result, error) {
	r, err := p.Resolve()
	if err != nil {
		return Result{}, err
	}
	for i, name := range path {
		r, err = r.Child(name)
		if err != nil {
			return Result{}, fmt.Errorf("looking up %s: %w", strings.Join(path[:i+1], "."), err)
		}
	}
	return r, nil
}

// Snapshot resolves the whole schema tree once and records what matched.
func (p *PageObject) Snapshot() (*Snapshot, error) {
	r, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	return r.Snapshot(p.opts.maxDepth)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for tests where error
// handling would be cumbersome.
//
// Example:
//
//	el := pageobject.Must(po.Resolve()).Element()
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
