package pageobject

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/tsawler/pageobject/dom"
	"github.com/tsawler/pageobject/internal/logger"
	"github.com/tsawler/pageobject/schema"
)

var (
	// ErrUnknownChild is returned when a child name is not declared.
	ErrUnknownChild = errors.New("unknown child")

	// ErrAmbiguousScope is returned when a child is looked up through a
	// Multi result, which has no single element to resolve against.
	ErrAmbiguousScope = errors.New("child lookup through a multi-match result")

	// ErrNilScope is returned when resolution is asked to run without a scope.
	ErrNilScope = errors.New("nil scope")
)

// defaultQuerier serves Resolve calls made without a querier.
var defaultQuerier = dom.NewCSS()

// Resolve runs one lookup of sel within scope and wraps the matches with
// children.
//
// In Single mode the first match is wrapped; no match gives a not-found
// Result. In Multi mode every match is wrapped, in document order; no match
// gives an empty Result. An error is returned when a declared child is not
// a well-formed schema, or when the host query fails, for instance on an
// invalid pattern. A nil querier uses CSS selectors.
func Resolve(q dom.Querier, scope *html.Node, sel schema.Selector, children schema.Children) (Result, error) {
	if scope == nil {
		return Result{}, fmt.Errorf("resolving %s: %w", sel, ErrNilScope)
	}
	if q == nil {
		q = defaultQuerier
	}
	for _, name := range children.Names() {
		if err := schema.Validate(children[name]); err != nil {
			return Result{}, fmt.Errorf("resolving %s: child %q: %w", sel, name, err)
		}
	}

	r := Result{sel: sel, children: children}

	switch sel.Mode {
	case schema.ModeSingle:
		n, err := q.QueryFirst(scope, sel.Pattern)
		if err != nil {
			return Result{}, fmt.Errorf("resolving %s: %w", sel, err)
		}
		if n == nil {
			logger.Debug("%s in %s: not found", sel, describe(scope))
			return r, nil
		}
		r.elements = []*Element{wrap(q, n, children)}

	case schema.ModeMulti:
		nodes, err := q.QueryAll(scope, sel.Pattern)
		if err != nil {
			return Result{}, fmt.Errorf("resolving %s: %w", sel, err)
		}
		r.elements = make([]*Element, 0, len(nodes))
		for _, n := range nodes {
			r.elements = append(r.elements, wrap(q, n, children))
		}

	default:
		return Result{}, fmt.Errorf("resolving %s: %w", sel, schema.ErrMalformedSchema)
	}

	logger.Debug("%s in %s: %d match(es)", sel, describe(scope), len(r.elements))
	return r, nil
}

func describe(n *html.Node) string {
	if n.Type == html.DocumentNode {
		return "#document"
	}
	if id := dom.ID(n); id != "" {
		return "<" + n.Data + " id=" + id + ">"
	}
	return "<" + n.Data + ">"
}
