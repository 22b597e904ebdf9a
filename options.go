package pageobject

import (
	"golang.org/x/net/html"

	"github.com/tsawler/pageobject/dom"
)

// options holds page object configuration.
type options struct {
	querier dom.Querier
	scope   *html.Node // nil means the document body
	// Depth limit for Snapshot
	maxDepth int
}

// defaultOptions returns the default page object options.
func defaultOptions() options {
	return options{
		querier:  dom.NewCSS(),
		scope:    nil,
		maxDepth: 32,
	}
}

// Option configures a PageObject.
type Option func(*options)

// WithQuerier sets the host query capability (default: CSS selectors).
func WithQuerier(q dom.Querier) Option {
	return func(o *options) {
		if q != nil {
			o.querier = q
		}
	}
}

// WithScope binds the page object to an element instead of the document
// body.
func WithScope(n *html.Node) Option {
	return func(o *options) {
		o.scope = n
	}
}

// WithMaxDepth sets the maximum schema depth Snapshot descends (default: 32).
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}
