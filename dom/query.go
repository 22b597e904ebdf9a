package dom

import (
	"errors"
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrInvalidSelector is wrapped when a pattern cannot be compiled.
var ErrInvalidSelector = errors.New("invalid selector")

// Querier is the host query capability. Only descendants of scope are
// candidates, in document order.
type Querier interface {
	// QueryFirst returns the first match, or nil when nothing matches.
	QueryFirst(scope *html.Node, pattern string) (*html.Node, error)

	// QueryAll returns every match, possibly none.
	QueryAll(scope *html.Node, pattern string) ([]*html.Node, error)
}

// Ensure CSS implements the interface.
var _ Querier = (*CSS)(nil)

// CSS queries with CSS selectors. Compiled selectors are memoised per
// pattern; matched nodes are never cached. A CSS is safe for concurrent use.
type CSS struct {
	mu       sync.Mutex
	compiled map[string]cascadia.Selector
}

// NewCSS creates a CSS selector querier.
func NewCSS() *CSS {
	return &CSS{compiled: make(map[string]cascadia.Selector)}
}

func (c *CSS) compile(pattern string) (cascadia.Selector, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sel, ok := c.compiled[pattern]; ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, pattern, err)
	}
	if c.compiled == nil {
		c.compiled = make(map[string]cascadia.Selector)
	}
	c.compiled[pattern] = sel
	return sel, nil
}

// QueryFirst returns the first descendant of scope matching pattern.
func (c *CSS) QueryFirst(scope *html.Node, pattern string) (*html.Node, error) {
	sel, err := c.compile(pattern)
	if err != nil {
		return nil, err
	}
	return cascadia.Query(scope, sel), nil
}

// QueryAll returns all descendants of scope matching pattern.
func (c *CSS) QueryAll(scope *html.Node, pattern string) ([]*html.Node, error) {
	sel, err := c.compile(pattern)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(scope, sel), nil
}
