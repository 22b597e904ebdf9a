// Package dom provides the host document and query capability that page
// objects resolve against.
//
// Documents are parsed with golang.org/x/net/html and stay live: nodes may be
// inserted, moved or removed through the html package between lookups, and
// the next lookup sees the change. Nothing in this package mutates a
// document.
package dom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Open parses an HTML file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{root: root}, nil
}

// Parse parses an HTML string.
func Parse(s string) (*Document, error) {
	return OpenReader(strings.NewReader(s))
}

// NewDocument wraps an already parsed tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the body element, or the document node when there is none.
// The body is looked up on every call so a replaced body is picked up.
func (d *Document) Body() *html.Node {
	if body := findElement(d.root, "body"); body != nil {
		return body
	}
	return d.root
}

// Title returns the trimmed text of the first title element.
func (d *Document) Title() string {
	if title := findElement(d.root, "title"); title != nil {
		return strings.TrimSpace(TextContent(title))
	}
	return ""
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}
