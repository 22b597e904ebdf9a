package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// TextContent returns the concatenated text of n and all its descendants,
// unmodified, like the DOM textContent property.
func TextContent(n *html.Node) string {
	var b strings.Builder
	textContent(n, &b)
	return b.String()
}

func textContent(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, b)
	}
}

// NormalizedText returns the text content with runs of whitespace collapsed
// to single spaces, trimmed, in Unicode NFC.
func NormalizedText(n *html.Node) string {
	return norm.NFC.String(strings.Join(strings.Fields(TextContent(n)), " "))
}

// Attr returns the value of an attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// ID returns the id attribute.
func ID(n *html.Node) string {
	id, _ := Attr(n, "id")
	return id
}

// ClassList returns the class names in attribute order.
func ClassList(n *html.Node) []string {
	class, _ := Attr(n, "class")
	return strings.Fields(class)
}

// HasClass reports whether name is one of the element's classes.
func HasClass(n *html.Node, name string) bool {
	for _, c := range ClassList(n) {
		if c == name {
			return true
		}
	}
	return false
}

// TagName returns the lower-case tag name, or "" for non-element nodes.
func TagName(n *html.Node) string {
	if n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// OuterHTML renders n including its own tag.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return ""
		}
	}
	return b.String()
}

// ElementChildren returns the direct element children of n.
func ElementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Parent returns the parent element, or nil at the top of the tree.
func Parent(n *html.Node) *html.Node {
	if p := n.Parent; p != nil && p.Type == html.ElementNode {
		return p
	}
	return nil
}

// Contains reports whether n is scope or one of its descendants.
func Contains(scope, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == scope {
			return true
		}
	}
	return false
}
