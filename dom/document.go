// Package dom implements the subset of the DOM this library needs to style
// documents: a document over golang.org/x/net/html nodes, elements with
// attribute and class-list access, and inline CSS style declarations.
package dom

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document wraps a parsed HTML tree. Elements are handed out as singletons
// per backing node, so per-element state (inline style declarations, class
// lists) survives repeated lookups.
type Document struct {
	root     *html.Node
	elements map[*html.Node]*Element
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
	}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

// NewDocument creates an empty document with html, head and body elements.
func NewDocument() *Document {
	doc, err := ParseString("<!DOCTYPE html><html><head></head><body></body></html>")
	if err != nil {
		// The canned markup above always parses.
		panic("dom: cannot build empty document: " + err.Error())
	}
	return doc
}

// Root returns the document node itself.
func (d *Document) Root() *html.Node {
	return d.root
}

// ElementFor returns the Element wrapping the given node, creating and
// caching it on first use. Returns nil for nil or non-element nodes.
func (d *Document) ElementFor(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{node: n, doc: d}
	d.elements[n] = el
	return el
}

// DocumentElement returns the root <html> element.
func (d *Document) DocumentElement() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.ElementFor(c)
		}
	}
	return nil
}

// Head returns the <head> element, or nil.
func (d *Document) Head() *Element {
	return d.ElementFor(findByAtom(d.root, atom.Head))
}

// Body returns the <body> element, or nil.
func (d *Document) Body() *Element {
	return d.ElementFor(findByAtom(d.root, atom.Body))
}

// CreateElement creates a new, detached element with the given tag name.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.ElementFor(n)
}

// CreateTextNode creates a new, detached text node.
func (d *Document) CreateTextNode(text string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: text,
	}
}

// GetElementByID returns the first element with the given id attribute.
func (d *Document) GetElementByID(id string) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attrValue(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return d.ElementFor(found)
}

// QuerySelector returns the first element matching the CSS selector, or nil
// (including for unparsable selectors).
func (d *Document) QuerySelector(selector string) *Element {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	return d.ElementFor(cascadia.Query(d.root, sel))
}

// QuerySelectorAll returns all elements matching the CSS selector in
// document order.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(d.root, sel)
	elements := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, d.ElementFor(n))
	}
	return elements
}

// findByAtom returns the first descendant element with the given atom.
func findByAtom(n *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if c.Type == html.ElementNode && c.DataAtom == a {
			found = c
			return false
		}
		return true
	})
	return found
}

// walk visits n and its descendants in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// attrValue returns the value of the named attribute on a raw node.
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}
