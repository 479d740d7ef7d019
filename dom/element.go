package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Element wraps an html.ElementNode. Elements are obtained through their
// Document and are singletons per backing node.
type Element struct {
	node *html.Node
	doc  *Document

	classList *TokenList
	style     *CSSStyleDeclaration
}

// Node returns the backing html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// TagName returns the uppercase tag name, e.g. "DIV".
func (e *Element) TagName() string {
	return strings.ToUpper(e.node.Data)
}

// LocalName returns the lowercase tag name.
func (e *Element) LocalName() string {
	return strings.ToLower(e.node.Data)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.GetAttribute("id")
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) {
	e.SetAttribute("id", id)
}

// GetAttribute returns the attribute value, or "" if absent.
func (e *Element) GetAttribute(name string) string {
	return attrValue(e.node, strings.ToLower(name))
}

// HasAttribute reports whether the attribute is present. Presence and the
// empty string are distinct states.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	e.setAttr(strings.ToLower(name), value)
	if strings.ToLower(name) == "style" && e.style != nil {
		e.style.refreshFromAttribute()
	}
}

// RemoveAttribute removes an attribute. No-op if absent.
func (e *Element) RemoveAttribute(name string) {
	e.removeAttr(strings.ToLower(name))
	if strings.ToLower(name) == "style" && e.style != nil {
		e.style.refreshFromAttribute()
	}
}

// setAttr mutates the backing node without touching the cached style
// declaration. The declaration's own attribute sync uses this to avoid
// re-parsing what it just serialized.
func (e *Element) setAttr(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) removeAttr(name string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// ClassName returns the class attribute.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// ClassList returns the element's class token list.
func (e *Element) ClassList() *TokenList {
	if e.classList == nil {
		e.classList = newTokenList(e, "class")
	}
	return e.classList
}

// Style returns the element's inline style declaration.
func (e *Element) Style() *CSSStyleDeclaration {
	if e.style == nil {
		e.style = newCSSStyleDeclaration(e)
	}
	return e.style
}

// ParentElement returns the parent element, or nil when the parent is
// missing or not an element node (the document, for instance).
func (e *Element) ParentElement() *Element {
	return e.doc.ElementFor(e.node.Parent)
}

// FirstElementChild returns the first child that is an element.
func (e *Element) FirstElementChild() *Element {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return e.doc.ElementFor(c)
		}
	}
	return nil
}

// LastElementChild returns the last child that is an element.
func (e *Element) LastElementChild() *Element {
	for c := e.node.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return e.doc.ElementFor(c)
		}
	}
	return nil
}

// NextElementSibling returns the next sibling element.
func (e *Element) NextElementSibling() *Element {
	for s := e.node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return e.doc.ElementFor(s)
		}
	}
	return nil
}

// PreviousElementSibling returns the previous sibling element.
func (e *Element) PreviousElementSibling() *Element {
	for s := e.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return e.doc.ElementFor(s)
		}
	}
	return nil
}

// AppendChild appends a child element.
func (e *Element) AppendChild(child *Element) {
	appendNode(e.node, child.node)
}

// AppendNode appends a raw node (text nodes in particular).
func (e *Element) AppendNode(n *html.Node) {
	appendNode(e.node, n)
}

// PrependChild inserts a child element before all existing children.
func (e *Element) PrependChild(child *Element) {
	insertBefore(e.node, child.node, e.node.FirstChild)
}

// InsertBefore inserts newChild before ref. A nil ref appends.
func (e *Element) InsertBefore(newChild, ref *Element) {
	var refNode *html.Node
	if ref != nil {
		refNode = ref.node
	}
	insertBefore(e.node, newChild.node, refNode)
}

// RemoveChild detaches a child element. No-op if child has another parent.
func (e *Element) RemoveChild(child *Element) {
	removeNode(e.node, child.node)
}

// TextContent returns the concatenated text of all descendant text nodes.
func (e *Element) TextContent() string {
	var sb strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	for e.node.FirstChild != nil {
		removeNode(e.node, e.node.FirstChild)
	}
	if text != "" {
		appendNode(e.node, e.doc.CreateTextNode(text))
	}
}

// Matches reports whether the element matches the CSS selector. Unparsable
// selectors match nothing.
func (e *Element) Matches(selector string) bool {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return false
	}
	return sel.Match(e.node)
}

// QuerySelector returns the first descendant matching the selector.
func (e *Element) QuerySelector(selector string) *Element {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	return e.doc.ElementFor(cascadia.Query(e.node, sel))
}

// QuerySelectorAll returns all descendants matching the selector.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(e.node, sel)
	elements := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, e.doc.ElementFor(n))
	}
	return elements
}

func appendNode(parent, c *html.Node) {
	if c.Parent != nil {
		removeNode(c.Parent, c)
	}
	c.Parent = parent
	c.PrevSibling = parent.LastChild
	c.NextSibling = nil
	if parent.LastChild != nil {
		parent.LastChild.NextSibling = c
	} else {
		parent.FirstChild = c
	}
	parent.LastChild = c
}

func insertBefore(parent, c, ref *html.Node) {
	if ref == nil {
		appendNode(parent, c)
		return
	}
	if c.Parent != nil {
		removeNode(c.Parent, c)
	}
	c.Parent = parent
	c.NextSibling = ref
	c.PrevSibling = ref.PrevSibling
	if ref.PrevSibling != nil {
		ref.PrevSibling.NextSibling = c
	} else {
		parent.FirstChild = c
	}
	ref.PrevSibling = c
}

func removeNode(parent, c *html.Node) {
	if c.Parent != parent {
		return
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	} else {
		parent.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	} else {
		parent.LastChild = c.PrevSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}
