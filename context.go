// Package hiddenstyle computes the effective visual style of DOM elements
// even when they (or their ancestors) are hidden with display:none, and
// provides a reversible "inert" presentation toggle that hides an element
// without destroying its original style values.
//
// All state lives on a Context: the document, its style resolver, and the
// cached scratch stylesheet handle. There is no package-level mutable
// state, so independent contexts (one per test, one per document) never
// interfere.
package hiddenstyle

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/voidwalk/hiddenstyle/css"
	"github.com/voidwalk/hiddenstyle/dom"
)

// tracer traces with key 'hiddenstyle'.
func tracer() tracing.Trace {
	return tracing.Select("hiddenstyle")
}

// Context is the style context for one document.
type Context struct {
	doc      *dom.Document
	resolver *css.Resolver

	// Cached scratch stylesheet handle; created lazily, lives as long as
	// the context.
	inertSheet *css.StyleSheet
}

// NewContext creates a style context for a document. Resolver options
// (viewport size, textless computed styles) pass through.
func NewContext(doc *dom.Document, opts ...css.Option) *Context {
	return &Context{
		doc:      doc,
		resolver: css.NewResolver(doc, opts...),
	}
}

// Document returns the context's document.
func (cx *Context) Document() *dom.Document {
	return cx.doc
}

// Resolver returns the context's style resolver.
func (cx *Context) Resolver() *css.Resolver {
	return cx.resolver
}

// ComputedStyle returns the element's computed style as the engine reports
// it, hidden-subtree quirks included. Use VisibleComputedStyle for the
// as-if-displayed style.
func (cx *Context) ComputedStyle(el *dom.Element) *css.ComputedStyleDeclaration {
	return cx.resolver.ComputedStyle(el)
}

// ComputedStyleCSSText returns the combined text of the element's computed
// style. When the engine variant reports no text form, the text is rebuilt
// from the enumerated properties.
func (cx *Context) ComputedStyleCSSText(el *dom.Element) string {
	decl := cx.resolver.ComputedStyle(el)
	if text := decl.CSSText(); text != "" {
		return text
	}
	return CSSTextFromStyle(decl)
}
