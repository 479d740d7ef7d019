package hiddenstyle

import (
	"github.com/voidwalk/hiddenstyle/dom"
)

// Tabindex stash attributes. The pair forms an explicit tri-state: stash
// attribute present means "tabindex was present with this value" (the empty
// string included); the marker alone means "tabindex was absent"; neither
// means the element was never made inert.
const (
	tabindexStashAttribute  = "data-inert-tabindex"
	tabindexMarkerAttribute = "data-inert-had-tabindex"
)

// MakeInert applies the inert presentation to an element: invisible and
// unfocusable, but still occupying layout space. The element is assumed to
// be currently laid out; MakeInert reads its direct computed style, not the
// hidden-ancestor-aware resolver.
//
// When affected is non-nil, it receives, for every property the ".inert"
// rule declares, the element's pre-inert computed value keyed by the
// camelCase property name — or the sentinel "initial" when the engine has
// no current value for it. The capture happens strictly before the class
// is applied.
func (cx *Context) MakeInert(el *dom.Element, affected map[string]string) {
	computed := cx.resolver.ComputedStyle(el)
	rule := cx.RawStyleDeclaration("."+InertClass, cx.InertSheet())

	if affected != nil && rule != nil {
		for _, prop := range rule.Properties() {
			value := computed.GetPropertyValue(prop)
			if value == "" {
				value = "initial"
			}
			affected[dom.CamelCase(prop)] = value
		}
	}

	if el.HasAttribute("tabindex") {
		el.SetAttribute(tabindexStashAttribute, el.GetAttribute("tabindex"))
	} else {
		el.SetAttribute(tabindexMarkerAttribute, "false")
	}
	// tabindex="-1" leaves the element focusable by script but removes it
	// from the tab order.
	el.SetAttribute("tabindex", "-1")

	if err := el.ClassList().Add(InertClass); err != nil {
		tracer().Errorf("cannot add inert class: %v", err)
	}
}

// UnmakeInert removes the inert presentation and restores the tabindex
// attribute to its exact pre-MakeInert state: present with its prior value,
// or absent. Idempotent on an element that was never made inert.
func (cx *Context) UnmakeInert(el *dom.Element) {
	if err := el.ClassList().Remove(InertClass); err != nil {
		tracer().Errorf("cannot remove inert class: %v", err)
	}

	switch {
	case el.HasAttribute(tabindexStashAttribute):
		el.SetAttribute("tabindex", el.GetAttribute(tabindexStashAttribute))
		el.RemoveAttribute(tabindexStashAttribute)
	case el.HasAttribute(tabindexMarkerAttribute):
		el.RemoveAttribute("tabindex")
		el.RemoveAttribute(tabindexMarkerAttribute)
	}
}
