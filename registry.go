package hiddenstyle

import (
	"github.com/voidwalk/hiddenstyle/css"
)

const (
	// InertClass is the class token applied by MakeInert.
	InertClass = "inert"

	// InertSheetTag identifies the scratch stylesheet, carried in the
	// owner <style> element's css.SheetTagAttribute.
	InertSheetTag = "hiddenstyle-inert"
)

// inertRuleBody is the fixed declaration block of the ".inert" rule:
// invisible, unselectable, non-interactive, but still occupying layout
// space with a deterministic block box. Dependents rely on this exact
// property set.
const inertRuleBody = "position: absolute; display: block; visibility: hidden; " +
	"z-index: -1; user-select: none; pointer-events: none;"

// InertSheet returns the context's scratch stylesheet, creating it on first
// use: a <style> element tagged InertSheetTag containing the ".inert" rule,
// inserted as the first child of <head> so any page-authored rule overrides
// it by normal cascade order. Subsequent calls return the same handle
// without re-inserting.
func (cx *Context) InertSheet() *css.StyleSheet {
	if cx.inertSheet != nil {
		return cx.inertSheet
	}
	if sheet := cx.SheetByTag(InertSheetTag); sheet != nil {
		cx.inertSheet = sheet
		return sheet
	}

	owner := cx.doc.CreateElement("style")
	owner.SetAttribute(css.SheetTagAttribute, InertSheetTag)
	owner.SetTextContent("." + InertClass + " { " + inertRuleBody + " }")

	head := cx.doc.Head()
	if head == nil {
		tracer().Errorf("document has no <head>, cannot create inert sheet")
		return nil
	}
	head.PrependChild(owner)
	tracer().Debugf("created inert sheet %q", InertSheetTag)

	cx.inertSheet = cx.resolver.SheetFor(owner)
	return cx.inertSheet
}

// SheetByTag returns the first document stylesheet whose identifying tag
// equals tag, scanning in document order. Absence is a valid outcome, not
// a failure: the result is nil, no error.
func (cx *Context) SheetByTag(tag string) *css.StyleSheet {
	for _, sheet := range cx.resolver.StyleSheets() {
		if sheet.Tag() == tag {
			return sheet
		}
	}
	return nil
}
