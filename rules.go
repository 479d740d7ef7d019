package hiddenstyle

import (
	"github.com/voidwalk/hiddenstyle/css"
)

// sheetOrInert substitutes the context's scratch sheet for a nil sheet.
func (cx *Context) sheetOrInert(sheet *css.StyleSheet) *css.StyleSheet {
	if sheet == nil {
		return cx.InertSheet()
	}
	return sheet
}

// FindRule returns the first rule whose selector text equals selector
// exactly, compared verbatim with no normalization and no specificity.
// nil when no rule matches. A nil sheet means the inert sheet.
func (cx *Context) FindRule(selector string, sheet *css.StyleSheet) *css.StyleRule {
	sheet = cx.sheetOrInert(sheet)
	if sheet == nil {
		return nil
	}
	for _, rule := range sheet.Rules() {
		if rule.SelectorText() == selector {
			return rule
		}
	}
	return nil
}

// RawStyleDeclaration returns the live declaration of the rule FindRule
// locates, or nil.
func (cx *Context) RawStyleDeclaration(selector string, sheet *css.StyleSheet) *css.RuleStyleDeclaration {
	if rule := cx.FindRule(selector, sheet); rule != nil {
		return rule.Style()
	}
	return nil
}

// StyleAttributes returns a snapshot of the declared properties of the rule
// with the given selector, or nil when no rule matches.
func (cx *Context) StyleAttributes(selector string, sheet *css.StyleSheet) *StyleSnapshot {
	decl := cx.RawStyleDeclaration(selector, sheet)
	if decl == nil {
		return nil
	}
	return NewSnapshot(decl)
}

// AddRawCSSRule adds "selector { bodyText }" to the sheet and returns the
// new rule's declaration. When a rule with that exact selector already
// exists its declaration is returned unchanged: create-if-absent, not
// upsert. New rules insert at index 0, the highest priority within the
// sheet.
func (cx *Context) AddRawCSSRule(selector, bodyText string, sheet *css.StyleSheet) *css.RuleStyleDeclaration {
	sheet = cx.sheetOrInert(sheet)
	if sheet == nil {
		return nil
	}
	if existing := cx.RawStyleDeclaration(selector, sheet); existing != nil {
		return existing
	}
	if _, err := sheet.InsertRule(selector+" { "+bodyText+" }", 0); err != nil {
		tracer().Errorf("cannot add rule %q: %v", selector, err)
		return nil
	}
	return sheet.Rules()[0].Style()
}

// AddCSSRule serializes a declaration and delegates to AddRawCSSRule.
func (cx *Context) AddCSSRule(selector string, decl Declaration, sheet *css.StyleSheet) *css.RuleStyleDeclaration {
	return cx.AddRawCSSRule(selector, CSSTextFromStyle(decl), sheet)
}

// RemoveProp removes a property from a declaration. The target is either a
// selector string, resolved against the inert sheet, or a declaration
// object (live declaration or snapshot). Silent no-op when the target or
// the property does not exist.
func (cx *Context) RemoveProp(target interface{}, property string) {
	switch t := target.(type) {
	case string:
		if decl := cx.RawStyleDeclaration(t, nil); decl != nil {
			decl.RemoveProperty(property)
		}
	case *StyleSnapshot:
		t.RemoveProperty(property)
	case MutableDeclaration:
		t.RemoveProperty(property)
	}
}

// RemoveRule removes the first rule whose selector text equals selector
// exactly. Only the first match is removed, even when duplicates exist;
// no-op when none is found.
func (cx *Context) RemoveRule(selector string, sheet *css.StyleSheet) {
	sheet = cx.sheetOrInert(sheet)
	if sheet == nil {
		return
	}
	for i, rule := range sheet.Rules() {
		if rule.SelectorText() == selector {
			if err := sheet.DeleteRule(i); err != nil {
				tracer().Errorf("cannot remove rule %q: %v", selector, err)
			}
			return
		}
	}
}
