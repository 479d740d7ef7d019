// Package css implements the CSSOM surface and the computed-style resolver
// this library uses as its style engine: stylesheets with ordered rules,
// rule style declarations, and a cascade over document stylesheets and
// inline styles.
package css

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	douceurcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/voidwalk/hiddenstyle/dom"
)

// SheetTagAttribute is the attribute on a sheet's owner element that carries
// its identifying tag. A custom attribute, deliberately not the reserved
// "title".
const SheetTagAttribute = "data-sheet-tag"

// StyleSheet represents one stylesheet: an ordered rule list plus the owner
// element it was created from.
type StyleSheet struct {
	owner *dom.Element
	rules []*StyleRule
}

// NewStyleSheet parses CSS text into a stylesheet. At-rules and unparsable
// input are skipped; parsing never fails, it just yields fewer rules.
func NewStyleSheet(cssText string, owner *dom.Element) *StyleSheet {
	sheet := &StyleSheet{owner: owner}
	parsed, err := parser.Parse(cssText)
	if err != nil {
		return sheet
	}
	for _, r := range parsed.Rules {
		if rule := newStyleRule(r); rule != nil {
			sheet.rules = append(sheet.rules, rule)
		}
	}
	return sheet
}

// Owner returns the element this sheet was created from, or nil.
func (s *StyleSheet) Owner() *dom.Element {
	return s.owner
}

// Tag returns the sheet's identifying tag, read from the owner element's
// SheetTagAttribute. "" when the owner has none.
func (s *StyleSheet) Tag() string {
	if s.owner == nil {
		return ""
	}
	return s.owner.GetAttribute(SheetTagAttribute)
}

// Rules returns the rules in order.
func (s *StyleSheet) Rules() []*StyleRule {
	return s.rules
}

// InsertRule parses ruleText as a single rule and inserts it at index,
// returning the index.
func (s *StyleSheet) InsertRule(ruleText string, index int) (int, error) {
	parsed, err := parser.Parse(ruleText)
	if err != nil || len(parsed.Rules) == 0 {
		return 0, fmt.Errorf("SyntaxError: invalid rule %q", ruleText)
	}
	rule := newStyleRule(parsed.Rules[0])
	if rule == nil {
		return 0, fmt.Errorf("SyntaxError: invalid rule %q", ruleText)
	}
	if index < 0 || index > len(s.rules) {
		return 0, fmt.Errorf("IndexSizeError: index %d out of bounds", index)
	}
	rules := make([]*StyleRule, 0, len(s.rules)+1)
	rules = append(rules, s.rules[:index]...)
	rules = append(rules, rule)
	rules = append(rules, s.rules[index:]...)
	s.rules = rules
	return index, nil
}

// DeleteRule removes the rule at index.
func (s *StyleSheet) DeleteRule(index int) error {
	if index < 0 || index >= len(s.rules) {
		return fmt.Errorf("IndexSizeError: index %d out of bounds", index)
	}
	s.rules = append(s.rules[:index], s.rules[index+1:]...)
	return nil
}

// CSSText returns the serialized stylesheet.
func (s *StyleSheet) CSSText() string {
	var sb strings.Builder
	for i, r := range s.rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.CSSText())
	}
	return sb.String()
}

// StyleRule is a qualified rule: selector text plus a declaration block.
type StyleRule struct {
	selectorText string
	style        *RuleStyleDeclaration

	compiled    cascadia.SelectorGroup
	compileErr  error
	compileDone bool
}

func newStyleRule(r *douceurcss.Rule) *StyleRule {
	if r.Kind != douceurcss.QualifiedRule {
		return nil
	}
	rule := &StyleRule{selectorText: strings.TrimSpace(r.Prelude)}
	rule.style = newRuleStyleDeclaration(r.Declarations)
	return rule
}

// SelectorText returns the rule's selector exactly as parsed. Rule lookup
// throughout this module compares this string verbatim, with no
// normalization or specificity resolution.
func (r *StyleRule) SelectorText() string {
	return r.selectorText
}

// Style returns the rule's declaration block.
func (r *StyleRule) Style() *RuleStyleDeclaration {
	return r.style
}

// CSSText returns "selector { declarations }".
func (r *StyleRule) CSSText() string {
	return r.selectorText + " { " + r.style.CSSText() + " }"
}

// Selectors returns the compiled selector group, compiling lazily. A rule
// with an unparsable selector matches nothing.
func (r *StyleRule) Selectors() cascadia.SelectorGroup {
	if !r.compileDone {
		r.compiled, r.compileErr = cascadia.ParseGroup(r.selectorText)
		r.compileDone = true
	}
	if r.compileErr != nil {
		return nil
	}
	return r.compiled
}

// RuleStyleDeclaration is a declaration block inside a rule. Same surface
// as an inline dom.CSSStyleDeclaration, minus the attribute syncing.
type RuleStyleDeclaration struct {
	declarations  map[string]*ruleStyleProperty
	propertyOrder []string
}

type ruleStyleProperty struct {
	value    string
	priority string
}

func newRuleStyleDeclaration(decls []*douceurcss.Declaration) *RuleStyleDeclaration {
	sd := &RuleStyleDeclaration{declarations: make(map[string]*ruleStyleProperty)}
	for _, d := range decls {
		property := dom.KebabCase(d.Property)
		if property == "" || d.Value == "" {
			continue
		}
		pri := ""
		if d.Important {
			pri = "important"
		}
		if _, exists := sd.declarations[property]; !exists {
			sd.propertyOrder = append(sd.propertyOrder, property)
		}
		sd.declarations[property] = &ruleStyleProperty{value: d.Value, priority: pri}
	}
	return sd
}

// CSSText returns the declaration block's text.
func (sd *RuleStyleDeclaration) CSSText() string {
	var parts []string
	for _, prop := range sd.propertyOrder {
		if sp, ok := sd.declarations[prop]; ok {
			part := prop + ": " + sp.value
			if sp.priority == "important" {
				part += " !important"
			}
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "; ")
}

// Length returns the number of properties.
func (sd *RuleStyleDeclaration) Length() int {
	return len(sd.declarations)
}

// GetPropertyValue returns a property's value, or "".
func (sd *RuleStyleDeclaration) GetPropertyValue(property string) string {
	if sp, ok := sd.declarations[dom.KebabCase(property)]; ok {
		return sp.value
	}
	return ""
}

// GetPropertyPriority returns "important" or "".
func (sd *RuleStyleDeclaration) GetPropertyPriority(property string) string {
	if sp, ok := sd.declarations[dom.KebabCase(property)]; ok {
		return sp.priority
	}
	return ""
}

// SetProperty sets a property with an optional priority.
func (sd *RuleStyleDeclaration) SetProperty(property, value string, priority ...string) {
	property = dom.KebabCase(property)
	if property == "" {
		return
	}
	if value == "" {
		sd.RemoveProperty(property)
		return
	}
	pri := ""
	if len(priority) > 0 && strings.EqualFold(priority[0], "important") {
		pri = "important"
	}
	if _, exists := sd.declarations[property]; !exists {
		sd.propertyOrder = append(sd.propertyOrder, property)
	}
	sd.declarations[property] = &ruleStyleProperty{value: value, priority: pri}
}

// RemoveProperty removes a property and returns its old value.
func (sd *RuleStyleDeclaration) RemoveProperty(property string) string {
	property = dom.KebabCase(property)
	sp, ok := sd.declarations[property]
	if !ok {
		return ""
	}
	delete(sd.declarations, property)
	for i, p := range sd.propertyOrder {
		if p == property {
			sd.propertyOrder = append(sd.propertyOrder[:i], sd.propertyOrder[i+1:]...)
			break
		}
	}
	return sp.value
}

// Properties returns all property names in declaration order.
func (sd *RuleStyleDeclaration) Properties() []string {
	result := make([]string, len(sd.propertyOrder))
	copy(result, sd.propertyOrder)
	return result
}
