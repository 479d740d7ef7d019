package css

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"

	"github.com/voidwalk/hiddenstyle/dom"
)

// tracer traces with key 'css.resolver'.
func tracer() tracing.Trace {
	return tracing.Select("css.resolver")
}

const defaultFontSize = 16.0

// Option configures a Resolver.
type Option func(*Resolver)

// WithViewport sets the viewport size used as the initial containing block.
func WithViewport(width, height int) Option {
	return func(r *Resolver) {
		r.viewportWidth = width
		r.viewportHeight = height
	}
}

// WithTextlessComputedStyles makes computed style declarations report an
// empty combined text form, exposing properties only through enumeration.
// This models engines backed by a CSS2-style properties object; callers
// that want text must rebuild it from the enumerated properties.
func WithTextlessComputedStyles() Option {
	return func(r *Resolver) {
		r.textless = true
	}
}

// Resolver is the computed-style query primitive: it collects the
// document's stylesheets and resolves the full cascade for an element.
type Resolver struct {
	doc    *dom.Document
	sheets map[*html.Node]*StyleSheet

	viewportWidth  int
	viewportHeight int
	textless       bool
}

// NewResolver creates a resolver for a document.
func NewResolver(doc *dom.Document, opts ...Option) *Resolver {
	r := &Resolver{
		doc:            doc,
		sheets:         make(map[*html.Node]*StyleSheet),
		viewportWidth:  1280,
		viewportHeight: 720,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document returns the resolver's document.
func (r *Resolver) Document() *dom.Document {
	return r.doc
}

// StyleSheets returns the document's stylesheets in document order: one per
// <style> element, parsed once and cached by owner node so that rule
// mutations through the returned handles persist.
func (r *Resolver) StyleSheets() []*StyleSheet {
	owners := r.doc.QuerySelectorAll("style")
	sheets := make([]*StyleSheet, 0, len(owners))
	for _, owner := range owners {
		sheets = append(sheets, r.SheetFor(owner))
	}
	return sheets
}

// SheetFor returns the stylesheet for a <style> element, creating it from
// the element's text content on first use.
func (r *Resolver) SheetFor(owner *dom.Element) *StyleSheet {
	if sheet, ok := r.sheets[owner.Node()]; ok {
		return sheet
	}
	sheet := NewStyleSheet(owner.TextContent(), owner)
	r.sheets[owner.Node()] = sheet
	return sheet
}

// ComputedStyleDeclaration is the read-only result of a computed-style
// query.
type ComputedStyleDeclaration struct {
	values   map[string]string
	textless bool
}

// GetPropertyValue returns the computed value, or "" when the engine has no
// value for the property.
func (cs *ComputedStyleDeclaration) GetPropertyValue(property string) string {
	return cs.values[dom.KebabCase(property)]
}

// Properties returns the property names the declaration carries, sorted.
func (cs *ComputedStyleDeclaration) Properties() []string {
	props := make([]string, 0, len(cs.values))
	for p := range cs.values {
		props = append(props, p)
	}
	sort.Strings(props)
	return props
}

// Length returns the number of properties.
func (cs *ComputedStyleDeclaration) Length() int {
	return len(cs.values)
}

// CSSText returns the combined text form of the declaration. Resolvers in
// textless mode report "", and callers must treat that as "rebuild from the
// enumerated properties".
func (cs *ComputedStyleDeclaration) CSSText() string {
	if cs.textless || len(cs.values) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cs.values))
	for _, prop := range cs.Properties() {
		parts = append(parts, prop+": "+cs.values[prop])
	}
	return strings.Join(parts, "; ")
}

// ComputedStyle resolves the computed style of an element: initial values,
// inheritance, matching rules from the user agent sheet and all document
// sheets, inline style, then relative-length and used-width resolution.
//
// Elements inside a non-rendered subtree (their own computed display is
// "none", or any ancestor's is) get a degenerate declaration that carries
// only the element's own cascaded display value. This mirrors the engines
// this library is built for, and is the reason the visible-style resolver
// exists.
func (r *Resolver) ComputedStyle(el *dom.Element) *ComputedStyleDeclaration {
	var chain []*dom.Element
	for e := el; e != nil; e = e.ParentElement() {
		chain = append([]*dom.Element{e}, chain...)
	}

	var parent map[string]string
	parentFont := defaultFontSize
	rootFont := defaultFontSize
	cbWidth := float64(r.viewportWidth)

	for i, e := range chain {
		values := r.cascade(e, parent)
		last := i == len(chain)-1

		if values["display"] == "none" {
			own := values["display"]
			if !last {
				own = r.cascade(el, nil)["display"]
			}
			tracer().Debugf("element <%s> is in a display:none subtree, returning degenerate style", el.LocalName())
			return &ComputedStyleDeclaration{
				values:   map[string]string{"display": own},
				textless: r.textless,
			}
		}

		font := resolveFontSize(values["font-size"], parentFont, rootFont)
		values["font-size"] = formatPx(font)
		if i == 0 {
			rootFont = font
		}
		r.resolveLengths(values, font, rootFont, cbWidth)
		usedWidth := resolveUsedWidth(values, cbWidth)

		if last {
			tracer().Debugf("computed style for <%s>: %d properties", el.LocalName(), len(values))
			return &ComputedStyleDeclaration{values: values, textless: r.textless}
		}
		parent = values
		parentFont = font
		cbWidth = usedWidth
	}

	return &ComputedStyleDeclaration{values: map[string]string{}, textless: r.textless}
}

// cascade resolves the specified values for one element against its
// parent's computed values.
func (r *Resolver) cascade(el *dom.Element, parent map[string]string) map[string]string {
	values := make(map[string]string, len(PropertyDefaults))
	for prop, def := range PropertyDefaults {
		if def.Inherited && parent != nil {
			if pv, ok := parent[prop]; ok {
				values[prop] = pv
				continue
			}
		}
		values[prop] = def.InitialValue
	}

	decls := r.matchedDeclarations(el)
	sortByPrecedence(decls)
	for _, d := range decls {
		applyDeclaration(values, d, parent)
	}
	return values
}

// Cascade layers, lowest precedence first. Important declarations invert
// the origin order, with inline importance above author importance.
const (
	layerUserAgent = iota
	layerAuthor
	layerInline
	layerAuthorImportant
	layerInlineImportant
	layerUserAgentImportant
)

type matchedDeclaration struct {
	property    string
	value       string
	layer       int
	specificity cascadia.Specificity
	order       int
}

func (r *Resolver) matchedDeclarations(el *dom.Element) []matchedDeclaration {
	var matched []matchedDeclaration
	order := 0

	collect := func(sheet *StyleSheet, normal, important int) {
		for _, rule := range sheet.Rules() {
			sel, ok := matchingSelector(rule, el)
			if !ok {
				continue
			}
			spec := sel.Specificity()
			style := rule.Style()
			for _, prop := range style.Properties() {
				layer := normal
				if style.GetPropertyPriority(prop) == "important" {
					layer = important
				}
				matched = append(matched, matchedDeclaration{
					property:    prop,
					value:       style.GetPropertyValue(prop),
					layer:       layer,
					specificity: spec,
					order:       order,
				})
			}
			order++
		}
	}

	collect(UserAgentSheet(), layerUserAgent, layerUserAgentImportant)
	for _, sheet := range r.StyleSheets() {
		collect(sheet, layerAuthor, layerAuthorImportant)
	}

	inline := el.Style()
	for _, prop := range inline.Properties() {
		layer := layerInline
		if inline.GetPropertyPriority(prop) == "important" {
			layer = layerInlineImportant
		}
		matched = append(matched, matchedDeclaration{
			property: prop,
			value:    inline.GetPropertyValue(prop),
			layer:    layer,
			order:    order,
		})
		order++
	}
	return matched
}

// matchingSelector returns the first selector in the rule's group that
// matches the element.
func matchingSelector(rule *StyleRule, el *dom.Element) (cascadia.Sel, bool) {
	for _, s := range rule.Selectors() {
		if s.Match(el.Node()) {
			return s, true
		}
	}
	return nil, false
}

// sortByPrecedence sorts by cascade layer, then specificity, then source
// order, so that later entries override earlier ones on application.
func sortByPrecedence(decls []matchedDeclaration) {
	sort.SliceStable(decls, func(i, j int) bool {
		a, b := decls[i], decls[j]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		if a.specificity != b.specificity {
			return a.specificity.Less(b.specificity)
		}
		return a.order < b.order
	})
}

// applyDeclaration applies one declaration, handling the CSS-wide keywords.
func applyDeclaration(values map[string]string, d matchedDeclaration, parent map[string]string) {
	switch strings.ToLower(d.value) {
	case "inherit":
		if parent != nil {
			if pv, ok := parent[d.property]; ok {
				values[d.property] = pv
			}
		}
	case "initial", "revert":
		if def, ok := PropertyDefaults[d.property]; ok {
			values[d.property] = def.InitialValue
		} else {
			delete(values, d.property)
		}
	case "unset":
		def, known := PropertyDefaults[d.property]
		if known && def.Inherited && parent != nil {
			if pv, ok := parent[d.property]; ok {
				values[d.property] = pv
				return
			}
		}
		if known {
			values[d.property] = def.InitialValue
		} else {
			delete(values, d.property)
		}
	default:
		values[d.property] = d.value
	}
}

var dimensionPattern = regexp.MustCompile(`(?i)^([+-]?(?:\d+\.?\d*|\.\d+))(px|em|rem|pt|pc|in|cm|mm|q|ex|ch|vw|vh|vmin|vmax|%)$`)

// parseDimension splits "12.5px" into (12.5, "px", true).
func parseDimension(value string) (float64, string, bool) {
	m := dimensionPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return n, strings.ToLower(m[2]), true
}

// percentageProperties resolve percentages against the containing block
// width.
var percentageProperties = map[string]bool{
	"width": true, "min-width": true, "max-width": true,
	"left": true, "right": true, "text-indent": true,
	"margin-left": true, "margin-right": true,
	"padding-left": true, "padding-right": true,
}

// resolveLengths converts relative and absolute units to pixel values in
// place. Values that are not a single dimension (keywords, colors,
// shorthands) pass through untouched.
func (r *Resolver) resolveLengths(values map[string]string, fontSize, rootFontSize, cbWidth float64) {
	for prop, val := range values {
		if prop == "font-size" {
			continue
		}
		n, unit, ok := parseDimension(val)
		if !ok {
			continue
		}
		switch unit {
		case "px":
			values[prop] = formatPx(n)
		case "em":
			values[prop] = formatPx(n * fontSize)
		case "rem":
			values[prop] = formatPx(n * rootFontSize)
		case "pt":
			values[prop] = formatPx(n * 96 / 72)
		case "pc":
			values[prop] = formatPx(n * 16)
		case "in":
			values[prop] = formatPx(n * 96)
		case "cm":
			values[prop] = formatPx(n * 96 / 2.54)
		case "mm":
			values[prop] = formatPx(n * 96 / 25.4)
		case "q":
			values[prop] = formatPx(n * 96 / 101.6)
		case "ex", "ch":
			values[prop] = formatPx(n * fontSize * 0.5)
		case "vw":
			values[prop] = formatPx(n / 100 * float64(r.viewportWidth))
		case "vh":
			values[prop] = formatPx(n / 100 * float64(r.viewportHeight))
		case "vmin", "vmax":
			w, h := float64(r.viewportWidth), float64(r.viewportHeight)
			side := w
			if (unit == "vmin") == (h < w) {
				side = h
			}
			values[prop] = formatPx(n / 100 * side)
		case "%":
			if percentageProperties[prop] {
				values[prop] = formatPx(n / 100 * cbWidth)
			}
		}
	}
}

// resolveFontSize resolves the element's font-size to pixels.
func resolveFontSize(value string, parentFontSize, rootFontSize float64) float64 {
	switch strings.ToLower(value) {
	case "medium", "":
		return defaultFontSize
	case "small":
		return defaultFontSize * 8 / 9
	case "large":
		return defaultFontSize * 6 / 5
	case "smaller":
		return parentFontSize / 1.2
	case "larger":
		return parentFontSize * 1.2
	}
	n, unit, ok := parseDimension(value)
	if !ok {
		return parentFontSize
	}
	switch unit {
	case "px":
		return n
	case "em":
		return n * parentFontSize
	case "rem":
		return n * rootFontSize
	case "%":
		return n / 100 * parentFontSize
	case "pt":
		return n * 96 / 72
	default:
		return parentFontSize
	}
}

// blockLevelDisplays generate boxes that fill their containing block.
var blockLevelDisplays = map[string]bool{
	"block": true, "flex": true, "grid": true,
	"table": true, "list-item": true,
}

// resolveUsedWidth resolves an auto width on a block-level box to the
// containing block width minus horizontal margins, and returns the used
// width this element provides as a containing block.
func resolveUsedWidth(values map[string]string, cbWidth float64) float64 {
	if w, ok := parsePx(values["width"]); ok {
		return w
	}
	if blockLevelDisplays[values["display"]] && values["width"] == "auto" {
		used := cbWidth
		if m, ok := parsePx(values["margin-left"]); ok {
			used -= m
		}
		if m, ok := parsePx(values["margin-right"]); ok {
			used -= m
		}
		if used < 0 {
			used = 0
		}
		values["width"] = formatPx(used)
		return used
	}
	return cbWidth
}

// parsePx parses "12px" or "0" into a pixel count.
func parsePx(value string) (float64, bool) {
	if value == "0" {
		return 0, true
	}
	n, unit, ok := parseDimension(value)
	if !ok || unit != "px" {
		return 0, false
	}
	return n, true
}

func formatPx(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + "px"
}
