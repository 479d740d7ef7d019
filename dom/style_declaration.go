package dom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// CSSStyleDeclaration represents an element's inline style. Property names
// are normalized to kebab-case; every mutation is serialized back to the
// element's style attribute, so the attribute and the declaration never
// diverge.
type CSSStyleDeclaration struct {
	element       *Element
	declarations  map[string]*styleProperty
	propertyOrder []string
}

// styleProperty holds a single CSS property's value and priority.
type styleProperty struct {
	value    string
	priority string // "important" or ""
}

func newCSSStyleDeclaration(element *Element) *CSSStyleDeclaration {
	sd := &CSSStyleDeclaration{
		element:      element,
		declarations: make(map[string]*styleProperty),
	}
	if element != nil && element.HasAttribute("style") {
		sd.parseDeclarations(element.GetAttribute("style"))
	}
	return sd
}

// CSSText returns the textual representation of the declaration block.
func (sd *CSSStyleDeclaration) CSSText() string {
	if len(sd.declarations) == 0 {
		return ""
	}
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

// SetCSSText replaces all properties with those parsed from cssText.
func (sd *CSSStyleDeclaration) SetCSSText(cssText string) {
	sd.declarations = make(map[string]*styleProperty)
	sd.propertyOrder = nil
	sd.parseDeclarations(cssText)
	sd.syncToAttribute()
}

// Length returns the number of properties set.
func (sd *CSSStyleDeclaration) Length() int {
	return len(sd.declarations)
}

// Item returns the property name at the given index.
func (sd *CSSStyleDeclaration) Item(index int) string {
	if index < 0 || index >= len(sd.propertyOrder) {
		return ""
	}
	return sd.propertyOrder[index]
}

// GetPropertyValue returns the value of a property, or "" if unset.
func (sd *CSSStyleDeclaration) GetPropertyValue(property string) string {
	if sp, ok := sd.declarations[KebabCase(property)]; ok {
		return sp.value
	}
	return ""
}

// GetPropertyPriority returns "important" or "".
func (sd *CSSStyleDeclaration) GetPropertyPriority(property string) string {
	if sp, ok := sd.declarations[KebabCase(property)]; ok {
		return sp.priority
	}
	return ""
}

// SetProperty sets a property with an optional priority. An empty value
// removes the property.
func (sd *CSSStyleDeclaration) SetProperty(property, value string, priority ...string) {
	property = KebabCase(property)
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
	sd.declarations[property] = &styleProperty{value: value, priority: pri}
	sd.syncToAttribute()
}

// RemoveProperty removes a property and returns its old value. Removing the
// last property removes the style attribute entirely.
func (sd *CSSStyleDeclaration) RemoveProperty(property string) string {
	property = KebabCase(property)
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
	sd.syncToAttribute()
	return sp.value
}

// Properties returns all property names in declaration order.
func (sd *CSSStyleDeclaration) Properties() []string {
	result := make([]string, len(sd.propertyOrder))
	copy(result, sd.propertyOrder)
	return result
}

// parseDeclarations parses a declaration block body into the map.
// Unparsable input yields an empty declaration, never an error.
func (sd *CSSStyleDeclaration) parseDeclarations(text string) {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return
	}
	for _, d := range decls {
		property := KebabCase(d.Property)
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
		sd.declarations[property] = &styleProperty{value: d.Value, priority: pri}
	}
}

// syncToAttribute writes the declaration back to the style attribute.
func (sd *CSSStyleDeclaration) syncToAttribute() {
	if sd.element == nil {
		return
	}
	cssText := sd.CSSText()
	if cssText == "" {
		sd.element.removeAttr("style")
	} else {
		sd.element.setAttr("style", cssText)
	}
}

// refreshFromAttribute reloads declarations after an external attribute
// change.
func (sd *CSSStyleDeclaration) refreshFromAttribute() {
	sd.declarations = make(map[string]*styleProperty)
	sd.propertyOrder = nil
	if sd.element != nil && sd.element.HasAttribute("style") {
		sd.parseDeclarations(sd.element.GetAttribute("style"))
	}
}

// KebabCase normalizes a CSS property name to its kebab-case form.
// "backgroundColor" -> "background-color"; names already containing a dash
// are only lowercased.
func KebabCase(name string) string {
	if name == "" {
		return ""
	}
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteByte(byte(r - 'A' + 'a'))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// CamelCase converts a kebab-case property name to camelCase.
// "background-color" -> "backgroundColor"; a vendor-prefix dash is dropped.
func CamelCase(name string) string {
	if name == "" {
		return ""
	}
	name = strings.TrimPrefix(name, "-")
	parts := strings.Split(name, "-")
	var sb strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			sb.WriteString(part)
		} else {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}
