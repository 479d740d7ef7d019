package hiddenstyle

import (
	"regexp"
	"sort"
	"strings"

	"github.com/voidwalk/hiddenstyle/dom"
)

// Declaration is the read surface shared by inline style declarations,
// rule declarations, computed styles and snapshots.
type Declaration interface {
	GetPropertyValue(property string) string
	Properties() []string
	CSSText() string
}

// MutableDeclaration is a Declaration whose properties can be changed:
// inline and rule style declarations.
type MutableDeclaration interface {
	Declaration
	SetProperty(property, value string, priority ...string)
	RemoveProperty(property string) string
}

// StyleSnapshot is a plain property-to-value mapping taken from a live
// declaration at one point in time. Keys are camelCase. It is not a live
// view: later DOM changes do not affect it.
type StyleSnapshot struct {
	props   map[string]string
	cssText string
}

// NewSnapshot copies a live declaration's properties into a snapshot. The
// declaration's combined text form is carried over only when non-empty:
// engines that report an empty text form get no text field at all, so
// downstream code can treat its absence as "rebuild from properties".
func NewSnapshot(decl Declaration) *StyleSnapshot {
	s := &StyleSnapshot{props: make(map[string]string)}
	for _, prop := range decl.Properties() {
		s.props[dom.CamelCase(prop)] = decl.GetPropertyValue(prop)
	}
	s.cssText = decl.CSSText()
	return s
}

// Get returns the value for a property, accepting either camelCase or
// kebab-case names. "" when absent.
func (s *StyleSnapshot) Get(property string) string {
	if v, ok := s.props[property]; ok {
		return v
	}
	return s.props[dom.CamelCase(property)]
}

// GetPropertyValue is Get under the shared Declaration surface.
func (s *StyleSnapshot) GetPropertyValue(property string) string {
	return s.Get(property)
}

// Properties returns the snapshot's property names (camelCase), sorted.
func (s *StyleSnapshot) Properties() []string {
	props := make([]string, 0, len(s.props))
	for p := range s.props {
		props = append(props, p)
	}
	sort.Strings(props)
	return props
}

// CSSText returns the captured combined text form, or "" when the source
// declaration had none.
func (s *StyleSnapshot) CSSText() string {
	return s.cssText
}

// HasCSSText reports whether a combined text form was captured.
func (s *StyleSnapshot) HasCSSText() bool {
	return s.cssText != ""
}

// Len returns the number of properties.
func (s *StyleSnapshot) Len() int {
	return len(s.props)
}

// RemoveProperty deletes a property from the snapshot and strips the
// matching "prop: value;" fragment from the captured text form. Returns
// the old value; no-op for absent properties.
func (s *StyleSnapshot) RemoveProperty(property string) string {
	camel := dom.CamelCase(property)
	old, ok := s.props[camel]
	if !ok {
		return ""
	}
	delete(s.props, camel)
	if s.cssText != "" {
		kebab := dom.KebabCase(property)
		pattern := regexp.MustCompile(`(?i)(^|;)\s*` + regexp.QuoteMeta(kebab) + `\s*:[^;]*(;|$)`)
		s.cssText = strings.Trim(pattern.ReplaceAllString(s.cssText, "$1"), "; \t")
	}
	return old
}

// CSSTextFromStyle serializes a declaration to a single CSS text string.
// When the declaration already carries a non-empty combined text form it is
// returned verbatim; otherwise the text is rebuilt as "key: value; " pairs
// over every property the declaration enumerates. Enumeration order is the
// host's, not declaration order; callers may rely on it only for
// human-readable output.
func CSSTextFromStyle(decl Declaration) string {
	if text := decl.CSSText(); text != "" {
		return text
	}
	var sb strings.Builder
	for _, prop := range decl.Properties() {
		sb.WriteString(prop)
		sb.WriteString(": ")
		sb.WriteString(decl.GetPropertyValue(prop))
		sb.WriteString("; ")
	}
	return sb.String()
}
