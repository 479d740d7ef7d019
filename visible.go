package hiddenstyle

import (
	"github.com/voidwalk/hiddenstyle/dom"
)

// displayOverrides are forced, in order, onto the inline style of every
// hidden element in the ancestor chain during a visible-style resolution.
// display:block makes the subtree participate in style computation again;
// absolute positioning, zero opacity and the off-screen offset guarantee
// nothing ever becomes visible in normal flow while the overrides are held.
var displayOverrides = [...]struct {
	property string
	value    string
}{
	{"display", "block"},
	{"position", "absolute"},
	{"opacity", "0"},
	{"top", "-999999px"},
}

// savedProperty remembers one inline property's pre-override state. Only
// properties that actually had an inline value get an entry: restoration
// must remove the others, not set them to an empty string.
type savedProperty struct {
	property string
	value    string
	priority string
}

// overrideRecord tracks the overrides forced onto one element.
type overrideRecord struct {
	element *dom.Element
	saved   []savedProperty
}

// VisibleComputedStyle returns the element's computed style as if it and
// every ancestor were currently displayed, with zero net effect on the DOM:
// after the call returns, every touched inline style is exactly what it was
// before, property by property, including absence.
func (cx *Context) VisibleComputedStyle(el *dom.Element) *StyleSnapshot {
	records, release := cx.acquireOverrides(el)
	defer release()
	if len(records) > 0 {
		tracer().Debugf("forced %d hidden ancestor(s) visible for <%s>", len(records), el.LocalName())
	}

	return NewSnapshot(cx.resolver.ComputedStyle(el))
}

// acquireOverrides walks from el through its ancestor chain, forcing the
// display overrides (with important priority, so they survive any cascade
// rule) onto every element whose current computed display is "none". The
// returned records are in root-to-leaf order. The release function undoes
// every override and must run on all exit paths.
func (cx *Context) acquireOverrides(el *dom.Element) ([]*overrideRecord, func()) {
	var records []*overrideRecord
	for e := el; e != nil; e = e.ParentElement() {
		if cx.resolver.ComputedStyle(e).GetPropertyValue("display") != "none" {
			continue
		}
		rec := &overrideRecord{element: e}
		style := e.Style()
		for _, ov := range displayOverrides {
			if value := style.GetPropertyValue(ov.property); value != "" {
				rec.saved = append(rec.saved, savedProperty{
					property: ov.property,
					value:    value,
					priority: style.GetPropertyPriority(ov.property),
				})
			}
			style.SetProperty(ov.property, ov.value, "important")
		}
		records = append([]*overrideRecord{rec}, records...)
	}

	release := func() {
		for i := len(records) - 1; i >= 0; i-- {
			restoreOverrides(records[i])
		}
	}
	return records, release
}

// restoreOverrides removes all override properties from the element's
// inline style unconditionally, then re-applies the properties that had an
// original inline value with their original priority.
func restoreOverrides(rec *overrideRecord) {
	style := rec.element.Style()
	for _, ov := range displayOverrides {
		style.RemoveProperty(ov.property)
	}
	for _, sp := range rec.saved {
		if sp.priority != "" {
			style.SetProperty(sp.property, sp.value, sp.priority)
		} else {
			style.SetProperty(sp.property, sp.value)
		}
	}
}
