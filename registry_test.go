package hiddenstyle

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/voidwalk/hiddenstyle/css"
)

func TestInertSheetCreation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hiddenstyle")
	defer teardown()
	doc := parseContextDoc(t, `<html><head><title>t</title></head><body></body></html>`)
	cx := NewContext(doc)

	sheet := cx.InertSheet()
	require.NotNil(t, sheet)

	owner := sheet.Owner()
	require.NotNil(t, owner)
	require.Equal(t, "style", owner.LocalName())
	require.Equal(t, InertSheetTag, owner.GetAttribute(css.SheetTagAttribute))
	require.Same(t, owner, doc.Head().FirstElementChild(), "sheet owner must be the first child of head")

	require.Len(t, sheet.Rules(), 1)
	rule := sheet.Rules()[0]
	require.Equal(t, "."+InertClass, rule.SelectorText())

	style := rule.Style()
	require.Equal(t, "absolute", style.GetPropertyValue("position"))
	require.Equal(t, "block", style.GetPropertyValue("display"))
	require.Equal(t, "hidden", style.GetPropertyValue("visibility"))
	require.Equal(t, "-1", style.GetPropertyValue("z-index"))
	require.Equal(t, "none", style.GetPropertyValue("user-select"))
	require.Equal(t, "none", style.GetPropertyValue("pointer-events"))
}

func TestInertSheetIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hiddenstyle")
	defer teardown()
	doc := parseContextDoc(t, `<html><head></head><body></body></html>`)
	cx := NewContext(doc)

	first := cx.InertSheet()
	second := cx.InertSheet()
	require.Same(t, first, second)
	require.Len(t, doc.QuerySelectorAll("style"), 1, "repeated acquisition must not insert more owners")
}

func TestInertSheetFoundByTagAcrossContexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hiddenstyle")
	defer teardown()
	doc := parseContextDoc(t, `<html><head></head><body></body></html>`)

	NewContext(doc).InertSheet()

	// A fresh context on the same document reuses the existing owner
	cx := NewContext(doc)
	sheet := cx.InertSheet()
	require.NotNil(t, sheet)
	require.Len(t, doc.QuerySelectorAll("style"), 1)
	require.Len(t, sheet.Rules(), 1)
}

func TestSheetByTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hiddenstyle")
	defer teardown()
	doc := parseContextDoc(t, `<html><head>
		<style data-sheet-tag="alpha">p { color: red }</style>
		<style>q { color: blue }</style>
		<style data-sheet-tag="alpha">r { color: green }</style>
	</head><body></body></html>`)
	cx := NewContext(doc)

	sheet := cx.SheetByTag("alpha")
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rules(), 1)
	require.Equal(t, "p", sheet.Rules()[0].SelectorText(), "lookup must return the first match in document order")

	require.Nil(t, cx.SheetByTag("missing"))
}

func TestPageRuleOverridesInertRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hiddenstyle")
	defer teardown()
	doc := parseContextDoc(t, `<html><head><style>
		.inert { visibility: visible }
	</style></head><body><div id="d" class="inert">x</div></body></html>`)
	cx := NewContext(doc)

	cx.InertSheet()
	require.Same(t, cx.InertSheet().Owner(), doc.Head().FirstElementChild())

	// The scratch sheet sits before all page sheets, so equal-specificity
	// page rules win by source order.
	cs := cx.ComputedStyle(doc.GetElementByID("d"))
	require.Equal(t, "visible", cs.GetPropertyValue("visibility"))
	require.Equal(t, "none", cs.GetPropertyValue("pointer-events"))
}
