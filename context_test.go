package hiddenstyle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voidwalk/hiddenstyle/css"
	"github.com/voidwalk/hiddenstyle/dom"
)

func parseContextDoc(t *testing.T, src string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(src)
	require.NoError(t, err, "cannot parse document")
	return doc
}

func TestContextAccessors(t *testing.T) {
	doc := parseContextDoc(t, `<html><body><div id="d">x</div></body></html>`)
	cx := NewContext(doc)

	require.Same(t, doc, cx.Document())
	require.NotNil(t, cx.Resolver())
	require.Same(t, doc, cx.Resolver().Document())
}

func TestContextsAreIndependent(t *testing.T) {
	docA := parseContextDoc(t, `<html><head></head><body></body></html>`)
	docB := parseContextDoc(t, `<html><head></head><body></body></html>`)
	cxA := NewContext(docA)
	cxB := NewContext(docB)

	sheetA := cxA.InertSheet()
	require.NotNil(t, sheetA)

	// The second context's document is untouched by the first's sheet
	require.Nil(t, cxB.SheetByTag(InertSheetTag))
	require.Nil(t, docB.QuerySelector("style"))
}

func TestComputedStyleCSSTextFallback(t *testing.T) {
	src := `<html><body><div id="d">x</div></body></html>`

	doc := parseContextDoc(t, src)
	cx := NewContext(doc)
	div := doc.GetElementByID("d")
	require.Contains(t, cx.ComputedStyleCSSText(div), "display: block")

	// Textless engines get the rebuilt form
	docT := parseContextDoc(t, src)
	cxT := NewContext(docT, css.WithTextlessComputedStyles())
	divT := docT.GetElementByID("d")
	require.Equal(t, "", cxT.ComputedStyle(divT).CSSText())
	require.Contains(t, cxT.ComputedStyleCSSText(divT), "display: block; ")
}
