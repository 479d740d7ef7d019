package hiddenstyle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voidwalk/hiddenstyle/css"
	"github.com/voidwalk/hiddenstyle/dom"
)

func inlineDecl(t *testing.T, cssText string) *dom.CSSStyleDeclaration {
	t.Helper()
	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("style", cssText)
	return el.Style()
}

func TestSnapshotCopiesProperties(t *testing.T) {
	decl := inlineDecl(t, "background-color: red; z-index: 3")
	snap := NewSnapshot(decl)

	require.Equal(t, 2, snap.Len())
	require.Equal(t, "red", snap.Get("backgroundColor"))
	require.Equal(t, "red", snap.Get("background-color"))
	require.Equal(t, "3", snap.Get("zIndex"))
	require.Equal(t, "", snap.Get("color"))
	require.Equal(t, []string{"backgroundColor", "zIndex"}, snap.Properties())
}

func TestSnapshotIsNotLive(t *testing.T) {
	decl := inlineDecl(t, "color: red")
	snap := NewSnapshot(decl)

	decl.SetProperty("color", "blue")
	require.Equal(t, "red", snap.Get("color"))
}

func TestSnapshotCSSText(t *testing.T) {
	decl := inlineDecl(t, "color: red; width: 4px")
	snap := NewSnapshot(decl)

	require.True(t, snap.HasCSSText())
	require.Equal(t, "color: red; width: 4px", snap.CSSText())
}

func TestSnapshotRemoveProperty(t *testing.T) {
	cases := []struct {
		name     string
		remove   string
		wantText string
	}{
		{"first", "color", "width: 4px; top: 1px"},
		{"middle", "width", "color: red; top: 1px"},
		{"last", "top", "color: red; width: 4px"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snap := NewSnapshot(inlineDecl(t, "color: red; width: 4px; top: 1px"))
			old := snap.RemoveProperty(c.remove)
			require.NotEqual(t, "", old)
			require.Equal(t, "", snap.Get(c.remove))
			require.Equal(t, 2, snap.Len())
			require.Equal(t, c.wantText, snap.CSSText())
		})
	}
}

func TestSnapshotRemovePropertyCamelCase(t *testing.T) {
	snap := NewSnapshot(inlineDecl(t, "background-color: red; color: blue"))

	old := snap.RemoveProperty("backgroundColor")
	require.Equal(t, "red", old)
	require.Equal(t, "", snap.Get("background-color"))
	require.Equal(t, "color: blue", snap.CSSText())

	require.Equal(t, "", snap.RemoveProperty("ghost"))
}

func TestCSSTextFromStyleVerbatim(t *testing.T) {
	decl := inlineDecl(t, "color: red; width: 4px")
	require.Equal(t, "color: red; width: 4px", CSSTextFromStyle(decl))
}

func TestCSSTextFromStyleRebuilds(t *testing.T) {
	doc := parseContextDoc(t, `<html><body><div id="d">x</div></body></html>`)
	cx := NewContext(doc, css.WithTextlessComputedStyles())

	computed := cx.ComputedStyle(doc.GetElementByID("d"))
	require.Equal(t, "", computed.CSSText())

	text := CSSTextFromStyle(computed)
	require.Contains(t, text, "display: block; ")
	require.Contains(t, text, "visibility: visible; ")
}
