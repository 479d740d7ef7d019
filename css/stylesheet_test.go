package css

import (
	"strings"
	"testing"

	"github.com/voidwalk/hiddenstyle/dom"
)

func TestNewStyleSheet(t *testing.T) {
	sheet := NewStyleSheet(`
		div > p { color: red; margin-top: 4px }
		.note { color: blue !important }
	`, nil)

	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].SelectorText() != "div > p" {
		t.Errorf("expected selector 'div > p', got %q", rules[0].SelectorText())
	}
	if rules[0].Style().GetPropertyValue("color") != "red" {
		t.Errorf("unexpected color: %q", rules[0].Style().GetPropertyValue("color"))
	}
	if rules[1].Style().GetPropertyPriority("color") != "important" {
		t.Error("expected important priority")
	}
}

func TestNewStyleSheetSkipsAtRules(t *testing.T) {
	sheet := NewStyleSheet(`
		@media screen { div { color: red } }
		p { color: blue }
	`, nil)

	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if rules[0].SelectorText() != "p" {
		t.Errorf("expected selector 'p', got %q", rules[0].SelectorText())
	}
}

func TestInsertRule(t *testing.T) {
	sheet := NewStyleSheet("p { color: red }", nil)

	index, err := sheet.InsertRule(".first { color: blue }", 0)
	if err != nil {
		t.Fatalf("InsertRule failed: %v", err)
	}
	if index != 0 {
		t.Errorf("expected index 0, got %d", index)
	}
	if sheet.Rules()[0].SelectorText() != ".first" {
		t.Error("expected inserted rule at index 0")
	}
	if sheet.Rules()[1].SelectorText() != "p" {
		t.Error("expected existing rule shifted to index 1")
	}

	if _, err := sheet.InsertRule(".last { color: green }", 2); err != nil {
		t.Fatalf("InsertRule at end failed: %v", err)
	}
	if sheet.Rules()[2].SelectorText() != ".last" {
		t.Error("expected rule appended at end")
	}
}

func TestInsertRuleErrors(t *testing.T) {
	sheet := NewStyleSheet("p { color: red }", nil)

	if _, err := sheet.InsertRule("not a rule", 0); err == nil {
		t.Error("expected SyntaxError for invalid rule")
	}
	if _, err := sheet.InsertRule(".x { color: blue }", 5); err == nil {
		t.Error("expected IndexSizeError for out-of-bounds index")
	}
	if _, err := sheet.InsertRule(".x { color: blue }", -1); err == nil {
		t.Error("expected IndexSizeError for negative index")
	}
	if len(sheet.Rules()) != 1 {
		t.Errorf("expected sheet unchanged after errors, got %d rules", len(sheet.Rules()))
	}
}

func TestDeleteRule(t *testing.T) {
	sheet := NewStyleSheet("p { color: red }\n.x { color: blue }", nil)

	if err := sheet.DeleteRule(0); err != nil {
		t.Fatalf("DeleteRule failed: %v", err)
	}
	if len(sheet.Rules()) != 1 || sheet.Rules()[0].SelectorText() != ".x" {
		t.Error("expected first rule removed")
	}
	if err := sheet.DeleteRule(1); err == nil {
		t.Error("expected IndexSizeError for out-of-bounds index")
	}
}

func TestSheetTag(t *testing.T) {
	doc := dom.NewDocument()
	owner := doc.CreateElement("style")
	owner.SetAttribute(SheetTagAttribute, "scratch")

	sheet := NewStyleSheet("", owner)
	if sheet.Tag() != "scratch" {
		t.Errorf("expected tag 'scratch', got %q", sheet.Tag())
	}
	if sheet.Owner() != owner {
		t.Error("expected owner element")
	}

	anon := NewStyleSheet("", nil)
	if anon.Tag() != "" {
		t.Errorf("expected empty tag for ownerless sheet, got %q", anon.Tag())
	}
}

func TestSheetCSSText(t *testing.T) {
	sheet := NewStyleSheet("p { color: red; width: 4px }\n.x { color: blue !important }", nil)

	text := sheet.CSSText()
	want := "p { color: red; width: 4px }\n.x { color: blue !important }"
	if text != want {
		t.Errorf("unexpected serialization:\n got %q\nwant %q", text, want)
	}
}

func TestRuleStyleDeclarationMutation(t *testing.T) {
	sheet := NewStyleSheet(".x { color: red; width: 4px }", nil)
	style := sheet.Rules()[0].Style()

	style.SetProperty("color", "green")
	if style.GetPropertyValue("color") != "green" {
		t.Error("expected color replaced")
	}
	if got := style.Properties(); len(got) != 2 || got[0] != "color" {
		t.Errorf("expected declaration order preserved, got %v", got)
	}

	style.SetProperty("display", "none", "important")
	if style.GetPropertyPriority("display") != "important" {
		t.Error("expected important priority")
	}

	if old := style.RemoveProperty("width"); old != "4px" {
		t.Errorf("expected old value '4px', got %q", old)
	}
	if style.Length() != 2 {
		t.Errorf("expected 2 properties, got %d", style.Length())
	}

	// Empty value removes
	style.SetProperty("display", "")
	if style.GetPropertyValue("display") != "" {
		t.Error("expected display removed by empty value")
	}
}

func TestRuleSelectorsCompileLazily(t *testing.T) {
	sheet := NewStyleSheet(".x { color: red }\n..bad { color: blue }", nil)
	if len(sheet.Rules()) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules()))
	}

	if sheet.Rules()[0].Selectors() == nil {
		t.Error("expected compiled selector group")
	}
	// Unparsable selectors match nothing but stay in the rule list
	if sheet.Rules()[1].Selectors() != nil {
		t.Error("expected nil selector group for unparsable selector")
	}
	if !strings.Contains(sheet.Rules()[1].SelectorText(), "bad") {
		t.Error("expected selector text preserved verbatim")
	}
}
