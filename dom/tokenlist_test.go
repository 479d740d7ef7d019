package dom

import "testing"

func TestTokenListBasic(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()

	if cl.Length() != 0 {
		t.Errorf("expected empty list, got length %d", cl.Length())
	}

	if err := cl.Add("a", "b"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if el.GetAttribute("class") != "a b" {
		t.Errorf("expected class 'a b', got %q", el.GetAttribute("class"))
	}
	if !cl.Has("a") || !cl.Has("b") || cl.Has("c") {
		t.Error("unexpected membership")
	}

	// Adding a present token is a no-op
	if err := cl.Add("a"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if cl.Length() != 2 {
		t.Errorf("expected length 2, got %d", cl.Length())
	}
}

func TestTokenListRemove(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("class", "a b c")
	cl := el.ClassList()

	if err := cl.Remove("b"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if el.GetAttribute("class") != "a c" {
		t.Errorf("expected class 'a c', got %q", el.GetAttribute("class"))
	}

	// Removing the last tokens clears the existing attribute but keeps it
	cl.Remove("a", "c")
	if !el.HasAttribute("class") {
		t.Error("expected class attribute to remain, empty")
	}
	if el.GetAttribute("class") != "" {
		t.Errorf("expected empty class attribute, got %q", el.GetAttribute("class"))
	}
}

func TestTokenListRemoveNeverCreatesAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.ClassList().Remove("ghost")
	if el.HasAttribute("class") {
		t.Error("expected no class attribute to be created")
	}
}

func TestTokenListToggle(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()

	on, err := cl.Toggle("x")
	if err != nil || !on {
		t.Fatalf("expected toggle on, got %v, %v", on, err)
	}
	if !cl.Has("x") {
		t.Error("expected x present after toggle")
	}

	on, err = cl.Toggle("x")
	if err != nil || on {
		t.Fatalf("expected toggle off, got %v, %v", on, err)
	}
	if cl.Has("x") {
		t.Error("expected x absent after second toggle")
	}
}

func TestTokenListValidation(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()

	if err := cl.Add(""); err == nil {
		t.Error("expected error for empty token")
	}
	if err := cl.Add("a b"); err == nil {
		t.Error("expected error for token with whitespace")
	}
	if cl.Has("") || cl.Has("a b") {
		t.Error("expected invalid tokens to report absent")
	}
}

func TestTokenListDeduplicates(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("class", "a  b a  c b")

	values := el.ClassList().Values()
	if len(values) != 3 || values[0] != "a" || values[1] != "b" || values[2] != "c" {
		t.Errorf("expected deduplicated [a b c], got %v", values)
	}
}
