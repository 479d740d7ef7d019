package dom

import (
	"fmt"
	"strings"
)

// TokenList represents a set of space-separated tokens backed by an
// attribute, as used for Element.ClassList. The list holds no state of its
// own: reads parse the attribute, writes serialize back to it.
type TokenList struct {
	element  *Element
	attrName string
}

func newTokenList(element *Element, attrName string) *TokenList {
	return &TokenList{element: element, attrName: attrName}
}

// validateToken checks a token per the DOMTokenList rules: not empty, no
// ASCII whitespace.
func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("SyntaxError: the token provided must not be empty")
	}
	if strings.ContainsAny(token, " \t\n\r\f") {
		return fmt.Errorf("InvalidCharacterError: the token %q contains HTML space characters", token)
	}
	return nil
}

// tokens returns the current tokens, deduplicated, preserving order.
func (tl *TokenList) tokens() []string {
	value := tl.element.GetAttribute(tl.attrName)
	if value == "" {
		return nil
	}
	fields := strings.Fields(value)
	seen := make(map[string]bool, len(fields))
	result := make([]string, 0, len(fields))
	for _, tok := range fields {
		if !seen[tok] {
			seen[tok] = true
			result = append(result, tok)
		}
	}
	return result
}

// setTokens writes tokens back to the attribute. An empty list only clears
// the attribute when it already exists; it never creates one.
func (tl *TokenList) setTokens(tokens []string) {
	if len(tokens) > 0 {
		tl.element.SetAttribute(tl.attrName, strings.Join(tokens, " "))
		return
	}
	if tl.element.HasAttribute(tl.attrName) {
		tl.element.SetAttribute(tl.attrName, "")
	}
}

// Length returns the number of tokens.
func (tl *TokenList) Length() int {
	return len(tl.tokens())
}

// Has reports whether token is in the list. Invalid tokens report false.
func (tl *TokenList) Has(token string) bool {
	if validateToken(token) != nil {
		return false
	}
	for _, t := range tl.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends tokens not already present.
func (tl *TokenList) Add(tokens ...string) error {
	for _, tok := range tokens {
		if err := validateToken(tok); err != nil {
			return err
		}
	}
	current := tl.tokens()
	for _, tok := range tokens {
		present := false
		for _, t := range current {
			if t == tok {
				present = true
				break
			}
		}
		if !present {
			current = append(current, tok)
		}
	}
	tl.setTokens(current)
	return nil
}

// Remove removes the given tokens.
func (tl *TokenList) Remove(tokens ...string) error {
	for _, tok := range tokens {
		if err := validateToken(tok); err != nil {
			return err
		}
	}
	drop := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		drop[tok] = true
	}
	var result []string
	for _, t := range tl.tokens() {
		if !drop[t] {
			result = append(result, t)
		}
	}
	tl.setTokens(result)
	return nil
}

// Toggle flips the presence of token and reports whether it is present
// afterwards.
func (tl *TokenList) Toggle(token string) (bool, error) {
	if err := validateToken(token); err != nil {
		return false, err
	}
	if tl.Has(token) {
		return false, tl.Remove(token)
	}
	return true, tl.Add(token)
}

// Values returns the tokens in order.
func (tl *TokenList) Values() []string {
	return tl.tokens()
}

// String returns the raw attribute value.
func (tl *TokenList) String() string {
	return tl.element.GetAttribute(tl.attrName)
}
