package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Text is a string in comparable form: its distinct lowercase alphanumeric
// tokens in first-seen order, and the lowercased whole string with
// surrounding whitespace trimmed.
type Text struct {
	Tokens []string
	Phrase string

	set map[string]struct{}
}

// Normalize tokenizes s. It is used for skill fields at load time and for
// queries at match time; both sides must go through it for membership tests
// to mean anything.
func Normalize(s string) Text {
	lower := cases.Lower(language.Und).String(s)

	t := Text{
		Phrase: strings.TrimSpace(lower),
		set:    make(map[string]struct{}),
	}
	for _, tok := range strings.FieldsFunc(lower, isSeparator) {
		if _, seen := t.set[tok]; seen {
			continue
		}
		t.set[tok] = struct{}{}
		t.Tokens = append(t.Tokens, tok)
	}
	return t
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

// Has reports whether tok is one of t's tokens.
func (t Text) Has(tok string) bool {
	_, ok := t.set[tok]
	return ok
}

// Overlap counts how many of q's tokens appear in t.
func (t Text) Overlap(q Text) int {
	n := 0
	for _, tok := range q.Tokens {
		if t.Has(tok) {
			n++
		}
	}
	return n
}

// Contains reports whether phrase occurs verbatim in t's whole-string form.
// The empty phrase is never contained.
func (t Text) Contains(phrase string) bool {
	return phrase != "" && strings.Contains(t.Phrase, phrase)
}
