package analyzer

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer turns text into lowercase word tokens. A token is a maximal run
// of letters, numbers (any Unicode number: 3, ², ½, Ⅻ) and underscores;
// everything else separates tokens.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize lowercases text and returns its tokens in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	// cases.Caser keeps state between calls, so a fresh one per call.
	return splitWords(cases.Lower(language.Und).String(text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// splitWords returns the maximal word-rune runs of text as substrings.
func splitWords(text string) []string {
	words := []string{}
	start := -1

	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}

	return words
}
