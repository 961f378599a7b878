package qa

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases question, tokenizes it and keeps only tokens made
// entirely of letters and digits, joined by single spaces. Input without any
// such token yields the empty string.
func Normalize(question string) string {
	lowered := cases.Lower(language.Und).String(question)

	tokens := Tokenize(lowered)
	kept := tokens[:0]
	for _, tok := range tokens {
		if isAlnum(tok) {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

func isAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
