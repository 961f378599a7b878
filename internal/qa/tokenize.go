package qa

import (
	"regexp"
	"strings"
	"unicode"
)

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

func (r rewrite) apply(s string) string {
	return r.re.ReplaceAllString(s, r.repl)
}

// Treebank-style rewrite rules. They only insert spaces around punctuation
// and contraction suffixes; the token stream is produced by strings.Fields.
var (
	startingQuotes = []rewrite{
		{regexp.MustCompile("([«“‘„]|`+)"), " ${1} "},
		{regexp.MustCompile(`^"`), "``"},
		{regexp.MustCompile("(``)"), " ${1} "},
		{regexp.MustCompile(`([ (\[{<])("|'{2})`), "${1} `` "},
	}

	punctuation = []rewrite{
		{regexp.MustCompile(`([^.])(\.)([\])}>"']*)\s*$`), "${1} ${2} ${3} "},
		{regexp.MustCompile(`([:,])([^\d])`), " ${1} ${2}"},
		{regexp.MustCompile(`([:,])$`), " ${1} "},
		{regexp.MustCompile(`\.{2,}`), " ${0} "},
		{regexp.MustCompile(`[;@#$%&]`), " ${0} "},
		{regexp.MustCompile(`[?!]`), " ${0} "},
		{regexp.MustCompile(`([^'])' `), "${1} ' "},
		{regexp.MustCompile(`[*]`), " ${0} "},
		{regexp.MustCompile(`[\]\[(){}<>]`), " ${0} "},
		{regexp.MustCompile(`--`), " -- "},
	}

	endingQuotes = []rewrite{
		{regexp.MustCompile("([»”’])"), " ${1} "},
		{regexp.MustCompile(`''`), " '' "},
		{regexp.MustCompile(`"`), " '' "},
		{regexp.MustCompile(`([^' ])('[sS]|'[mM]|'[dD]|') `), "${1} ${2} "},
		{regexp.MustCompile(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `), "${1} ${2} "},
	}

	contractions = []rewrite{
		{regexp.MustCompile(`(?i)\b(can)(not)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(d)('ye)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(gim)(me)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(gon)(na)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(got)(ta)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(lem)(me)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(more)('n)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(wan)(na)(\s)`), " ${1} ${2}${3}"},
		{regexp.MustCompile(`(?i) ('t)(is)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i) ('t)(was)\b`), " ${1} ${2} "},
	}

	// a quote glued to a one-letter word that is not a contraction suffix
	leadingQuote = regexp.MustCompile(`'(\w)\b`)
)

// Tokenize splits text into word tokens, separating punctuation from adjacent
// words and contraction suffixes from their stems ("what's" -> "what", "'s").
// Words joined by hyphens, plus signs, slashes or digits separators stay a
// single token.
func Tokenize(text string) []string {
	var tokens []string
	for _, sentence := range splitSentences(text) {
		tokens = append(tokens, tokenizeSentence(sentence)...)
	}
	return tokens
}

func tokenizeSentence(s string) []string {
	for _, r := range startingQuotes {
		s = r.apply(s)
	}
	s = leadingQuote.ReplaceAllStringFunc(s, func(m string) string {
		if strings.ContainsAny(strings.ToLower(m[1:]), "mtsdn") {
			return m
		}
		return "' " + m[1:]
	})

	for _, r := range punctuation {
		s = r.apply(s)
	}

	s = " " + s + " "
	for _, r := range endingQuotes {
		s = r.apply(s)
	}
	for _, r := range contractions {
		s = r.apply(s)
	}

	return strings.Fields(s)
}

// splitSentences cuts text after every run of terminal punctuation that is
// followed by whitespace. Abbreviations are not special-cased.
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if !isTerminal(runes[i]) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}
