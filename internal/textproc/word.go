package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

func (t *implTokenizer) Words(text string) []string {
	// A Caser keeps state, so one is built per call.
	folded := cases.Fold().String(norm.NFKC.String(text))

	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !isWordRune(r)
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'’")
		if f == "" || !strings.ContainsFunc(f, isAlphanumeric) {
			continue
		}
		if t.stopWords && t.rules.stopWords[f] {
			continue
		}
		words = append(words, f)
	}
	return words
}

func (t *implTokenizer) WordCount(text string) int {
	return len(strings.Fields(text))
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWordRune(r rune) bool {
	return isAlphanumeric(r) || unicode.Is(unicode.Mn, r) || r == '\'' || r == '’'
}
