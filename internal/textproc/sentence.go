package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const terminators = ".!?…"

// closers may trail a terminator and still belong to the sentence.
const closers = `"')]}’”»`

func (t *implTokenizer) Sentences(text string) []Sentence {
	var sentences []Sentence
	start := 0

	emit := func(from, to int) {
		raw := text[from:to]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return
		}
		lead := strings.Index(raw, trimmed)
		sentences = append(sentences, Sentence{
			Index:  len(sentences),
			Text:   trimmed,
			Start:  from + lead,
			End:    from + lead + len(trimmed),
			Tokens: t.Words(trimmed),
		})
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if r == '\n' {
			if next := skipSpaceToNewline(text, i+size); next > 0 {
				emit(start, i)
				start = next
				i = next
				continue
			}
		}

		if !strings.ContainsRune(terminators, r) {
			i += size
			continue
		}

		end := i + size
		single := r == '.'
		for end < len(text) {
			nr, ns := utf8.DecodeRuneInString(text[end:])
			if strings.ContainsRune(terminators, nr) {
				single = false
				end += ns
				continue
			}
			if strings.ContainsRune(closers, nr) {
				end += ns
				continue
			}
			break
		}

		if end < len(text) {
			nr, _ := utf8.DecodeRuneInString(text[end:])
			if !unicode.IsSpace(nr) {
				i = end
				continue
			}
		}

		if single && t.isAbbreviation(text[start:i]) {
			i = end
			continue
		}

		emit(start, end)
		start = end
		i = end
	}

	emit(start, len(text))
	return sentences
}

// skipSpaceToNewline reports the position after a blank line starting at i,
// or 0 when the text at i does not close a paragraph.
func skipSpaceToNewline(text string, i int) int {
	for j := i; j < len(text); {
		r, size := utf8.DecodeRuneInString(text[j:])
		switch {
		case r == '\n':
			return j + size
		case unicode.IsSpace(r):
			j += size
		default:
			return 0
		}
	}
	return 0
}

// isAbbreviation reports whether the word closing the given prefix, followed
// by a period, reads as an abbreviation or an initial rather than a sentence end.
func (t *implTokenizer) isAbbreviation(prefix string) bool {
	word := prefix
	if idx := strings.LastIndexFunc(prefix, unicode.IsSpace); idx >= 0 {
		word = prefix[idx+1:]
	}
	word = strings.TrimLeft(word, `"'([{‘“«`)
	if word == "" {
		return false
	}

	// Initials such as "J." and dotted forms such as "e.g." or "U.S.".
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		return unicode.IsUpper(r) && r != 'I'
	}
	if strings.Contains(word, ".") {
		return true
	}

	return t.rules.abbreviations[strings.ToLower(word)]
}
