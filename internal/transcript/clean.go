package transcript

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Clean makes chunk text safe for tokenization: invalid UTF-8 and control
// characters are dropped and, with stripMarkup, caption tags such as <i> or
// <font> are removed and entities decoded. Offsets and durations are kept.
func Clean(chunks []Chunk, stripMarkup bool) []Chunk {
	out := make([]Chunk, len(chunks))
	for i, c := range chunks {
		text := sanitize(c.Text)
		if stripMarkup {
			text = StripMarkup(text)
		}
		out[i] = Chunk{Text: text, Offset: c.Offset, Duration: c.Duration}
	}
	return out
}

func sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

var (
	// SRT and WebVTT styling tags plus WebVTT inline timestamps.
	reCaptionTag = regexp.MustCompile(`(?i)</?(?:i|b|u|s|em|strong|font|span|c|v|lang|ruby|rt)(?:[.\s][^<>]*)?>|<\d{1,2}:\d{2}(?::\d{2})?[.,]\d{3}>`)
	reLineBreak  = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// StripMarkup removes well-formed caption tags and decodes entities. Any
// other '<' is plain text and kept.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	s = reLineBreak.ReplaceAllString(s, " ")
	s = reCaptionTag.ReplaceAllString(s, "")
	if strings.Contains(s, "&") {
		s = html.UnescapeString(s)
	}
	return strings.TrimSpace(s)
}
