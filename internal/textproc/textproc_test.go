package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenizer(t *testing.T, opts Options) Tokenizer {
	t.Helper()
	tok, err := New(opts)
	require.NoError(t, err)
	return tok
}

func texts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

func TestNewUnsupportedLanguage(t *testing.T) {
	_, err := New(Options{Language: "klingon"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "blank",
			text: "   \n\t ",
			want: []string{},
		},
		{
			name: "simple",
			text: "Cats are mammals. Dogs are mammals too. The sun is a star.",
			want: []string{"Cats are mammals.", "Dogs are mammals too.", "The sun is a star."},
		},
		{
			name: "mixed terminators",
			text: "Is it working? Yes! It works.",
			want: []string{"Is it working?", "Yes!", "It works."},
		},
		{
			name: "no trailing terminator",
			text: "First one. and then the rest keeps going",
			want: []string{"First one.", "and then the rest keeps going"},
		},
		{
			name: "abbreviation",
			text: "Dr. Smith met Mr. Jones today. They talked.",
			want: []string{"Dr. Smith met Mr. Jones today.", "They talked."},
		},
		{
			name: "dotted abbreviation and initial",
			text: "Use tools, e.g. hammers. J. Doe agreed.",
			want: []string{"Use tools, e.g. hammers.", "J. Doe agreed."},
		},
		{
			name: "decimal number",
			text: "Version 3.5 shipped. Nice.",
			want: []string{"Version 3.5 shipped.", "Nice."},
		},
		{
			name: "ellipsis and quotes",
			text: `He paused... "Really?" she asked. Fine.`,
			want: []string{"He paused...", `"Really?"`, "she asked.", "Fine."},
		},
		{
			name: "pronoun I ends sentence",
			text: "So did I. Then we left.",
			want: []string{"So did I.", "Then we left."},
		},
		{
			name: "blank line closes paragraph",
			text: "a heading\n\nbody text here",
			want: []string{"a heading", "body text here"},
		},
	}

	tok := newTokenizer(t, Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Sentences(tt.text)
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestSentencesOffsets(t *testing.T) {
	tok := newTokenizer(t, Options{})
	text := "  Hello there.   General Kenobi!  "

	sentences := tok.Sentences(text)
	require.Len(t, sentences, 2)
	for i, s := range sentences {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, s.Text, text[s.Start:s.End])
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		stopWords bool
		want      []string
	}{
		{"case folded", "Cats ARE Mammals.", false, []string{"cats", "are", "mammals"}},
		{"punctuation stripped", "well -- ok, (fine) !!", false, []string{"well", "ok", "fine"}},
		{"apostrophes kept inside", "don't 'quote' it's", false, []string{"don't", "quote", "it's"}},
		{"digits", "route 66 in 1926", false, []string{"route", "66", "in", "1926"}},
		{"compatibility forms", "ﬁne ÉCOLE", false, []string{"fine", "école"}},
		{"stop words", "The sun is a star", true, []string{"sun", "star"}},
		{"only symbols", "... --- !!!", false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := newTokenizer(t, Options{StopWords: tt.stopWords})
			assert.Equal(t, tt.want, tok.Words(tt.text))
		})
	}
}

func TestWordCount(t *testing.T) {
	tok := newTokenizer(t, Options{})
	assert.Equal(t, 0, tok.WordCount("   "))
	assert.Equal(t, 5, tok.WordCount("one two, three -- four"))
}

func TestSentencesCarryTokens(t *testing.T) {
	tok := newTokenizer(t, Options{})
	sentences := tok.Sentences("Cats are mammals. Dogs too.")
	require.Len(t, sentences, 2)
	assert.Equal(t, []string{"cats", "are", "mammals"}, sentences[0].Tokens)
	assert.Equal(t, []string{"dogs", "too"}, sentences[1].Tokens)
}

func TestGermanAbbreviations(t *testing.T) {
	tok := newTokenizer(t, Options{Language: "German"})
	got := texts(tok.Sentences("Das ist z.B. gut. Herr Dr. Meier kommt."))
	assert.Equal(t, []string{"Das ist z.B. gut.", "Herr Dr. Meier kommt."}, got)
}
