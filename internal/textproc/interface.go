// Package textproc splits transcript text into sentences and sentences into
// normalized word tokens.
package textproc

// Sentence is one segmented unit of a document. Start and End are byte
// offsets of Text within the text it was split from.
type Sentence struct {
	Index  int
	Text   string
	Start  int
	End    int
	Tokens []string
}

// Tokenizer is safe for concurrent use.
type Tokenizer interface {
	// Sentences splits text into sentences, each carrying its word tokens.
	// Empty or blank text yields no sentences.
	Sentences(text string) []Sentence
	// Words returns the case-folded alphanumeric tokens of text.
	Words(text string) []string
	// WordCount counts whitespace-separated words, punctuation included.
	WordCount(text string) int
}
