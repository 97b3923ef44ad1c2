// Package lexrank ranks the sentences of a document by their centrality in a
// lexical similarity graph and extracts the most central ones.
package lexrank

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/highlight-flow/internal/textproc"
)

// Summarizer extracts the most central sentences of a text.
type Summarizer interface {
	// Summarize selects count sentences of text. count must be positive.
	Summarize(ctx context.Context, text string, count int) (Summary, error)
}

// Summary is the outcome of one Summarize call.
type Summary struct {
	// Sentences is every sentence of the text in document order.
	Sentences []textproc.Sentence
	// Scores holds the centrality of each sentence, aligned with Sentences.
	Scores []float64
	// Selected is the extracted subset in document order.
	Selected   []textproc.Sentence
	Edges      int
	Iterations int
	Converged  bool
}

// Text joins the selected sentences with single spaces.
func (s Summary) Text() string {
	var b strings.Builder
	for i, sent := range s.Selected {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sent.Text)
	}
	return b.String()
}
