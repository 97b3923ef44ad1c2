// Package highlight turns a time-coded transcript into contiguous highlight
// segments made of its most central sentences.
package highlight

import (
	"context"

	"github.com/nguyentantai21042004/highlight-flow/internal/textproc"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

// Highlighter is safe for concurrent use; calls share no mutable state.
type Highlighter interface {
	Highlight(ctx context.Context, req Request) (Result, error)
}

// Request is one transcript to highlight.
type Request struct {
	Transcript []transcript.RawChunk
	// TimeField selects which raw field carries the chunk start time.
	TimeField transcript.TimeField
	// SentenceCount is the number of sentences to extract. Nil derives it
	// from the transcript length; a non-positive value is rejected.
	SentenceCount *int
	// Tolerance widens the configured merge tolerance for sources whose
	// times were quantized, such as SRT cues. Zero keeps the configured one.
	Tolerance float64
}

// Segment is a chronologically contiguous run of selected chunks.
type Segment struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

// SelectedSentence is an extracted sentence with the chunks it was matched to.
type SelectedSentence struct {
	textproc.Sentence
	Score        float64
	SourceChunks []int
}

// Result is the outcome of Highlight. Warnings carries non-fatal conditions
// such as ErrEmptyInput or ErrConvergenceNotReached.
type Result struct {
	Segments      []Segment
	SentenceCount int
	Selected      []SelectedSentence
	Warnings      []error
}
