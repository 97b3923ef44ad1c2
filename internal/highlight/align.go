package highlight

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/highlight-flow/internal/textproc"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

// AlignMode selects how selected sentences are mapped back onto chunks.
type AlignMode string

const (
	// AlignContainment covers a chunk when one of its own sentences is
	// contained in a selected sentence.
	AlignContainment AlignMode = "containment"
	// AlignSummary covers a chunk when one of its sentences is contained in
	// the space-joined summary text.
	AlignSummary AlignMode = "summary"
	// AlignPositional covers a chunk whose byte range in the joined
	// transcript overlaps a selected sentence.
	AlignPositional AlignMode = "positional"
)

// ParseAlignMode validates a configured mode. Empty means containment.
func ParseAlignMode(s string) (AlignMode, error) {
	switch AlignMode(s) {
	case "", AlignContainment:
		return AlignContainment, nil
	case AlignSummary, AlignPositional:
		return AlignMode(s), nil
	default:
		return "", fmt.Errorf("unknown align mode %q", s)
	}
}

// Alignment maps selected sentences to transcript chunks.
type Alignment struct {
	// Chunks lists covered chunk indices in ascending order.
	Chunks []int
	// Sources holds, per selected sentence, the chunks it was matched to.
	Sources [][]int
}

type aligner struct {
	mode      AlignMode
	tokenizer textproc.Tokenizer
}

// Align matches selected onto chunks. spans must come from transcript.Join
// over the same chunks the sentences were split from.
func (a aligner) Align(chunks []transcript.Chunk, spans []transcript.Span, selected []textproc.Sentence) Alignment {
	sources := make([][]int, len(selected))
	covered := make([]int, 0, len(chunks))

	var summary string
	if a.mode == AlignSummary {
		parts := make([]string, len(selected))
		for i, s := range selected {
			parts[i] = s.Text
		}
		summary = strings.Join(parts, " ")
	}

	for ci, chunk := range chunks {
		hit := false

		if a.mode == AlignPositional {
			span := spans[ci]
			for si, s := range selected {
				if span.Start < s.End && s.Start < span.End {
					sources[si] = append(sources[si], ci)
					hit = true
				}
			}
		} else {
			for _, cs := range a.tokenizer.Sentences(chunk.Text) {
				if a.mode == AlignSummary && strings.Contains(summary, cs.Text) {
					hit = true
				}
				for si, s := range selected {
					if strings.Contains(s.Text, cs.Text) && !contains(sources[si], ci) {
						sources[si] = append(sources[si], ci)
						hit = true
					}
				}
			}
		}

		if hit {
			covered = append(covered, ci)
		}
	}

	return Alignment{Chunks: covered, Sources: sources}
}

func contains(xs []int, x int) bool {
	return len(xs) > 0 && xs[len(xs)-1] == x
}
