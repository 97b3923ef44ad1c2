package highlight

import (
	"math"

	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

// Merge fuses chunks, in the given order, into segments. A chunk extends the
// open segment only when it starts where the segment ends; with tolerance 0
// that comparison is exact. Segment duration is the sum of chunk durations.
func Merge(chunks []transcript.Chunk, tolerance float64) []Segment {
	segments := make([]Segment, 0, len(chunks))
	var current *Segment

	for _, c := range chunks {
		if current != nil && adjacent(c.Offset, current.Offset+current.Duration, tolerance) {
			current.Text += " " + c.Text
			current.Duration += c.Duration
			continue
		}
		if current != nil {
			segments = append(segments, *current)
		}
		current = &Segment{
			Text:     c.Text,
			Offset:   c.Offset,
			Duration: c.Duration,
		}
	}

	if current != nil {
		segments = append(segments, *current)
	}
	return segments
}

func adjacent(offset, end, tolerance float64) bool {
	if tolerance == 0 {
		return offset == end
	}
	return math.Abs(offset-end) <= tolerance
}
