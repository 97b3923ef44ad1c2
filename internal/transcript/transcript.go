// Package transcript holds the time-coded chunk model and its decoders.
package transcript

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Chunk is one time-coded unit of a transcript. Times are in seconds.
type Chunk struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

// TimeField names the JSON field that carries a chunk's start time. It
// differs between transcript sources.
type TimeField string

const (
	FieldStart  TimeField = "start"
	FieldOffset TimeField = "offset"
)

// ErrUnknownTimeField is returned by ParseTimeField.
var ErrUnknownTimeField = errors.New("unknown time field")

// ParseTimeField accepts "start" or "offset".
func ParseTimeField(s string) (TimeField, error) {
	switch TimeField(strings.ToLower(strings.TrimSpace(s))) {
	case FieldStart:
		return FieldStart, nil
	case FieldOffset:
		return FieldOffset, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeField, s)
	}
}

// RawChunk is a chunk as delivered by a source, before the time field is
// chosen.
type RawChunk struct {
	Text     string   `json:"text"`
	Start    *float64 `json:"start,omitempty"`
	Offset   *float64 `json:"offset,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
}

// Normalize reads the start time from field and returns chunks carrying it as
// Offset. Chunks lacking the field or a duration, or holding non-finite times,
// are dropped; the number dropped is returned.
func Normalize(raw []RawChunk, field TimeField) ([]Chunk, int) {
	chunks := make([]Chunk, 0, len(raw))
	skipped := 0

	for _, rc := range raw {
		at := rc.Offset
		if field == FieldStart {
			at = rc.Start
		}
		if at == nil || rc.Duration == nil || !finite(*at) || !finite(*rc.Duration) {
			skipped++
			continue
		}
		chunks = append(chunks, Chunk{
			Text:     rc.Text,
			Offset:   *at,
			Duration: *rc.Duration,
		})
	}

	return chunks, skipped
}

// Raw converts chunks back to the source shape using field for the time.
func Raw(chunks []Chunk, field TimeField) []RawChunk {
	raw := make([]RawChunk, len(chunks))
	for i, c := range chunks {
		at, dur := c.Offset, c.Duration
		raw[i] = RawChunk{Text: c.Text, Duration: &dur}
		if field == FieldStart {
			raw[i].Start = &at
		} else {
			raw[i].Offset = &at
		}
	}
	return raw
}

// Span is the byte range of a chunk's text inside the joined transcript text.
type Span struct {
	Start int
	End   int
}

// Join concatenates chunk texts with single spaces and reports where each
// chunk landed.
func Join(chunks []Chunk) (string, []Span) {
	var b strings.Builder
	spans := make([]Span, len(chunks))
	for i, c := range chunks {
		if i > 0 {
			b.WriteByte(' ')
		}
		spans[i].Start = b.Len()
		b.WriteString(c.Text)
		spans[i].End = b.Len()
	}
	return b.String(), spans
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
