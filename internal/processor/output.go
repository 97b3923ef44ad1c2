package processor

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
)

// Output is the content of <name>.highlights.json.
type Output struct {
	Source        string              `json:"source"`
	GeneratedAt   time.Time           `json:"generated_at"`
	SentenceCount int                 `json:"sentence_count"`
	Segments      []highlight.Segment `json:"segments"`
	Sentences     []OutputSentence    `json:"sentences"`
	Warnings      []string            `json:"warnings,omitempty"`
}

type OutputSentence struct {
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Chunks []int   `json:"chunks"`
}

func newOutput(source string, at time.Time, res highlight.Result) Output {
	out := Output{
		Source:        source,
		GeneratedAt:   at,
		SentenceCount: res.SentenceCount,
		Segments:      res.Segments,
		Sentences:     make([]OutputSentence, len(res.Selected)),
	}
	for i, s := range res.Selected {
		chunks := s.SourceChunks
		if chunks == nil {
			chunks = []int{}
		}
		out.Sentences[i] = OutputSentence{Text: s.Text, Score: s.Score, Chunks: chunks}
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	return out
}

// writeJSON writes v through a temp file so readers never see a partial file.
func (p *implProcessor) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
