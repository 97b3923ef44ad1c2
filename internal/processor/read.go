package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

const outputSuffix = ".highlights.json"

// IsTranscriptFile reports whether path has a supported transcript extension
// and is not a highlights output.
func IsTranscriptFile(path string) bool {
	if strings.HasSuffix(strings.ToLower(path), outputSuffix) {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".srt":
		return true
	default:
		return false
	}
}

// ReadTranscript decodes path by extension into a highlight request. JSON
// chunks carry their time in jsonField; SRT cue times are read as offsets and
// merged with transcript.SRTTolerance.
func ReadTranscript(path string, jsonField transcript.TimeField) (highlight.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return highlight.Request{}, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err := transcript.DecodeJSON(f)
		if err != nil {
			return highlight.Request{}, err
		}
		return highlight.Request{Transcript: raw, TimeField: jsonField}, nil
	case ".srt":
		chunks, err := transcript.ParseSRT(f)
		if err != nil {
			return highlight.Request{}, err
		}
		return highlight.Request{
			Transcript: transcript.Raw(chunks, transcript.FieldOffset),
			TimeField:  transcript.FieldOffset,
			Tolerance:  transcript.SRTTolerance,
		}, nil
	default:
		return highlight.Request{}, fmt.Errorf("unsupported transcript format %q", filepath.Ext(path))
	}
}
