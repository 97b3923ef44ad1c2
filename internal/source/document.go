package source

import (
	"fmt"
	"regexp"

	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

// Document is a stored source with its video metadata. The layout matches
// the documents written by the ingestion service.
type Document struct {
	ID              string           `json:"id"`
	Title           string           `json:"title,omitempty"`
	YouTubeMetadata *YouTubeMetadata `json:"youtube_metadata,omitempty"`
}

type YouTubeMetadata struct {
	VideoID        string          `json:"video_id,omitempty"`
	Transcriptions []Transcription `json:"transcriptions"`
}

type Transcription struct {
	Language      string                `json:"language,omitempty"`
	Transcription []transcript.RawChunk `json:"transcription"`
}

// Transcript returns the first transcription of the document.
func (d Document) Transcript() ([]transcript.RawChunk, error) {
	if d.YouTubeMetadata == nil || len(d.YouTubeMetadata.Transcriptions) == 0 {
		return nil, fmt.Errorf("%w: document %s has no transcription", ErrNotFound, d.ID)
	}
	return d.YouTubeMetadata.Transcriptions[0].Transcription, nil
}

// NewDocument wraps chunks into a single-transcription document.
func NewDocument(id string, chunks []transcript.RawChunk) Document {
	return Document{
		ID: id,
		YouTubeMetadata: &YouTubeMetadata{
			Transcriptions: []Transcription{{Transcription: chunks}},
		},
	}
}

var reDocID = regexp.MustCompile(`^[0-9A-Za-z_-]{1,128}$`)

// ValidateDocID rejects ids that cannot name a stored document.
func ValidateDocID(id string) error {
	if !reDocID.MatchString(id) {
		return fmt.Errorf("%w: document id %q", ErrInvalidInput, id)
	}
	return nil
}
