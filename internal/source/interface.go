// Package source acquires transcripts from outside the highlighter: a video
// transcript service and a document store.
package source

import (
	"context"

	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

// Fetcher downloads the transcript of a video. Chunks carry their time in
// the start field.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) ([]transcript.RawChunk, error)
}

// Store holds transcripts of ingested documents by opaque id. Chunks carry
// their time in the offset field.
type Store interface {
	Get(ctx context.Context, docID string) (Document, error)
	Put(ctx context.Context, doc Document) error
	Close() error
}
