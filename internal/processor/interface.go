package processor

import "context"

// Processor highlights transcript files dropped into the input directory.
type Processor interface {
	// Process highlights one .json or .srt transcript, writes the outputs and
	// archives the input.
	Process(ctx context.Context, transcriptPath string) error
	// ProcessDir processes every transcript in dir with bounded concurrency.
	ProcessDir(ctx context.Context, dir string) (BatchResult, error)
}

// BatchResult counts the outcome of ProcessDir.
type BatchResult struct {
	Succeeded int
	Failed    int
}
