package lexrank

import (
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/textproc"
)

// Options configures a Summarizer.
type Options struct {
	// Threshold is the minimum cosine similarity for an edge.
	Threshold float64
	// IDF enables inverse sentence frequency weighting.
	IDF  bool
	Rank RankOptions
}

// DefaultOptions returns threshold 0.1 with IDF weighting and DefaultRankOptions.
func DefaultOptions() Options {
	return Options{Threshold: 0.1, IDF: true, Rank: DefaultRankOptions()}
}

type implSummarizer struct {
	tokenizer textproc.Tokenizer
	opts      Options
	logger    logger.Logger
}

// New creates a Summarizer that segments text with tok.
func New(tok textproc.Tokenizer, opts Options, log logger.Logger) Summarizer {
	return &implSummarizer{
		tokenizer: tok,
		opts:      opts,
		logger:    log,
	}
}
