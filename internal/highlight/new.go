package highlight

import (
	"fmt"

	"github.com/nguyentantai21042004/highlight-flow/internal/config"
	"github.com/nguyentantai21042004/highlight-flow/internal/lexrank"
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/metrics"
	"github.com/nguyentantai21042004/highlight-flow/internal/textproc"
)

// Options configures a Highlighter.
type Options struct {
	Tokenizer   textproc.Options
	Summarizer  lexrank.Options
	AlignMode   AlignMode
	Tolerance   float64
	StripMarkup bool
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return Options{
		Tokenizer:   textproc.Options{Language: "english"},
		Summarizer:  lexrank.DefaultOptions(),
		AlignMode:   AlignContainment,
		StripMarkup: true,
	}
}

// OptionsFromConfig maps a validated config onto Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	mode, err := ParseAlignMode(cfg.Aligner.Mode)
	if err != nil {
		return Options{}, err
	}

	idf := cfg.Summarizer.IDF == nil || *cfg.Summarizer.IDF
	threshold := lexrank.DefaultOptions().Threshold
	if cfg.Summarizer.SimilarityThreshold != nil {
		threshold = *cfg.Summarizer.SimilarityThreshold
	}
	strip := cfg.Transcript.StripMarkup == nil || *cfg.Transcript.StripMarkup

	return Options{
		Tokenizer: textproc.Options{
			Language:  cfg.Summarizer.Language,
			StopWords: cfg.Summarizer.StopWords,
		},
		Summarizer: lexrank.Options{
			Threshold: threshold,
			IDF:       idf,
			Rank: lexrank.RankOptions{
				Damping:       cfg.Summarizer.Damping,
				Epsilon:       cfg.Summarizer.Epsilon,
				MaxIterations: cfg.Summarizer.MaxIterations,
			},
		},
		AlignMode:   mode,
		Tolerance:   cfg.Merger.Tolerance,
		StripMarkup: strip,
	}, nil
}

type implHighlighter struct {
	tokenizer  textproc.Tokenizer
	summarizer lexrank.Summarizer
	aligner    aligner
	opts       Options
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// New creates a Highlighter. m may be nil.
func New(opts Options, log logger.Logger, m *metrics.Metrics) (Highlighter, error) {
	tok, err := textproc.New(opts.Tokenizer)
	if err != nil {
		return nil, fmt.Errorf("create tokenizer: %w", err)
	}
	mode, err := ParseAlignMode(string(opts.AlignMode))
	if err != nil {
		return nil, err
	}

	return &implHighlighter{
		tokenizer:  tok,
		summarizer: lexrank.New(tok, opts.Summarizer, log),
		aligner:    aligner{mode: mode, tokenizer: tok},
		opts:       opts,
		logger:     log,
		metrics:    m,
	}, nil
}
