package highlight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/highlight-flow/internal/lexrank"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

var errInvalidTimeField = transcript.ErrUnknownTimeField

// Highlight runs tokenize, rank, select, align and merge over one transcript.
func (h *implHighlighter) Highlight(ctx context.Context, req Request) (Result, error) {
	startTime := time.Now()

	res, err := h.highlight(ctx, req)

	status := "ok"
	switch {
	case err != nil && IsValidation(err):
		status = "invalid"
	case err != nil:
		status = "error"
	case len(res.Segments) == 0:
		status = "empty"
	}
	h.metrics.Request(status, time.Since(startTime))

	return res, err
}

func (h *implHighlighter) highlight(ctx context.Context, req Request) (Result, error) {
	if req.SentenceCount != nil && *req.SentenceCount <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidSentenceCount, *req.SentenceCount)
	}
	field := transcript.FieldOffset
	if req.TimeField != "" {
		var err error
		if field, err = transcript.ParseTimeField(string(req.TimeField)); err != nil {
			return Result{}, err
		}
	}

	chunks, skipped := transcript.Normalize(req.Transcript, field)
	if skipped > 0 {
		h.logger.Warn(ctx, "Skipped %d of %d chunks without a usable %s/duration", skipped, len(req.Transcript), field)
		h.metrics.Skipped(skipped)
	}
	cleaned := transcript.Clean(chunks, h.opts.StripMarkup)

	text, spans := transcript.Join(cleaned)
	if strings.TrimSpace(text) == "" {
		h.logger.Info(ctx, "Transcript has no text (%d chunks), returning no highlights", len(chunks))
		return emptyResult(), nil
	}

	count := lexrank.ResolveCount(h.tokenizer.WordCount(text))
	if req.SentenceCount != nil {
		count = *req.SentenceCount
	}

	summary, err := h.summarizer.Summarize(ctx, text, count)
	if err != nil {
		return Result{}, fmt.Errorf("summarize: %w", err)
	}
	h.metrics.Rank(summary.Iterations, summary.Converged)

	if len(summary.Sentences) == 0 {
		return emptyResult(), nil
	}

	var warnings []error
	if !summary.Converged {
		warnings = append(warnings, fmt.Errorf("%w after %d iterations", ErrConvergenceNotReached, summary.Iterations))
	}

	alignment := h.aligner.Align(cleaned, spans, summary.Selected)

	// Segments carry the chunk text as received; cleaning only feeds ranking.
	covered := make([]transcript.Chunk, len(alignment.Chunks))
	for i, ci := range alignment.Chunks {
		covered[i] = chunks[ci]
	}
	tolerance := h.opts.Tolerance
	if req.Tolerance > tolerance {
		tolerance = req.Tolerance
	}
	segments := Merge(covered, tolerance)
	h.metrics.SegmentCount(len(segments))

	selected := make([]SelectedSentence, len(summary.Selected))
	for i, s := range summary.Selected {
		selected[i] = SelectedSentence{
			Sentence:     s,
			Score:        summary.Scores[s.Index],
			SourceChunks: alignment.Sources[i],
		}
	}

	h.logger.Debug(ctx, "Selected %d of %d sentences, %d chunks covered, %d segments",
		len(selected), len(summary.Sentences), len(alignment.Chunks), len(segments))

	return Result{
		Segments:      segments,
		SentenceCount: count,
		Selected:      selected,
		Warnings:      warnings,
	}, nil
}

func emptyResult() Result {
	return Result{
		Segments: []Segment{},
		Warnings: []error{ErrEmptyInput},
	}
}

// HasWarning reports whether res carries a warning matching target.
func (r Result) HasWarning(target error) bool {
	for _, w := range r.Warnings {
		if errors.Is(w, target) {
			return true
		}
	}
	return false
}
