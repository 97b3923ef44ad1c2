package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/highlight-flow/internal/report"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

// Process runs the highlight pipeline for one transcript file
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	filename := filepath.Base(transcriptPath)
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	p.logger.Info(ctx, "Starting transcript: %s", transcriptPath)

	// Step 1: Read transcript
	req, err := ReadTranscript(transcriptPath, transcript.TimeField(p.cfg.Transcript.TimeField))
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	// Step 2: Highlight
	res, err := p.highlighter.Highlight(ctx, req)
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	for _, w := range res.Warnings {
		p.logger.Warn(ctx, "%s: %v", filename, w)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Step 3: Write highlights JSON
	now := p.now()
	jsonPath := filepath.Join(p.cfg.Paths.Output, name+outputSuffix)
	if err := p.writeJSON(jsonPath, newOutput(filename, now, res)); err != nil {
		return fmt.Errorf("write highlights: %w", err)
	}

	// Step 4: Reports
	rep := report.Report{Title: name, Source: filename, GeneratedAt: now, Result: res}
	if p.cfg.Report.Markdown {
		mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
		if err := p.report.WriteMarkdown(rep, mdPath); err != nil {
			p.logger.Warn(ctx, "Failed to write markdown report: %v", err)
		}
	}
	if p.cfg.Report.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
		if err := p.report.WriteDocx(rep, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx report: %v", err)
		}
	}

	// Step 5: Move input to archived folder
	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Completed %s: %d segments from %d sentences in %s",
		filename, len(res.Segments), len(res.Selected), time.Since(startTime))

	return nil
}
