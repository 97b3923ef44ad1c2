package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/highlight-flow/internal/config"
	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/metrics"
	"github.com/nguyentantai21042004/highlight-flow/internal/processor"
	"github.com/nguyentantai21042004/highlight-flow/internal/report"
)

func newHighlighter(cfg *config.Config, log logger.Logger, m *metrics.Metrics) (highlight.Highlighter, error) {
	opts, err := highlight.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return highlight.New(opts, log, m)
}

func newProcessor(cfg *config.Config, log logger.Logger, reg prometheus.Registerer) (processor.Processor, error) {
	h, err := newHighlighter(cfg, log, metrics.New(reg))
	if err != nil {
		return nil, fmt.Errorf("create highlighter: %w", err)
	}
	return processor.New(cfg, h, report.New(log), log), nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
