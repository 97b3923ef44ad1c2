package processor

import (
	"time"

	"github.com/nguyentantai21042004/highlight-flow/internal/config"
	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/report"
)

type implProcessor struct {
	cfg         *config.Config
	highlighter highlight.Highlighter
	report      report.Writer
	logger      logger.Logger
	now         func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, h highlight.Highlighter, rw report.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		highlighter: h,
		report:      rw,
		logger:      log,
		now:         time.Now,
	}
}
