package report

import (
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

type implWriter struct {
	logger logger.Logger
}

// New creates a report Writer.
func New(log logger.Logger) Writer {
	return &implWriter{
		logger: log,
	}
}
