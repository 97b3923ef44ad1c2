// Package report renders highlight results as markdown and docx documents.
package report

import (
	"time"

	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
)

// Writer writes a Report to disk.
type Writer interface {
	WriteMarkdown(r Report, path string) error
	WriteDocx(r Report, path string) error
}

// Report is one highlighted transcript.
type Report struct {
	Title       string
	Source      string
	GeneratedAt time.Time
	Result      highlight.Result
}
