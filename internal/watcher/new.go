package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
)

// Options tunes a Watcher.
type Options struct {
	// MaxConcurrent bounds handler calls in flight. Defaults to 2.
	MaxConcurrent int
	// Settle is waited after a create event so the writer can finish.
	// Defaults to 500ms.
	Settle time.Duration
	// Filter drops files the handler should not see. Nil accepts all.
	Filter Filter
}

// New creates a Watcher on inputDir that calls handler for new files
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Settle <= 0 {
		opts.Settle = 500 * time.Millisecond
	}
	if opts.Filter == nil {
		opts.Filter = func(string) bool { return true }
	}

	return &implWatcher{
		inputDir:  inputDir,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		opts:      opts,
		semaphore: make(chan struct{}, opts.MaxConcurrent),
	}, nil
}
