package main

import (
	"context"
	"errors"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/highlight-flow/internal/processor"
	"github.com/nguyentantai21042004/highlight-flow/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Highlight transcripts as they appear in paths.input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
			log.Info(ctx, "Max concurrent processing: %d", cfg.Performance.MaxConcurrent)

			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			proc, err := newProcessor(cfg, log, prometheus.NewRegistry())
			if err != nil {
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, proc.Process, log, watcher.Options{
				MaxConcurrent: cfg.Performance.MaxConcurrent,
				Filter:        processor.IsTranscriptFile,
			})
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			log.Info(context.Background(), "Watcher stopped")
			return nil
		},
	}
}
