package main

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/highlight-flow/internal/metrics"
	"github.com/nguyentantai21042004/highlight-flow/internal/server"
	"github.com/nguyentantai21042004/highlight-flow/internal/source"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the HTTP API on server.addr:

  GET  /                        health greeting
  POST /highlight_video_id      {"url": "..."} fetch a video transcript and highlight it
  POST /highlight_doc_id        ?doc_id=... highlight a stored transcript
  POST /api/v1/highlights       highlight an inline transcript
  PUT  /api/v1/documents/:id    store a transcript
  GET  /metrics                 Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			h, err := newHighlighter(cfg, log, metrics.New(reg))
			if err != nil {
				return err
			}

			fetcher, err := source.NewFetcher(cfg.Fetcher, log)
			if err != nil {
				return err
			}
			if fetcher == nil {
				log.Warn(ctx, "fetcher.base_url is empty, /highlight_video_id is disabled")
			}

			store, err := source.NewStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(cfg.Server.Addr, cfg.Server.ReadTimeout, server.Deps{
				Highlighter: h,
				Fetcher:     fetcher,
				Store:       store,
				Gatherer:    reg,
				Logger:      log,
			})

			if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
