package main

import (
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/highlight-flow/internal/metrics"
	"github.com/nguyentantai21042004/highlight-flow/internal/processor"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

var (
	runSentences int
	runTimeField string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Highlight one transcript and print the segments as JSON",
		Long: `Highlight one .json or .srt transcript and print the segments to stdout.
The input is left in place and no reports are written.

Examples:
  highlighter run lecture.srt
  highlighter run talk.json --time-field start --sentences 5`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}

	cmd.Flags().IntVarP(&runSentences, "sentences", "n", 0, "number of sentences to extract (default: derived from length)")
	cmd.Flags().StringVar(&runTimeField, "time-field", "", "time field of JSON chunks: start or offset (default: transcript.time_field)")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	h, err := newHighlighter(cfg, log, metrics.New(prometheus.NewRegistry()))
	if err != nil {
		return err
	}

	field := runTimeField
	if field == "" {
		field = cfg.Transcript.TimeField
	}
	req, err := processor.ReadTranscript(path, transcript.TimeField(field))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sentences") {
		req.SentenceCount = &runSentences
	}

	res, err := h.Highlight(ctx, req)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		log.Warn(ctx, "%v", w)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res.Segments)
}
