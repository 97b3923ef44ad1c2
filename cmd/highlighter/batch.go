package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [DIR]",
		Short: "Highlight every transcript in a directory",
		Long: `Highlight every .json and .srt transcript in DIR (default: paths.input),
writing outputs to paths.output and moving inputs to paths.archived.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dir := cfg.Paths.Input
			if len(args) == 1 {
				dir = args[0]
			}
			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			proc, err := newProcessor(cfg, log, prometheus.NewRegistry())
			if err != nil {
				return err
			}

			res, err := proc.ProcessDir(ctx, dir)
			if err != nil {
				return err
			}
			if res.Failed > 0 {
				return fmt.Errorf("%d of %d transcripts failed", res.Failed, res.Failed+res.Succeeded)
			}
			return nil
		},
	}
}
