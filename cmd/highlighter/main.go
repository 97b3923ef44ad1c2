// Command highlighter extracts highlight segments from time-coded transcripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/highlight-flow/internal/config"
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
)

const defaultConfigPath = "config.yaml"

// Global flags and state.
var (
	cfgFile  string
	logLevel string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "highlighter",
	Short: "Extract highlight segments from time-coded transcripts",
	Long: `highlighter ranks the sentences of a transcript by their centrality in a
lexical similarity graph, keeps the most central ones and maps them back onto
the transcript chunks, merged into contiguous time-coded segments.

COMMANDS:
  run FILE     Highlight one transcript and print the segments
  batch [DIR]  Highlight every transcript in a directory
  watch        Highlight transcripts as they appear in paths.input
  serve        Serve the HTTP API`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		path := cfgFile
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			path = ""
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		log = logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigPath, "path to the YAML config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(newRunCmd(), newBatchCmd(), newWatchCmd(), newServeCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
