package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
	"github.com/nguyentantai21042004/highlight-flow/pkg/executor"
)

const videoIDPlaceholder = "{id}"

type implCommandFetcher struct {
	exec   executor.Executor
	binary string
	args   []string
	dir    string
	logger logger.Logger
}

// NewCommandFetcher runs binary with args and reads a JSON array of chunks
// from its stdout. Every "{id}" in args is replaced by the video id; without
// a placeholder the id is appended. A non-empty dir sets the working
// directory.
func NewCommandFetcher(exec executor.Executor, binary string, args []string, dir string, log logger.Logger) Fetcher {
	return &implCommandFetcher{
		exec:   exec,
		binary: binary,
		args:   args,
		dir:    dir,
		logger: log,
	}
}

func (f *implCommandFetcher) Fetch(ctx context.Context, videoID string) ([]transcript.RawChunk, error) {
	args := make([]string, 0, len(f.args)+1)
	substituted := false
	for _, a := range f.args {
		if strings.Contains(a, videoIDPlaceholder) {
			a = strings.ReplaceAll(a, videoIDPlaceholder, videoID)
			substituted = true
		}
		args = append(args, a)
	}
	if !substituted {
		args = append(args, videoID)
	}

	f.logger.Debug(ctx, "Running %s %s", f.binary, strings.Join(args, " "))

	var (
		out string
		err error
	)
	if f.dir != "" {
		out, err = f.exec.ExecuteInDir(ctx, f.dir, f.binary, args...)
	} else {
		out, err = f.exec.Execute(ctx, f.binary, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to fetch transcript: %v", ErrNotFound, err)
	}

	chunks, err := transcript.DecodeJSON(strings.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to fetch transcript: %v", ErrNotFound, err)
	}
	return chunks, nil
}
