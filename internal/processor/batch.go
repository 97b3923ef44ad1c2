package processor

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ProcessDir processes the transcripts found in dir, at most
// performance.max_concurrent at a time. Failures are logged and counted.
func (p *implProcessor) ProcessDir(ctx context.Context, dir string) (BatchResult, error) {
	files, err := discoverTranscripts(dir)
	if err != nil {
		return BatchResult{}, err
	}
	if len(files) == 0 {
		p.logger.Info(ctx, "No transcripts found in %s", dir)
		return BatchResult{}, nil
	}

	p.logger.Info(ctx, "Found %d transcripts to highlight", len(files))

	sem := newSemaphore(max(p.cfg.Performance.MaxConcurrent, 1))
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result BatchResult
	)

	for i, path := range files {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return result, err
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.release()

			p.logger.Info(ctx, "[%d/%d] %s", i+1, len(files), filepath.Base(path))
			err := p.Process(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				result.Failed++
				return
			}
			result.Succeeded++
		}(i, path)
	}

	wg.Wait()
	p.logger.Info(ctx, "Batch complete: %d success, %d failed", result.Succeeded, result.Failed)
	return result, nil
}

func discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsTranscriptFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
