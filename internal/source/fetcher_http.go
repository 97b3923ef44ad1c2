package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

type implHTTPFetcher struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  logger.Logger
}

// NewHTTPFetcher fetches GET <baseURL>/transcripts/<videoID>, which must
// answer with a JSON array of chunks. Requests are throttled to
// ratePerSecond with the given burst.
func NewHTTPFetcher(baseURL string, ratePerSecond float64, burst int, timeout time.Duration, log logger.Logger) Fetcher {
	return &implHTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), max(burst, 1)),
		logger:  log,
	}
}

func (f *implHTTPFetcher) Fetch(ctx context.Context, videoID string) ([]transcript.RawChunk, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := f.baseURL + "/transcripts/" + url.PathEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to fetch transcript: %v", ErrNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unable to fetch transcript: %s returned %s", ErrNotFound, endpoint, resp.Status)
	}

	chunks, err := transcript.DecodeJSON(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to fetch transcript: %v", ErrNotFound, err)
	}

	f.logger.Debug(ctx, "Fetched %d chunks for video %s in %s", len(chunks), videoID, time.Since(startTime))
	return chunks, nil
}
