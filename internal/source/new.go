package source

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/highlight-flow/internal/config"
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/pkg/executor"
)

// NewFetcher builds the fetcher selected by cfg.Mode. It returns nil without
// error when the http mode has no base URL configured.
func NewFetcher(cfg config.FetcherConfig, log logger.Logger) (Fetcher, error) {
	switch cfg.Mode {
	case "", "http":
		if cfg.BaseURL == "" {
			return nil, nil
		}
		return NewHTTPFetcher(cfg.BaseURL, cfg.RatePerSecond, cfg.Burst, cfg.Timeout, log), nil
	case "command":
		return NewCommandFetcher(executor.New(), cfg.Binary, cfg.Args, cfg.Dir, log), nil
	default:
		return nil, fmt.Errorf("unknown fetcher mode %q", cfg.Mode)
	}
}

// NewStore builds the store selected by cfg.Backend.
func NewStore(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.Dir)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.KeyPrefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
