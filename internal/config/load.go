package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies HIGHLIGHT_* environment overrides
// (a .env file in the working directory is honoured) and validates the result.
// An empty path starts from the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{Report: ReportConfig{Markdown: true}}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Logging.Level = getEnv("HIGHLIGHT_LOG_LEVEL", c.Logging.Level)
	c.Server.Addr = getEnv("HIGHLIGHT_SERVER_ADDR", c.Server.Addr)
	c.Store.Backend = getEnv("HIGHLIGHT_STORE_BACKEND", c.Store.Backend)
	c.Store.RedisAddr = getEnv("HIGHLIGHT_REDIS_ADDR", c.Store.RedisAddr)
	c.Store.RedisPassword = getEnv("HIGHLIGHT_REDIS_PASSWORD", c.Store.RedisPassword)
	c.Store.RedisDB = getEnvInt("HIGHLIGHT_REDIS_DB", c.Store.RedisDB)
	c.Fetcher.BaseURL = getEnv("HIGHLIGHT_FETCHER_BASE_URL", c.Fetcher.BaseURL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
