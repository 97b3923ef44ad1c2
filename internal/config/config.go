package config

import (
	"fmt"
	"time"
)

type Config struct {
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Aligner     AlignerConfig     `yaml:"aligner"`
	Merger      MergerConfig      `yaml:"merger"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Server      ServerConfig      `yaml:"server"`
	Store       StoreConfig       `yaml:"store"`
	Fetcher     FetcherConfig     `yaml:"fetcher"`
	Report      ReportConfig      `yaml:"report"`
}

// SummarizerConfig tunes LexRank. A nil threshold or IDF takes its default;
// an explicit 0 threshold links every pair with positive similarity.
// MaxIterations of zero means 100. The cap cannot be lifted, a run that hits
// it reports non-convergence.
type SummarizerConfig struct {
	Language            string   `yaml:"language"`
	SimilarityThreshold *float64 `yaml:"similarity_threshold"`
	Damping             float64  `yaml:"damping"`
	Epsilon             float64  `yaml:"epsilon"`
	MaxIterations       int      `yaml:"max_iterations"`
	IDF                 *bool    `yaml:"idf"`
	StopWords           bool     `yaml:"stop_words"`
}

type AlignerConfig struct {
	// Mode is one of containment, summary or positional.
	Mode string `yaml:"mode"`
}

type MergerConfig struct {
	// Tolerance in seconds for chunk adjacency. Zero means exact equality.
	Tolerance float64 `yaml:"tolerance"`
}

type TranscriptConfig struct {
	TimeField   string `yaml:"time_field"`
	StripMarkup *bool  `yaml:"strip_markup"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

type StoreConfig struct {
	Backend       string `yaml:"backend"`
	Dir           string `yaml:"dir"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	KeyPrefix     string `yaml:"key_prefix"`
}

type FetcherConfig struct {
	Mode          string        `yaml:"mode"`
	BaseURL       string        `yaml:"base_url"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	Burst         int           `yaml:"burst"`
	Timeout       time.Duration `yaml:"timeout"`
	Binary        string        `yaml:"binary"`
	Args          []string      `yaml:"args"`
	// Dir is the working directory of the command fetcher.
	Dir           string        `yaml:"dir"`
}

type ReportConfig struct {
	Markdown bool `yaml:"markdown"`
	Docx     bool `yaml:"docx"`
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if t := c.Summarizer.SimilarityThreshold; t != nil && (*t < 0 || *t > 1) {
		return fmt.Errorf("summarizer.similarity_threshold must be within [0, 1]")
	}
	if c.Summarizer.Damping < 0 || c.Summarizer.Damping >= 1 {
		return fmt.Errorf("summarizer.damping must be within [0, 1)")
	}
	if c.Summarizer.Epsilon < 0 {
		return fmt.Errorf("summarizer.epsilon must not be negative")
	}
	if c.Summarizer.MaxIterations < 0 {
		return fmt.Errorf("summarizer.max_iterations must not be negative")
	}
	if c.Merger.Tolerance < 0 {
		return fmt.Errorf("merger.tolerance must not be negative")
	}

	switch c.Aligner.Mode {
	case "":
		c.Aligner.Mode = "containment"
	case "containment", "summary", "positional":
	default:
		return fmt.Errorf("aligner.mode %q is not one of containment, summary, positional", c.Aligner.Mode)
	}

	switch c.Transcript.TimeField {
	case "":
		c.Transcript.TimeField = "offset"
	case "offset", "start":
	default:
		return fmt.Errorf("transcript.time_field %q is not one of start, offset", c.Transcript.TimeField)
	}

	switch c.Store.Backend {
	case "":
		c.Store.Backend = "file"
	case "file", "redis":
	default:
		return fmt.Errorf("store.backend %q is not one of file, redis", c.Store.Backend)
	}
	if c.Store.Backend == "redis" && c.Store.RedisAddr == "" {
		return fmt.Errorf("store.redis_addr is required for the redis backend")
	}

	switch c.Fetcher.Mode {
	case "":
		c.Fetcher.Mode = "http"
	case "http", "command":
	default:
		return fmt.Errorf("fetcher.mode %q is not one of http, command", c.Fetcher.Mode)
	}
	if c.Fetcher.Mode == "command" && c.Fetcher.Binary == "" {
		return fmt.Errorf("fetcher.binary is required for the command mode")
	}

	if c.Summarizer.Language == "" {
		c.Summarizer.Language = "english"
	}
	if c.Summarizer.SimilarityThreshold == nil {
		threshold := 0.1
		c.Summarizer.SimilarityThreshold = &threshold
	}
	if c.Summarizer.Damping == 0 {
		c.Summarizer.Damping = 0.85
	}
	if c.Summarizer.Epsilon == 0 {
		c.Summarizer.Epsilon = 1e-4
	}
	if c.Summarizer.MaxIterations == 0 {
		c.Summarizer.MaxIterations = 100
	}
	if c.Summarizer.IDF == nil {
		idf := true
		c.Summarizer.IDF = &idf
	}
	if c.Transcript.StripMarkup == nil {
		strip := true
		c.Transcript.StripMarkup = &strip
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Store.Dir == "" {
		c.Store.Dir = "data/documents"
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = "transcript:"
	}
	if c.Fetcher.RatePerSecond == 0 {
		c.Fetcher.RatePerSecond = 2
	}
	if c.Fetcher.Burst == 0 {
		c.Fetcher.Burst = 1
	}
	if c.Fetcher.Timeout == 0 {
		c.Fetcher.Timeout = 30 * time.Second
	}

	return nil
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{Report: ReportConfig{Markdown: true}}
	_ = cfg.Validate()
	return cfg
}
