package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "threshold above one",
			config: Config{
				Summarizer: SummarizerConfig{SimilarityThreshold: f64(1.5)},
			},
			wantErr: true,
		},
		{
			name: "damping of one",
			config: Config{
				Summarizer: SummarizerConfig{Damping: 1},
			},
			wantErr: true,
		},
		{
			name: "unknown aligner mode",
			config: Config{
				Aligner: AlignerConfig{Mode: "fuzzy"},
			},
			wantErr: true,
		},
		{
			name: "unknown time field",
			config: Config{
				Transcript: TranscriptConfig{TimeField: "begin"},
			},
			wantErr: true,
		},
		{
			name: "redis backend without address",
			config: Config{
				Store: StoreConfig{Backend: "redis"},
			},
			wantErr: true,
		},
		{
			name: "command fetcher without binary",
			config: Config{
				Fetcher: FetcherConfig{Mode: "command"},
			},
			wantErr: true,
		},
		{
			name: "negative tolerance",
			config: Config{
				Merger: MergerConfig{Tolerance: -0.1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Summarizer.SimilarityThreshold == nil || *cfg.Summarizer.SimilarityThreshold != 0.1 {
		t.Errorf("SimilarityThreshold = %v, want %v", cfg.Summarizer.SimilarityThreshold, 0.1)
	}
	if cfg.Summarizer.Damping != 0.85 {
		t.Errorf("Damping = %v, want %v", cfg.Summarizer.Damping, 0.85)
	}
	if cfg.Summarizer.MaxIterations != 100 {
		t.Errorf("MaxIterations = %v, want %v", cfg.Summarizer.MaxIterations, 100)
	}
	if cfg.Summarizer.IDF == nil || !*cfg.Summarizer.IDF {
		t.Errorf("IDF should default to true")
	}
	if cfg.Aligner.Mode != "containment" {
		t.Errorf("Aligner.Mode = %v, want %v", cfg.Aligner.Mode, "containment")
	}
	if cfg.Transcript.TimeField != "offset" {
		t.Errorf("TimeField = %v, want %v", cfg.Transcript.TimeField, "offset")
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want %v", cfg.Performance.MaxConcurrent, 2)
	}
	if !cfg.Report.Markdown {
		t.Errorf("Report.Markdown should default to true")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
summarizer:
  similarity_threshold: 0.2
  damping: 0.9
  idf: false

aligner:
  mode: positional

merger:
  tolerance: 0.01

transcript:
  time_field: start

paths:
  input: "data/in"
  output: "data/out"

server:
  addr: ":9000"
  read_timeout: 5s

report:
  markdown: false
  docx: true

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Summarizer.SimilarityThreshold == nil || *cfg.Summarizer.SimilarityThreshold != 0.2 {
		t.Errorf("SimilarityThreshold = %v, want %v", cfg.Summarizer.SimilarityThreshold, 0.2)
	}
	if cfg.Summarizer.IDF == nil || *cfg.Summarizer.IDF {
		t.Errorf("IDF should be false")
	}
	if cfg.Aligner.Mode != "positional" {
		t.Errorf("Aligner.Mode = %v, want %v", cfg.Aligner.Mode, "positional")
	}
	if cfg.Transcript.TimeField != "start" {
		t.Errorf("TimeField = %v, want %v", cfg.Transcript.TimeField, "start")
	}
	if cfg.Paths.Input != "data/in" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/in")
	}
	if cfg.Paths.Archived != "data/archived" {
		t.Errorf("Archived = %v, want %v", cfg.Paths.Archived, "data/archived")
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Report.Markdown || !cfg.Report.Docx {
		t.Errorf("Report = %+v, want markdown off and docx on", cfg.Report)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HIGHLIGHT_LOG_LEVEL", "warn")
	t.Setenv("HIGHLIGHT_REDIS_DB", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "warn")
	}
	if cfg.Store.RedisDB != 3 {
		t.Errorf("RedisDB = %v, want %v", cfg.Store.RedisDB, 3)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("aligner:\n  mode: magic\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unknown aligner mode")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("HIGHLIGHT_SERVER_ADDR", "0.0.0.0:9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, "0.0.0.0:9000")
	}
	if !cfg.Report.Markdown {
		t.Errorf("Report.Markdown = false, want true")
	}
	if cfg.Aligner.Mode != "containment" {
		t.Errorf("Aligner.Mode = %v, want containment", cfg.Aligner.Mode)
	}
}

func f64(v float64) *float64 { return &v }

func TestValidateKeepsZeroThreshold(t *testing.T) {
	cfg := Config{Summarizer: SummarizerConfig{SimilarityThreshold: f64(0)}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := *cfg.Summarizer.SimilarityThreshold; got != 0 {
		t.Errorf("SimilarityThreshold = %v, want 0", got)
	}
}
