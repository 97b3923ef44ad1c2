package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithFormat("info", "json", &buf)

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Errorf("debug line written at info level: %s", out)
	}
	for _, want := range []string{"info message", "warn message", "error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    zerolog.Level
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", zerolog.DebugLevel, true},
		{"info logs at debug level", "debug", zerolog.InfoLevel, true},
		{"debug doesn't log at info level", "info", zerolog.DebugLevel, false},
		{"info logs at info level", "info", zerolog.InfoLevel, true},
		{"warn doesn't log at error level", "error", zerolog.WarnLevel, false},
		{"error always logs", "debug", zerolog.ErrorLevel, true},
		{"invalid falls back to info", "loud", zerolog.DebugLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}

func TestRequestIDField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithFormat("debug", "json", &buf)

	ctx := WithRequestID(context.Background(), "req-42")
	log.Info(ctx, "hello")

	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Errorf("request_id missing from output: %s", buf.String())
	}
	if got := RequestID(ctx); got != "req-42" {
		t.Errorf("RequestID() = %v, want %v", got, "req-42")
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() = %v, want empty", got)
	}
}

func TestDiscard(t *testing.T) {
	log := Discard().(*implLogger)
	if log.shouldLog(zerolog.ErrorLevel) {
		t.Error("Discard() logger should drop error lines")
	}
}
