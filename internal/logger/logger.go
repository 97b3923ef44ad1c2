package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type contextKey string

const requestIDKey contextKey = "request_id"

type implLogger struct {
	zl    zerolog.Logger
	level zerolog.Level
}

// New creates a new Logger instance writing human-readable lines to stdout.
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger. format is "json" or "text".
func NewWithFormat(level, format string, out io.Writer) Logger {
	if out == nil {
		out = os.Stdout
	}

	var zl zerolog.Logger
	if strings.ToLower(format) == "json" {
		zl = zerolog.New(out).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}).With().Timestamp().Logger()
	}

	lvl := parseLevel(level)
	return &implLogger{
		zl:    zl.Level(lvl),
		level: lvl,
	}
}

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() Logger {
	return &implLogger{
		zl:    zerolog.Nop(),
		level: zerolog.Disabled,
	}
}

// WithRequestID returns a context whose log lines carry the given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel // default to info
	}
}

func (l *implLogger) shouldLog(level zerolog.Level) bool {
	return level >= l.level
}

func (l *implLogger) log(ctx context.Context, event *zerolog.Event, msg string, args []interface{}) {
	if id := RequestID(ctx); id != "" {
		event = event.Str("request_id", id)
	}
	event.Msgf(msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.DebugLevel) {
		l.log(ctx, l.zl.Debug(), msg, args)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.InfoLevel) {
		l.log(ctx, l.zl.Info(), msg, args)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.WarnLevel) {
		l.log(ctx, l.zl.Warn(), msg, args)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zerolog.ErrorLevel) {
		l.log(ctx, l.zl.Error(), msg, args)
	}
}
