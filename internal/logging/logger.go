// Package logging builds the zerolog logger used across staffbook.
//
// Library packages never reach for a global logger: the logger travels in
// the context (zerolog.Ctx) or is passed explicitly.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string

	// File, when set, receives every log line in addition to Writer.
	File string

	// Writer is the primary sink. Nil means os.Stderr.
	Writer io.Writer
}

// Logger wraps a zerolog.Logger together with the log file it may own.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New creates a logger writing JSON lines with timestamps.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	primary := opts.Writer
	if primary == nil {
		primary = os.Stderr
	}
	writers := []io.Writer{primary}

	var file *os.File
	if opts.File != "" {
		file, err = os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}
		writers = append(writers, file)
	}

	multi := zerolog.MultiLevelWriter(writers...)
	zl := zerolog.New(multi).With().Timestamp().Logger().Level(level)
	return &Logger{Logger: zl, file: file}, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", level)
}

// WithSession returns a context whose logger tags every line with the
// session token.
func WithSession(ctx context.Context, l zerolog.Logger, session string) context.Context {
	return l.With().Str("session", session).Logger().WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
