// Package log provides structured logging for symgo experiment runs.
//
// It defines a minimal Logger interface so pipeline code stays
// implementation-agnostic, with a zerolog-backed default. Sweep runners log
// one record per unit with structured fields (parsimony, sample size, seeds)
// so partial failures stay attributable after a long run.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/symgo-ml/symgo/pkg/errors"
)

// Logger is a structured logging interface with key-value field pairs,
// compatible in shape with log/slog call sites.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)
	// Info logs general operational information.
	Info(msg string, fields ...any)
	// Warn logs recoverable problems, such as a skipped sweep unit.
	Warn(msg string, fields ...any)
	// Error logs failures.
	Error(msg string, fields ...any)
	// With returns a child logger with the given fields pre-populated.
	With(fields ...any) Logger
}

var (
	mu            sync.RWMutex
	defaultLogger Logger = NewZerologLogger(os.Stderr, zerolog.InfoLevel)
)

// GetLogger returns the process-wide logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide logger.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

// Setup configures the default zerolog logger at the given level and routes
// pkg/errors warnings through it as structured events.
func Setup(w io.Writer, level zerolog.Level) {
	l := NewZerologLogger(w, level)
	SetLogger(l)
	errors.SetZerologWarnFunc(func(warning error) {
		l.Warn("warning", "error", warning)
	})
}

// ZerologLogger is the zerolog-backed Logger implementation.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger writing JSON records to w.
func NewZerologLogger(w io.Writer, level zerolog.Level) *ZerologLogger {
	return &ZerologLogger{
		logger: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func (z *ZerologLogger) Debug(msg string, fields ...any) {
	emit(z.logger.Debug(), msg, fields)
}

func (z *ZerologLogger) Info(msg string, fields ...any) {
	emit(z.logger.Info(), msg, fields)
}

func (z *ZerologLogger) Warn(msg string, fields ...any) {
	emit(z.logger.Warn(), msg, fields)
}

func (z *ZerologLogger) Error(msg string, fields ...any) {
	emit(z.logger.Error(), msg, fields)
}

func (z *ZerologLogger) With(fields ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

// emit appends field pairs to a zerolog event. Odd trailing values and
// non-string keys are dropped rather than panicking mid-sweep.
func emit(event *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			if marshaler, ok := v.(zerolog.LogObjectMarshaler); ok {
				event = event.Object(key, marshaler)
			} else {
				event = event.AnErr(key, v)
			}
		default:
			event = event.Interface(key, v)
		}
	}
	event.Msg(msg)
}
