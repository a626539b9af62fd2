// Package errors provides the error and warning system used across symgo.
//
// Every error kind is an exported struct carrying structured context, an
// Error() rendering and a zerolog marshaler, created through a NewXxx
// constructor that attaches a stack trace. Structural errors (an unknown
// model variant) are fatal and propagate; data-dependent errors (parse
// failures, sampling shortfalls) are caught at the smallest unit of work
// and reported through the warning handler.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("symgo-warning: %v\n", w)
	}
	// zerolog hook, set lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the process-wide warning handler. Sweep runners
// report skipped units through this hook.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink (set by pkg/log
// to avoid a circular import).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When a zerolog sink is installed it is preferred;
// otherwise the plain handler runs.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// UnknownModelKindError reports that expression conversion was invoked on a
// model variant outside the supported set. This is a caller bug: it is never
// caught by the sweep runner and always propagates.
type UnknownModelKindError struct {
	Op   string
	Kind string
}

func (e *UnknownModelKindError) Error() string {
	return fmt.Sprintf("symgo: %s: unknown symbolic model kind %q", e.Op, e.Kind)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *UnknownModelKindError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("kind", e.Kind).
		Str("type", "UnknownModelKindError")
}

// NewUnknownModelKindError creates an UnknownModelKindError with a stack trace.
func NewUnknownModelKindError(op, kind string) error {
	err := &UnknownModelKindError{Op: op, Kind: kind}
	return errors.WithStack(err)
}

// ParseError reports that expression text could not be tokenized or parsed
// against the fixed operator grammar. Recoverable at the sweep level: the
// unit is logged and skipped, the sweep continues.
type ParseError struct {
	Text     string
	Position int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("symgo: parse error at offset %d: %s in %q", e.Position, e.Message, e.Text)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("text", e.Text).
		Int("position", e.Position).
		Str("message", e.Message).
		Str("type", "ParseError")
}

// NewParseError creates a ParseError with a stack trace.
func NewParseError(text string, position int, message string) error {
	err := &ParseError{Text: text, Position: position, Message: message}
	return errors.WithStack(err)
}

// SamplingShortfallError reports that fewer samples were available than a
// sweep unit requested. The unit is skipped, not padded.
type SamplingShortfallError struct {
	Requested int
	Available int
}

func (e *SamplingShortfallError) Error() string {
	return fmt.Sprintf("symgo: sampling shortfall: requested %d samples, %d available", e.Requested, e.Available)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *SamplingShortfallError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("requested", e.Requested).
		Int("available", e.Available).
		Str("type", "SamplingShortfallError")
}

// NewSamplingShortfallError creates a SamplingShortfallError with a stack trace.
func NewSamplingShortfallError(requested, available int) error {
	err := &SamplingShortfallError{Requested: requested, Available: available}
	return errors.WithStack(err)
}

// DimensionError reports mismatched input dimensions.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("symgo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid for the operation,
// for example an empty target vector passed to a metric.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("symgo: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors passthroughs
//
// ===========================================================================

// New creates a basic error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// Wrap annotates an error with a message, preserving the original.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
