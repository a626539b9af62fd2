package log

import (
	"fmt"
	"sync"
)

// Record is a single captured log entry.
type Record struct {
	Level   string
	Message string
	Fields  map[string]any
}

// TestLogger captures log records in memory for inspection in tests.
// A logger and all of its With children share one mutex and one record
// slice, so concurrent logging from parallel sweep units stays safe.
type TestLogger struct {
	mu      *sync.Mutex
	base    map[string]any
	records *[]Record
}

// NewTestLogger creates a TestLogger. The returned slice pointer tracks all
// records logged through the logger and its With children.
func NewTestLogger() (*TestLogger, *[]Record) {
	records := &[]Record{}
	return &TestLogger{mu: &sync.Mutex{}, base: map[string]any{}, records: records}, records
}

func (t *TestLogger) Debug(msg string, fields ...any) { t.log("debug", msg, fields) }
func (t *TestLogger) Info(msg string, fields ...any)  { t.log("info", msg, fields) }
func (t *TestLogger) Warn(msg string, fields ...any)  { t.log("warn", msg, fields) }
func (t *TestLogger) Error(msg string, fields ...any) { t.log("error", msg, fields) }

func (t *TestLogger) With(fields ...any) Logger {
	child := &TestLogger{mu: t.mu, base: map[string]any{}, records: t.records}
	for k, v := range t.base {
		child.base[k] = v
	}
	addPairs(child.base, fields)
	return child
}

func (t *TestLogger) log(level, msg string, fields []any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := Record{Level: level, Message: msg, Fields: map[string]any{}}
	for k, v := range t.base {
		rec.Fields[k] = v
	}
	addPairs(rec.Fields, fields)
	*t.records = append(*t.records, rec)
}

func addPairs(dst map[string]any, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		dst[key] = fields[i+1]
	}
}
