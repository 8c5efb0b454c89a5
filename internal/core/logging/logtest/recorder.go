// Package logtest provides an in-memory logging.Logger for tests.
package logtest

import (
	"sync"

	"github.com/colonyops/tasks/internal/core/logging"
)

// Level names recorded by the Recorder.
const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Entry is a single captured log call.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]any
	Err     error
}

// Recorder captures every log call in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ logging.Logger = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Info(msg string, fields ...logging.Field) {
	r.record(LevelInfo, msg, nil, fields)
}

func (r *Recorder) Warn(msg string, fields ...logging.Field) {
	r.record(LevelWarn, msg, nil, fields)
}

func (r *Recorder) Error(msg string, err error, fields ...logging.Field) {
	r.record(LevelError, msg, err, fields)
}

func (r *Recorder) record(level, msg string, err error, fields []logging.Field) {
	data := make(map[string]any, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, Fields: data, Err: err})
}

// Entries returns a copy of all captured entries in call order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns the number of entries recorded at level.
func (r *Recorder) Count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Last returns the most recent entry, or false when nothing was logged.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Clear drops all captured entries.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
