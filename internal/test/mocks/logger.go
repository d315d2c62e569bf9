// Package mocks provides test doubles shared by the package tests.
package mocks

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
	Fields  []interface{}
}

// Field returns the value logged under key, if present.
func (e Entry) Field(key string) (interface{}, bool) {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if k, ok := e.Fields[i].(string); ok && k == key {
			return e.Fields[i+1], true
		}
	}
	return nil, false
}

// RecordingLogger records every call for later assertions.
// It satisfies settings.Logger.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []Entry
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) Debug(msg string, fields ...interface{}) { r.record("DEBUG", msg, fields) }
func (r *RecordingLogger) Info(msg string, fields ...interface{})  { r.record("INFO", msg, fields) }
func (r *RecordingLogger) Warn(msg string, fields ...interface{})  { r.record("WARN", msg, fields) }
func (r *RecordingLogger) Error(msg string, fields ...interface{}) { r.record("ERROR", msg, fields) }

func (r *RecordingLogger) record(level, msg string, fields []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, Fields: fields})
}

// Entries returns a copy of all recorded entries.
func (r *RecordingLogger) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Find returns the last entry with the given level and message.
func (r *RecordingLogger) Find(level, msg string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Level == level && r.entries[i].Message == msg {
			return r.entries[i], true
		}
	}
	return Entry{}, false
}

// String renders the entries one per line.
func (r *RecordingLogger) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, e := range r.entries {
		fmt.Fprintf(&b, "[%s] %s", e.Level, e.Message)
		if len(e.Fields) > 0 {
			fmt.Fprintf(&b, " %v", e.Fields)
		}
		b.WriteString("\n")
	}
	return b.String()
}
