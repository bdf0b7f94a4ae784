package mocks

import (
	"fmt"
	"sync"

	"github.com/user/playblast/pkg/ports"
)

// LogEntry is one recorded log line.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger records every log line so tests can assert on the log stream,
// which is part of the playblast contract.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]LogEntry
	component string
}

// NewLogger creates an empty recording logger.
func NewLogger() *Logger {
	entries := make([]LogEntry, 0)
	return &Logger{mu: &sync.Mutex{}, entries: &entries}
}

func (l *Logger) record(level ports.LogLevel, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, LogEntry{
		Level:     level,
		Component: l.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.record(ports.LevelDebug, msg, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.record(ports.LevelInfo, msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.record(ports.LevelWarn, msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.record(ports.LevelError, msg, args...)
}

func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: l.mu, entries: l.entries, component: component}
}

// Entries returns a copy of the recorded lines.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), *l.entries...)
}

// Errors returns only the error-level messages.
func (l *Logger) Errors() []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == ports.LevelError {
			out = append(out, e.Message)
		}
	}
	return out
}

// Warnings returns only the warning-level messages.
func (l *Logger) Warnings() []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == ports.LevelWarn {
			out = append(out, e.Message)
		}
	}
	return out
}

// Ensure Logger implements ports.Logger
var _ ports.Logger = (*Logger)(nil)
