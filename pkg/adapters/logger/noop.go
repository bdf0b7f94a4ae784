package logger

import "github.com/user/playblast/pkg/ports"

// NoopLogger discards all messages. Useful for tests and for embedding the
// pipeline where the host application owns its own log stream.
type NoopLogger struct{}

// NewNoop creates a logger that does nothing.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(msg string, args ...interface{}) {}
func (l *NoopLogger) Info(msg string, args ...interface{})  {}
func (l *NoopLogger) Warn(msg string, args ...interface{})  {}
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

func (l *NoopLogger) WithComponent(component string) ports.Logger { return l }

var _ ports.Logger = (*NoopLogger)(nil)
