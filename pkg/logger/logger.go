// Package logger provides logging functionality for the create-branch application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes one line per message.
type defaultLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a default logger writing to w.
func NewWriterLogger(w io.Writer) Logger {
	return &defaultLogger{w: w}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(d.w, format+"\n", args...)
}

// multiLogger fans out messages to several loggers.
type multiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger forwarding every message to all the given loggers.
// Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) Logger {
	m := &multiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Logf forwards the message to every logger.
func (m *multiLogger) Logf(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Logf(format, args...)
	}
}
