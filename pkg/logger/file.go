package logger

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Default rotation settings for file logs.
const (
	DefaultMaxSize    = 1
	DefaultMaxBackups = 2
	DefaultMaxAge     = 30
)

// FileParams contains parameters for creating a new file logger.
type FileParams struct {
	// Path is the log file path.
	Path string
	// MaxSize is the size in megabytes before the file is rotated.
	MaxSize int
	// MaxBackups is the number of rotated files kept.
	MaxBackups int
	// MaxAge is the number of days rotated files are kept.
	MaxAge int
}

// FileLogger writes structured records to a rotating log file.
type FileLogger struct {
	writer *lumberjack.Logger
	logger *slog.Logger
}

// NewFileLogger creates a logger backed by a rotating file.
func NewFileLogger(params FileParams) (*FileLogger, error) {
	if params.Path == "" {
		return nil, ErrLogFilePathEmpty
	}

	writer := &lumberjack.Logger{
		Filename:   params.Path,
		MaxSize:    orDefault(params.MaxSize, DefaultMaxSize),
		MaxBackups: orDefault(params.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(params.MaxAge, DefaultMaxAge),
		Compress:   false,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})

	return &FileLogger{
		writer: writer,
		logger: slog.New(handler),
	}, nil
}

// Logf writes the formatted message as an info record.
func (f *FileLogger) Logf(format string, args ...interface{}) {
	f.logger.Log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Close flushes and closes the underlying file.
func (f *FileLogger) Close() error {
	return f.writer.Close()
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
