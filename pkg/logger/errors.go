package logger

import "errors"

// ErrLogFilePathEmpty is returned when a file logger is requested without a path.
var ErrLogFilePathEmpty = errors.New("log file path cannot be empty")
