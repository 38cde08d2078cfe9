package cli

import (
	"io"

	"github.com/lerenn/create-branch/pkg/config"
	"github.com/lerenn/create-branch/pkg/logger"
)

// NewLogger builds the run logger: w unless quiet, plus the configured log file.
// The returned function closes the log file.
func NewLogger(cfg config.Config, w io.Writer, quiet bool) (logger.Logger, func() error, error) {
	var console logger.Logger = logger.NewNoopLogger()
	if !quiet {
		console = logger.NewWriterLogger(w)
	}

	if cfg.LogFile == "" {
		return console, func() error { return nil }, nil
	}

	file, err := logger.NewFileLogger(logger.FileParams{
		Path:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	})
	if err != nil {
		return nil, nil, err
	}

	return logger.NewMultiLogger(console, file), file.Close, nil
}
