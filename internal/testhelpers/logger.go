// Package testhelpers provides loggers that write through the testing log.
package testhelpers

import (
	"io"
	"log/slog"

	"github.com/myrjola/liftplan/internal/logging"
)

// NewLogger creates a debug level logger with the given log sink such as testhelpers.Writer.
func NewLogger(logSink io.Writer) *slog.Logger {
	logger, err := logging.NewLogger(logSink, logging.FormatText, slog.LevelDebug)
	if err != nil {
		panic(err)
	}
	return logger
}
