package commands

import (
	"io"
	"os"
	"time"

	"github.com/fivetwenty-io/congress-client/pkg/congress"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// zerologLogger adapts zerolog to the client's Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

// newLogger writes human-readable logs when stderr is a terminal and JSON
// lines otherwise. Debug output is enabled by --verbose.
func newLogger(verbose bool) congress.Logger {
	return newLoggerTo(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()), verbose)
}

func newLoggerTo(out io.Writer, console, verbose bool) *zerologLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := out
	if console {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return &zerologLogger{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}

var _ congress.Logger = (*zerologLogger)(nil)
