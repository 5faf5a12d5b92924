// Package logging provides the zerolog-backed logger shared by the binaries.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with a console writer.
type Logger struct {
	zlog zerolog.Logger
}

// New creates a logger writing human-readable lines to w.
func New(w io.Writer) *Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return &Logger{zlog: zerolog.New(output).With().Timestamp().Logger()}
}

// NewDefault writes to stderr so stdout stays free for command output.
func NewDefault() *Logger {
	return New(os.Stderr)
}

// NewNop discards everything.
func NewNop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// SetLevel parses a level name such as "debug" or "warn".
func (l *Logger) SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", name, err)
	}
	l.zlog = l.zlog.Level(lvl)
	return nil
}

// Level returns the minimum level that is written.
func (l *Logger) Level() zerolog.Level {
	return l.zlog.GetLevel()
}

func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zlog.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zlog.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zlog.Fatal() }

// With creates a child logger context.
func (l *Logger) With() zerolog.Context {
	return l.zlog.With()
}
