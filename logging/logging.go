// Package logging provides a zerolog-backed implementation of the driver's
// Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger adapts a zerolog.Logger to the bc7215.Logger interface.
type Logger struct {
	log zerolog.Logger
}

// New creates a Logger writing JSON lines to w at the given level.
//
// Example:
//
//	log := logging.New(os.Stderr, zerolog.InfoLevel)
//	dev, err := bc7215.New(port, bc7215.WithLogger(log))
func New(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewConsole creates a Logger writing human-readable lines to stderr.
func NewConsole(level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// ParseLevel maps a configuration string to a zerolog level. Unknown strings
// fall back to info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Info(), keysAndValues).Msg(msg)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error(), keysAndValues).Msg(msg)
}

// withFields folds alternating key-value pairs into the event. A trailing
// key without a value is recorded under itself.
func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			e = e.Interface(key, keysAndValues[i+1])
		} else {
			e = e.Interface(key, key)
		}
	}
	return e
}
