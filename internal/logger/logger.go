// Package logger provides structured logging and run metrics for dhaka-daily.
//
// Logs are written through zerolog, either as JSON lines (for schedulers that
// collect stdout) or through zerolog's console writer for humans. The API stays
// small: a message, optional Fields, and an error for Error.
//
// Example usage:
//
//	logger.Info("Digest sent", logger.Fields{
//	    "chat_id": "-100123",
//	    "length":  812,
//	})
//
//	logger.Error("Send failed", logger.Fields{"chat_id": chatID}, err)
//
//	logger.IncrCounter("telegram.sent")
//	logger.RecordTiming("telegram.send", time.Since(start))
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level represents log severity
type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

// Format selects the log encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger provides structured logging
type Logger struct {
	zl zerolog.Logger
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a JSON logger with the given minimum level.
func New(level Level, output io.Writer) *Logger {
	zl := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// NewConsole creates a human-readable logger using zerolog's console writer.
func NewConsole(level Level, output io.Writer) *Logger {
	cw := zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen}
	zl := zerolog.New(cw).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// ParseLevel accepts debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelInfo, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// Configure builds a logger from textual settings and installs it as the default.
func Configure(level string, format Format, output io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		SetDefault(New(lvl, output))
	case FormatConsole, "":
		SetDefault(NewConsole(lvl, output))
	default:
		return fmt.Errorf("invalid log format %q (must be 'console' or 'json')", format)
	}
	return nil
}

// SetDefault sets the logger used by the package-level functions.
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// log writes a structured log entry
func (l *Logger) log(level Level, message string, fields Fields, err error) {
	ev := l.zl.WithLevel(level)
	if !ev.Enabled() {
		return
	}
	if len(fields) > 0 {
		ev = ev.Fields(map[string]interface{}(fields))
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(message)
}

// Debug logs detailed diagnostic information.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs general operational information.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a problem that does not stop the run.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs a failure together with its error.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using default logger

func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}
