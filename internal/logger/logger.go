// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the library manager.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// Log output is line oriented:
//
//	[2026-03-14 15:09:26] [INFO] Book added: 978-1 - The Mythical Man-Month
//
// Every line is written both to standard output and to the configured log
// file. The file is opened on construction, appended to, and closed once via
// Close at process shutdown.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	logFile *os.File
}

// NewLogger constructs a production-ready *Logger writing to both stdout and
// the append-only log file at logPath.
//
// If the log file cannot be opened the logger falls back to stdout only;
// logging must never prevent the application from starting.
func NewLogger(logPath string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.TimeFieldFormat = timestampLayout

	writers := []io.Writer{lineWriter(os.Stdout)}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		writers = append(writers, lineWriter(logFile))
	} else {
		logFile = nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, logFile: logFile}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close flushes and closes the underlying log file.
// Safe to call on a stdout-only or Nop logger.
func (l *Logger) Close() {
	if l.logFile != nil {
		_ = l.logFile.Close()
		l.logFile = nil
	}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger. The log file handle stays owned by
// the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// lineWriter configures a zerolog.ConsoleWriter that renders events as
// `[timestamp] [LEVEL] message` lines on the given writer.
func lineWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: timestampLayout,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%v]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", levelName(i))
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%v", i)
		},
	}
}

// levelName maps zerolog level labels to the level names used in the log
// sink: INFO, WARNING, ERROR. Other zerolog levels keep their upper-cased
// label.
func levelName(i interface{}) string {
	label := strings.ToUpper(fmt.Sprintf("%v", i))
	if label == "WARN" {
		return "WARNING"
	}
	return label
}
