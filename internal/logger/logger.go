// Package logger provides the leveled diagnostic output used by the
// healex commands. Info and Error always print; Debug is gated on
// verbose mode. Every line carries a level prefix and a timestamp:
//
//	[DEBUG] 2026/08/24 10:04:55 scanned main.hl: 38 token(s)
package logger

import (
	"io"
	"log"
	"os"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelError
)

var levelPrefixes = [...]string{
	levelDebug: "[DEBUG] ",
	levelInfo:  "[INFO]  ",
	levelError: "[ERROR] ",
}

// Logger writes leveled, timestamped messages to a single destination.
type Logger struct {
	verbose bool
	levels  [len(levelPrefixes)]*log.Logger
}

// New creates a logger writing to w. With verbose false, Debug
// messages are dropped.
func New(verbose bool, w io.Writer) *Logger {
	l := &Logger{verbose: verbose}
	for lv, prefix := range levelPrefixes {
		l.levels[lv] = log.New(w, prefix, log.Ldate|log.Ltime)
	}
	return l
}

// SetVerbose enables or disables Debug output.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// IsVerbose reports whether Debug output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose
}

// Debug logs a diagnostic message. Dropped unless verbose mode is on.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.levels[levelDebug].Printf(format, args...)
	}
}

// Info logs a progress message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.levels[levelInfo].Printf(format, args...)
}

// Error logs a failure message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.levels[levelError].Printf(format, args...)
}

// The commands share one default logger on stderr; verbose mode is
// switched on it after flag parsing.

var defaultLogger = New(false, os.Stderr)

// SetDefault replaces the default logger instance.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger
}

// SetVerbose enables or disables Debug output on the default logger.
func SetVerbose(verbose bool) {
	defaultLogger.SetVerbose(verbose)
}

// IsVerbose reports whether the default logger prints Debug output.
func IsVerbose() bool {
	return defaultLogger.IsVerbose()
}

// Debug logs a diagnostic message through the default logger.
func Debug(format string, args ...interface{}) {
	defaultLogger.Debug(format, args...)
}

// Info logs a progress message through the default logger.
func Info(format string, args ...interface{}) {
	defaultLogger.Info(format, args...)
}

// Error logs a failure message through the default logger.
func Error(format string, args ...interface{}) {
	defaultLogger.Error(format, args...)
}
