// Package logging provides the leveled logger used across the module.
package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Level represents different logging levels
type Level int

const (
	// LevelError only logs errors
	LevelError Level = iota
	// LevelWarn logs warnings and errors
	LevelWarn
	// LevelInfo logs general information, warnings and errors
	LevelInfo
	// LevelDebug logs detailed debug information and all above
	LevelDebug
	// LevelTrace logs very detailed trace information and all above
	LevelTrace
)

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// Logger is a small leveled logger. Loggers derived with WithPrefix share
// the parent's level and output, so SetLevel on any of them affects all.
type Logger struct {
	core   *core
	prefix string
}

// core holds the state shared between a logger and its prefixed children.
type core struct {
	mu    sync.RWMutex
	level Level
	out   *log.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the default logger instance. The initial level comes
// from the LOG_LEVEL environment variable (ERROR, WARN, INFO, DEBUG or
// TRACE); it defaults to INFO.
func GetLogger() *Logger {
	once.Do(func() {
		defaultLogger = NewLogger("MEMFS")

		switch os.Getenv("LOG_LEVEL") {
		case "ERROR":
			defaultLogger.SetLevel(LevelError)
		case "WARN":
			defaultLogger.SetLevel(LevelWarn)
		case "INFO":
			defaultLogger.SetLevel(LevelInfo)
		case "DEBUG":
			defaultLogger.SetLevel(LevelDebug)
		case "TRACE":
			defaultLogger.SetLevel(LevelTrace)
		}
	})
	return defaultLogger
}

// NewLogger creates a new logger writing to stdout under the given name
func NewLogger(name string) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmicroseconds | log.LUTC | log.Lshortfile
	return &Logger{
		core: &core{
			level: LevelInfo,
			out:   log.New(os.Stdout, name+": ", flags),
		},
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level Level) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.level = level
}

// shouldLog determines if a message at the given level should be logged
func (l *Logger) shouldLog(level Level) bool {
	l.core.mu.RLock()
	defer l.core.mu.RUnlock()
	return level <= l.core.level
}

// logf performs the actual logging
func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = fmt.Sprintf("[%s] %s: %s", levelNames[level], l.prefix, msg)
	} else {
		msg = fmt.Sprintf("[%s] %s", levelNames[level], msg)
	}
	if err := l.core.out.Output(3, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write log message: %v\n", err)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Trace logs a trace message
func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LevelTrace, format, args...)
}

// WithPrefix returns a logger tagged with the given prefix that shares
// this logger's level and output
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{
		core:   l.core,
		prefix: prefix,
	}
}
