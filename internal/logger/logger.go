// Package logger provides leveled logging for the lotto-oracle binaries.
// It wraps the standard log package with level filtering so that verbose
// per-number analysis output can be switched on without touching call sites.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level represents a logging level.
type Level int

const (
	// DebugLevel logs per-number analysis detail; usually disabled.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs recoverable problems such as a failed notification send.
	WarnLevel
	// ErrorLevel logs failures that abort the current operation.
	ErrorLevel
)

// Logger provides leveled logging.
type Logger struct {
	level  Level
	logger *log.Logger
}

var defaultLogger *Logger

// Init initializes the default logger with the specified level and format.
// Unknown levels fall back to info. The "text" format includes source file
// positions; anything else uses the plain timestamped format.
func Init(level string, format string) {
	var l Level
	switch strings.ToLower(level) {
	case "debug":
		l = DebugLevel
	case "info":
		l = InfoLevel
	case "warn":
		l = WarnLevel
	case "error":
		l = ErrorLevel
	default:
		l = InfoLevel
	}

	flags := log.LstdFlags | log.Lmicroseconds
	if strings.ToLower(format) == "text" {
		flags |= log.Lshortfile
	}

	defaultLogger = &Logger{
		level:  l,
		logger: log.New(os.Stderr, "", flags),
	}
}

// Debug logs a message at DebugLevel.
func Debug(format string, args ...interface{}) {
	if defaultLogger != nil && defaultLogger.level <= DebugLevel {
		_ = defaultLogger.logger.Output(2, fmt.Sprintf("[DEBUG] "+format, args...))
	}
}

// Info logs a message at InfoLevel.
func Info(format string, args ...interface{}) {
	if defaultLogger != nil && defaultLogger.level <= InfoLevel {
		_ = defaultLogger.logger.Output(2, fmt.Sprintf("[INFO] "+format, args...))
	}
}

// Warn logs a message at WarnLevel.
func Warn(format string, args ...interface{}) {
	if defaultLogger != nil && defaultLogger.level <= WarnLevel {
		_ = defaultLogger.logger.Output(2, fmt.Sprintf("[WARN] "+format, args...))
	}
}

// Error logs a message at ErrorLevel.
func Error(format string, args ...interface{}) {
	if defaultLogger != nil && defaultLogger.level <= ErrorLevel {
		_ = defaultLogger.logger.Output(2, fmt.Sprintf("[ERROR] "+format, args...))
	}
}

// Fatal logs a message at ErrorLevel and exits.
func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf("[FATAL] "+format, args...)
	if defaultLogger != nil {
		_ = defaultLogger.logger.Output(2, msg)
	} else {
		log.Print(msg)
	}
	os.Exit(1)
}
