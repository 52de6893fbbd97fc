// Package logging provides unified logging functionality for MRU.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/donghojung/mru/internal/constants"
)

// Logger provides logging capabilities for MRU.
type Logger interface {
	// Debug outputs debug information (only when MRU_DEBUG=1)
	Debug(format string, args ...interface{})

	// Log writes to the log file with timestamp
	Log(format string, args ...interface{})

	// Warn outputs warning to stderr and log file
	Warn(format string, args ...interface{})

	// Error outputs error to stderr and log file
	Error(format string, args ...interface{})

	// SetMode sets the current command mode for context (add, search, ...)
	SetMode(mode string)

	// SetQuiet suppresses the stderr echo of Warn and Error
	SetQuiet(quiet bool)

	// StartTimer starts a timer for measuring operation duration
	StartTimer(operation string) *Timer

	// Close closes the log file
	Close() error
}

// Timer represents a timer for measuring operation duration
type Timer struct {
	operation string
	start     time.Time
	logger    *fileLogger
}

// StopWithResult stops the timer and logs the result
func (t *Timer) StopWithResult(success bool, detail string) time.Duration {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		status := "completed"
		level := "INFO"
		if !success {
			status = "failed"
			level = "WARN"
		}
		if detail != "" {
			t.logger.logWithLevel(level, "%s %s in %v: %s", t.operation, status, elapsed, detail)
		} else {
			t.logger.logWithLevel(level, "%s %s in %v", t.operation, status, elapsed)
		}
	}
	return elapsed
}

type fileLogger struct {
	file   *os.File
	stderr io.Writer
	mode   string
	debug  bool
	quiet  bool
	mu     sync.Mutex
}

// NewFile creates a Logger that writes to logPath and echoes warnings and
// errors to w.
func NewFile(logPath string, w io.Writer, debug bool) (Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644) //nolint:gosec // G304: logPath is derived from the store location
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &fileLogger{
		file:   file,
		stderr: w,
		debug:  debug,
	}, nil
}

// NewStdout creates a logger that only outputs to stderr.
func NewStdout(debug bool) Logger {
	return &fileLogger{
		stderr: os.Stderr,
		debug:  debug,
	}
}

// NewWriter creates a logger that echoes to w instead of stderr.
// Used by tests to capture diagnostics.
func NewWriter(w io.Writer, debug bool) Logger {
	return &fileLogger{
		stderr: w,
		debug:  debug,
	}
}

func (l *fileLogger) SetMode(mode string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mode = mode
}

func (l *fileLogger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quiet = quiet
}

// getCaller returns the caller function name (skipping internal logging frames)
func getCaller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	// Extract just the function name from the full path
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	// Shorten the package path
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// writeLine appends a formatted entry to the log file.
// Caller must hold the lock.
func (l *fileLogger) writeLine(level, caller, msg string) {
	if l.file == nil {
		return
	}
	timestamp := time.Now().Format("06-01-02 15:04:05.0")
	// Format: [timestamp] [level] [mode] [caller] message
	line := fmt.Sprintf("[%s] [%-5s] [%s] [%s] %s\n", timestamp, level, l.mode, caller, msg)
	if _, err := l.file.WriteString(line); err != nil {
		fmt.Fprintf(l.stderr, "Failed to write to log file: %v\n", err)
	}
}

// logWithLevel writes a log entry with the specified level
func (l *fileLogger) logWithLevel(level string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	caller := getCaller(3) // Skip logWithLevel, the public method, and the caller
	l.writeLine(level, caller, msg)
}

func (l *fileLogger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	caller := getCaller(2)
	fmt.Fprintf(l.stderr, "[DEBUG] [%s] %s\n", caller, msg)
	l.writeLine("DEBUG", caller, msg)
}

func (l *fileLogger) Log(format string, args ...interface{}) {
	l.logWithLevel("INFO", format, args...)
}

func (l *fileLogger) Warn(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if !l.quiet {
		fmt.Fprintf(l.stderr, "%s: warning: %s\n", constants.AppDirName, msg)
	}
	l.writeLine("WARN", getCaller(2), msg)
}

func (l *fileLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if !l.quiet {
		fmt.Fprintf(l.stderr, "%s: %s\n", constants.AppDirName, msg)
	}
	l.writeLine("ERROR", getCaller(2), msg)
}

func (l *fileLogger) StartTimer(operation string) *Timer {
	// Log start only if file is available
	if l.file != nil {
		l.logWithLevel("INFO", "%s started", operation)
	}
	return &Timer{
		operation: operation,
		start:     time.Now(),
		logger:    l,
	}
}

func (l *fileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Global logger instance
var globalLogger Logger = NewStdout(os.Getenv(constants.EnvDebug) == "1")

// SetGlobal sets the global logger instance.
func SetGlobal(l Logger) {
	globalLogger = l
}

// Global returns the global logger instance.
func Global() Logger {
	return globalLogger
}

// Debug logs debug information using the global logger.
func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

// Log logs information using the global logger.
func Log(format string, args ...interface{}) {
	globalLogger.Log(format, args...)
}

// Warn logs a warning using the global logger.
func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

// Error logs an error using the global logger.
func Error(format string, args ...interface{}) {
	globalLogger.Error(format, args...)
}

// StartTimer starts a timer for measuring operation duration using the global logger.
func StartTimer(operation string) *Timer {
	return globalLogger.StartTimer(operation)
}
