// Package logger provides leveled logging for the apply CLI.
// Warnings and errors are always written. When verbose mode is enabled via
// the --verbose flag, debug and info messages are written as well, to help
// users follow the wizard's extraction and submission steps.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu         sync.RWMutex
	verbose    bool
	timestamps bool
	output     io.Writer = os.Stderr
	base                 = build(os.Stderr, false, false)
)

// build creates the zap logger for the given output and verbosity.
func build(w io.Writer, v, ts bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if v {
		level = zapcore.DebugLevel
	}

	cfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
	}
	if ts {
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core).Sugar()
}

// bracketLevelEncoder renders levels as [DEBUG], [INFO], [WARN] and [ERROR].
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = build(output, verbose, timestamps)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. The TUI redirects it to a log file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build(output, verbose, timestamps)
}

// SetTimestamps prefixes each entry with an ISO 8601 time. Used for the log
// file, where entries from several runs accumulate.
func SetTimestamps(on bool) {
	mu.Lock()
	defer mu.Unlock()
	timestamps = on
	base = build(output, verbose, timestamps)
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Infof(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Errorf(format, args...)
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}
