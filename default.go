package ringlog

import "time"

// Package-level convenience API delegating to a process-wide engine.
// The lifecycle state machine makes every call outside Init..Shutdown
// a silent no-op, so the global surface is safe to use from anywhere.

var defaultLogger = New()

// Init initializes the default engine with the provided configuration.
func Init(cfg *Config) error {
	return defaultLogger.Init(cfg)
}

// Shutdown drains and stops the default engine. Safe to call twice.
func Shutdown() error {
	return defaultLogger.Shutdown()
}

// Flush syncs the default engine's file and waits for completion.
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// SetLockFunc installs a host lock for the default engine's
// synchronous mode.
func SetLockFunc(fn LockFunc, udata any) {
	defaultLogger.SetLockFunc(fn, udata)
}

// GetStats returns the default engine's counters.
func GetStats() Stats {
	return defaultLogger.Stats()
}

// Trace logs a message at trace level.
func Trace(category, format string, args ...any) {
	defaultLogger.log(LevelTrace, callDepth, category, format, args)
}

// Debug logs a message at debug level.
func Debug(category, format string, args ...any) {
	defaultLogger.log(LevelDebug, callDepth, category, format, args)
}

// Info logs a message at info level.
func Info(category, format string, args ...any) {
	defaultLogger.log(LevelInfo, callDepth, category, format, args)
}

// Warn logs a message at warning level.
func Warn(category, format string, args ...any) {
	defaultLogger.log(LevelWarn, callDepth, category, format, args)
}

// Error logs a message at error level.
func Error(category, format string, args ...any) {
	defaultLogger.log(LevelError, callDepth, category, format, args)
}

// Fatal logs a message at fatal level without terminating the process.
func Fatal(category, format string, args ...any) {
	defaultLogger.log(LevelFatal, callDepth, category, format, args)
}
