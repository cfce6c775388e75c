package ringlog

// Logging surface: one operation per severity. Every call takes a
// category tag and a printf-style format with positional arguments;
// the call site's file and line are captured implicitly.

// Trace logs a message at trace level.
func (l *Logger) Trace(category, format string, args ...any) {
	l.log(LevelTrace, callDepth, category, format, args)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(category, format string, args ...any) {
	l.log(LevelDebug, callDepth, category, format, args)
}

// Info logs a message at info level.
func (l *Logger) Info(category, format string, args ...any) {
	l.log(LevelInfo, callDepth, category, format, args)
}

// Warn logs a message at warning level.
func (l *Logger) Warn(category, format string, args ...any) {
	l.log(LevelWarn, callDepth, category, format, args)
}

// Error logs a message at error level.
func (l *Logger) Error(category, format string, args ...any) {
	l.log(LevelError, callDepth, category, format, args)
}

// Fatal logs a message at fatal level. The engine does not terminate
// the process; FATAL is the highest severity, nothing more.
func (l *Logger) Fatal(category, format string, args ...any) {
	l.log(LevelFatal, callDepth, category, format, args)
}

// Log emits a record at an arbitrary level, attributing the call site
// skip frames above the caller of Log. skip 0 attributes the caller
// itself; wrappers forwarding another API pass 1 per layer so records
// point at the real origin instead of the wrapper.
func (l *Logger) Log(level Level, skip int, category, format string, args ...any) {
	l.log(level, callDepth+skip, category, format, args)
}
