package ringlog

import "strings"

// Level is the ordinal severity of a record, totally ordered from
// LevelTrace (lowest) to LevelFatal (highest).
type Level int32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// Names space-padded to a fixed width of 5 for line output.
var levelPadded = [...]string{"TRACE", "DEBUG", "INFO ", "WARN ", "ERROR", "FATAL"}

// Per-level ANSI colors: bright blue, cyan, green, yellow, red, magenta.
var levelColors = [...]string{"\x1b[94m", "\x1b[36m", "\x1b[32m", "\x1b[33m", "\x1b[31m", "\x1b[35m"}

// String returns the upper-case level name, or "UNKNOWN" for values
// outside the defined range.
func (l Level) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

func (l Level) padded() string {
	if !l.valid() {
		return "?????"
	}
	return levelPadded[l]
}

func (l Level) color() string {
	if !l.valid() {
		return ""
	}
	return levelColors[l]
}

// ParseLevel converts a level name (case-insensitive) to its Level value.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelTrace, fmtErrorf("invalid level: %q (use trace, debug, info, warn, error, fatal)", s)
	}
}
