package ringlog

// Bounded record field capacities. Fields are truncated on copy,
// never overflowed, so an encoded record has a fixed upper size.
const (
	maxCategoryLen = 32
	maxFileLen     = 64
	maxMessageLen  = 1024
)

// Time layouts
const (
	fileTimeLayout    = "2006-01-02 15:04:05"
	consoleTimeLayout = "15:04:05"
	rotationLayout    = "20060102_150405"
)

// ANSI escape codes for console output
const (
	colorReset  = "\x1b[0m"
	colorPrefix = "\x1b[90m" // bright black for the [cat] file:line: prefix
)

// Defaults
const (
	defaultBufferSize      = 1024
	defaultFlushIntervalMs = 100
	defaultConsoleTarget   = "stderr"
)

// Call depth from the public logging surface down to runtime.Caller
// inside encodeRecord: caller -> Trace/Debug/... -> log -> encodeRecord.
// Both the Logger methods and the package-level functions sit exactly
// one frame above log.
const callDepth = 3

// Category used for engine-emitted records (drop reports).
const internalCategory = "LOG"
