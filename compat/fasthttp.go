package compat

import (
	"fmt"
	"strings"

	"github.com/jjansson/ringlog"
)

// FastHTTPAdapter wraps a ringlog engine to satisfy fasthttp's Logger
// interface. fasthttp only exposes Printf, so the adapter guesses a
// severity from the message content.
type FastHTTPAdapter struct {
	logger        *ringlog.Logger
	category      string
	defaultLevel  ringlog.Level
	levelDetector func(string) (ringlog.Level, bool)
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(logger *ringlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		category:      "FASTHTTP",
		defaultLevel:  ringlog.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithFastHTTPCategory overrides the category tag on emitted records.
func WithFastHTTPCategory(category string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.category = category
	}
}

// WithDefaultLevel sets the level used when detection is inconclusive.
func WithDefaultLevel(level ringlog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect the severity from
// message content. The detector reports ok=false to fall back to the
// default level.
func WithLevelDetector(detector func(string) (ringlog.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	// Attribute the record to fasthttp's call site, not this wrapper.
	a.logger.Log(level, 1, a.category, "%s", msg)
}

// DetectLogLevel guesses a severity from message content.
func DetectLogLevel(msg string) (ringlog.Level, bool) {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return ringlog.LevelError, true
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return ringlog.LevelWarn, true
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return ringlog.LevelDebug, true
	}

	return ringlog.LevelInfo, false
}
