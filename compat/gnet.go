package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/jjansson/ringlog"
)

// GnetAdapter wraps a ringlog engine to satisfy gnet's
// logging.Logger interface. All records share one category tag.
type GnetAdapter struct {
	logger       *ringlog.Logger
	category     string
	fatalHandler func(msg string)
}

// NewGnetAdapter creates a new gnet-compatible logger adapter.
func NewGnetAdapter(logger *ringlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger:   logger,
		category: "GNET",
		fatalHandler: func(msg string) {
			os.Exit(1) // default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior.
type GnetOption func(*GnetAdapter)

// WithGnetCategory overrides the category tag on emitted records.
func WithGnetCategory(category string) GnetOption {
	return func(a *GnetAdapter) {
		a.category = category
	}
}

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Log(ringlog.LevelDebug, 1, a.category, format, args...)
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Log(ringlog.LevelInfo, 1, a.category, format, args...)
}

// Warnf logs at warn level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Log(ringlog.LevelWarn, 1, a.category, format, args...)
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Log(ringlog.LevelError, 1, a.category, format, args...)
}

// Fatalf logs at fatal level and triggers the fatal handler. The
// engine itself never exits the process, so the handler owns that
// decision.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	a.logger.Log(ringlog.LevelFatal, 1, a.category, format, args...)

	// Give pending records a chance to reach disk before exit.
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(fmt.Sprintf(format, args...))
	}
}
