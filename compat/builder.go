package compat

import (
	"fmt"

	"github.com/jjansson/ringlog"
)

// Builder creates configured logger adapters for gnet and fasthttp
// from either an existing *ringlog.Logger or a *ringlog.Config.
type Builder struct {
	logger *ringlog.Logger
	logCfg *ringlog.Config
	err    error
}

// NewBuilder creates a new adapter builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing engine to use for the adapters.
// Recommended for applications that already have a central logger.
// If this is set, WithConfig is ignored.
func (b *Builder) WithLogger(l *ringlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("ringlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new engine, used only when
// no existing logger was supplied via WithLogger.
func (b *Builder) WithConfig(cfg *ringlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the engine to use, initializing one if necessary.
func (b *Builder) getLogger() (*ringlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	if b.logCfg == nil {
		return nil, fmt.Errorf("ringlog/compat: no logger and no config provided")
	}

	l := ringlog.New()
	if err := l.Init(b.logCfg); err != nil {
		return nil, err
	}

	// Cache for subsequent builds with this builder.
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter.
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter.
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying engine, initializing it if needed.
func (b *Builder) GetLogger() (*ringlog.Logger, error) {
	return b.getLogger()
}
