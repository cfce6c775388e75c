package ringlog

// Builder provides a fluent API for assembling a Config and starting
// an engine from it.
type Builder struct {
	cfg *Config
	err error // accumulated for deferred handling in Build
}

// NewBuilder creates a configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Build creates a new engine and initializes it with the built
// configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := New()
	if err := logger.Init(b.cfg); err != nil {
		return nil, err
	}
	return logger, nil
}

// Config returns the accumulated configuration without starting an
// engine.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// FilePath sets the base path for log files.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// MaxFileBytes sets the rotation threshold. 0 disables rotation.
func (b *Builder) MaxFileBytes(n int64) *Builder {
	b.cfg.MaxFileBytes = n
	return b
}

// BufferSize sets the ring slot count.
func (b *Builder) BufferSize(n int64) *Builder {
	b.cfg.BufferSize = n
	return b
}

// Level sets the minimum severity written.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the minimum severity from a level name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = lvl
	return b
}

// EnableConsole mirrors records to the console stream.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleColor enables ANSI colors on the console rendering.
func (b *Builder) ConsoleColor(enable bool) *Builder {
	b.cfg.ConsoleColor = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for console output.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Synchronous switches the engine to inline writes under a lock.
func (b *Builder) Synchronous(enable bool) *Builder {
	b.cfg.Synchronous = enable
	return b
}

// FlushIntervalMs sets the periodic file sync interval. 0 disables it.
func (b *Builder) FlushIntervalMs(ms int64) *Builder {
	b.cfg.FlushIntervalMs = ms
	return b
}

// MaxLogRate caps producer-side records per second. 0 is unlimited.
func (b *Builder) MaxLogRate(n int64) *Builder {
	b.cfg.MaxLogRate = n
	return b
}
