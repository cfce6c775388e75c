package ringlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Sentinel errors surfaced synchronously from Init and Flush. Failures
// inside the asynchronous pipeline never reach logging callers.
var (
	ErrMissingFilePath = errors.New("file_path is required")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrFileOpen        = errors.New("cannot open log file")
	ErrAlreadyRunning  = errors.New("logger already running")
	ErrNotRunning      = errors.New("logger not running")
)

// Config holds the resolved options consumed by Init.
type Config struct {
	// File output
	FilePath     string `toml:"file_path"`      // required; prefix for all rotated file names
	MaxFileBytes int64  `toml:"max_file_bytes"` // rotation threshold, 0 disables rotation

	// Delivery
	BufferSize int64 `toml:"buffer_size"` // ring slot count; holds BufferSize-1 records
	Level      Level `toml:"level"`       // minimum severity written

	// Console mirror
	EnableConsole bool   `toml:"enable_console"`
	ConsoleColor  bool   `toml:"console_color"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// Modes and timers
	Synchronous     bool  `toml:"synchronous"`       // inline writes under a lock, no writer task
	FlushIntervalMs int64 `toml:"flush_interval_ms"` // periodic file sync, 0 disables
	MaxLogRate      int64 `toml:"max_log_rate"`      // producer records/sec, 0 unlimited
}

var defaultConfig = Config{
	FilePath:        "",
	MaxFileBytes:    0,
	BufferSize:      defaultBufferSize,
	Level:           LevelTrace,
	EnableConsole:   false,
	ConsoleColor:    false,
	ConsoleTarget:   defaultConsoleTarget,
	Synchronous:     false,
	FlushIntervalMs: defaultFlushIntervalMs,
	MaxLogRate:      0,
}

// DefaultConfig returns a copy of the default configuration. The
// default has no file path and does not validate until one is set.
func DefaultConfig() *Config {
	copied := defaultConfig
	return &copied
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	copied := *c
	return &copied
}

// Validate checks the configuration for use by Init.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FilePath) == "" {
		return fmtErrorf("%w", ErrMissingFilePath)
	}

	if c.MaxFileBytes < 0 {
		return fmtErrorf("%w: max_file_bytes cannot be negative: %d", ErrInvalidConfig, c.MaxFileBytes)
	}

	// One slot stays empty, so 2 is the smallest ring that holds anything.
	if c.BufferSize < 2 {
		return fmtErrorf("%w: buffer_size must be at least 2: %d", ErrInvalidConfig, c.BufferSize)
	}

	if !c.Level.valid() {
		return fmtErrorf("%w: level out of range: %d", ErrInvalidConfig, c.Level)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("%w: console_target must be stdout or stderr: %q", ErrInvalidConfig, c.ConsoleTarget)
	}

	if c.FlushIntervalMs < 0 {
		return fmtErrorf("%w: flush_interval_ms cannot be negative: %d", ErrInvalidConfig, c.FlushIntervalMs)
	}

	if c.MaxLogRate < 0 {
		return fmtErrorf("%w: max_log_rate cannot be negative: %d", ErrInvalidConfig, c.MaxLogRate)
	}

	return nil
}

// NewConfigFromFile loads configuration from a TOML file under the
// [ringlog] table and returns a validated Config. A missing file
// yields the defaults (which then fail validation unless file_path is
// supplied some other way).
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("ringlog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "ringlog.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies values from the loader into cfg, keyed by toml
// tag under the given prefix.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with type conversion. The Level
// field additionally accepts level names.
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int32: // Level
		switch v := value.(type) {
		case Level:
			// Registered defaults come back in their original type.
			field.SetInt(int64(v))
		case string:
			lvl, err := ParseLevel(v)
			if err != nil {
				return err
			}
			field.SetInt(int64(lvl))
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected level name or number, got %T", value)
		}

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}
