package ringlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.FilePath)
	assert.Equal(t, int64(0), cfg.MaxFileBytes)
	assert.Equal(t, int64(defaultBufferSize), cfg.BufferSize)
	assert.Equal(t, LevelTrace, cfg.Level)
	assert.False(t, cfg.EnableConsole)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	assert.False(t, cfg.Synchronous)
	assert.Equal(t, int64(defaultFlushIntervalMs), cfg.FlushIntervalMs)
	assert.Equal(t, int64(0), cfg.MaxLogRate)

	// Each call hands out an independent copy.
	cfg.BufferSize = 7
	assert.Equal(t, int64(defaultBufferSize), DefaultConfig().BufferSize)
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilePath = "/tmp/a.log"

	clone := cfg.Clone()
	clone.FilePath = "/tmp/b.log"
	clone.Level = LevelError

	assert.Equal(t, "/tmp/a.log", cfg.FilePath)
	assert.Equal(t, LevelTrace, cfg.Level)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.FilePath = "/tmp/test.log"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"missing path", func(c *Config) { c.FilePath = "" }, ErrMissingFilePath},
		{"blank path", func(c *Config) { c.FilePath = "   " }, ErrMissingFilePath},
		{"negative max bytes", func(c *Config) { c.MaxFileBytes = -1 }, ErrInvalidConfig},
		{"buffer too small", func(c *Config) { c.BufferSize = 1 }, ErrInvalidConfig},
		{"zero buffer", func(c *Config) { c.BufferSize = 0 }, ErrInvalidConfig},
		{"level out of range", func(c *Config) { c.Level = Level(99) }, ErrInvalidConfig},
		{"bad console target", func(c *Config) { c.ConsoleTarget = "syslog" }, ErrInvalidConfig},
		{"negative flush interval", func(c *Config) { c.FlushIntervalMs = -5 }, ErrInvalidConfig},
		{"negative rate", func(c *Config) { c.MaxLogRate = -1 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, tt.want)
		})
	}

	// Edge values that must pass.
	cfg := valid()
	cfg.BufferSize = 2
	cfg.MaxFileBytes = 0
	cfg.FlushIntervalMs = 0
	require.NoError(t, cfg.Validate())
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ringlog.toml")
	content := `[ringlog]
file_path = "/tmp/from-toml.log"
max_file_bytes = 1048576
buffer_size = 512
level = "warn"
enable_console = true
console_color = true
console_target = "stdout"
flush_interval_ms = 250
max_log_rate = 1000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-toml.log", cfg.FilePath)
	assert.Equal(t, int64(1048576), cfg.MaxFileBytes)
	assert.Equal(t, int64(512), cfg.BufferSize)
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.True(t, cfg.EnableConsole)
	assert.True(t, cfg.ConsoleColor)
	assert.Equal(t, "stdout", cfg.ConsoleTarget)
	assert.Equal(t, int64(250), cfg.FlushIntervalMs)
	assert.Equal(t, int64(1000), cfg.MaxLogRate)
}

func TestNewConfigFromFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ringlog.toml")
	content := `[ringlog]
file_path = "/tmp/partial.log"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	// Unmentioned keys keep their defaults.
	assert.Equal(t, int64(defaultBufferSize), cfg.BufferSize)
	assert.Equal(t, LevelTrace, cfg.Level)
}

func TestNewConfigFromFileNumericLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ringlog.toml")
	content := `[ringlog]
file_path = "/tmp/numeric.log"
level = 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, LevelError, cfg.Level)
}

func TestNewConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ringlog.toml")
	content := `[ringlog]
buffer_size = 1
file_path = "/tmp/bad.log"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewConfigFromFile(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	// A missing file yields defaults, which fail validation for lack of
	// a file path.
	_, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, ErrMissingFilePath)
}
