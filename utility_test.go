package ringlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtErrorfPrefix(t *testing.T) {
	err := fmtErrorf("something broke: %d", 7)
	assert.Equal(t, "ringlog: something broke: 7", err.Error())

	// Already-prefixed formats are not doubled.
	err = fmtErrorf("ringlog: once only")
	assert.Equal(t, "ringlog: once only", err.Error())
}

func TestFmtErrorfWrapping(t *testing.T) {
	err := fmtErrorf("%w: details", ErrInvalidConfig)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestDump(t *testing.T) {
	type inner struct {
		Name  string
		Count int
	}
	s := Dump(inner{Name: "cache", Count: 3})
	assert.Contains(t, s, "Name")
	assert.Contains(t, s, "cache")
	assert.Contains(t, s, "Count")
	// Trimmed for embedding in a single format argument.
	assert.NotEmpty(t, s)
	assert.NotEqual(t, "\n", s[len(s)-1:])
}
