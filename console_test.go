package ringlog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsoleSinkPlain(t *testing.T) {
	var out bytes.Buffer
	sink := newConsoleSink(&out, false)

	sink.write(record{
		kind:     recordEntry,
		level:    LevelInfo,
		when:     time.Date(2026, 8, 30, 23, 59, 1, 0, time.UTC),
		category: "CONS",
		file:     "a.go",
		line:     12,
		message:  "mirrored",
	})

	assert.Equal(t, "23:59:01 INFO  [CONS] a.go:12: mirrored\n", out.String())
}

func TestConsoleSinkColor(t *testing.T) {
	var out bytes.Buffer
	sink := newConsoleSink(&out, true)

	sink.write(record{
		kind:     recordEntry,
		level:    LevelWarn,
		when:     time.Now(),
		category: "CONS",
		file:     "a.go",
		line:     12,
		message:  "tinted",
	})

	s := out.String()
	assert.Contains(t, s, "\x1b[33mWARN ")
	assert.Contains(t, s, colorReset)
	assert.True(t, strings.HasSuffix(s, " tinted\n"))
}

func TestConsoleSinkReusesBuffer(t *testing.T) {
	var out bytes.Buffer
	sink := newConsoleSink(&out, false)

	rec := record{kind: recordEntry, level: LevelInfo, when: time.Now(), category: "C", file: "f.go", line: 1}
	rec.message = "first, deliberately the longer of the two"
	sink.write(rec)
	rec.message = "second"
	sink.write(rec)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "the longer of the two"))
	assert.True(t, strings.HasSuffix(lines[1], "second"))
}
