package ringlog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"
)

// truncate bounds s to max bytes. Strings are immutable, so the
// substring is safe to hold across goroutines.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// encodeRecord builds a self-contained record on the calling
// goroutine. The potentially expensive formatting, caller lookup and
// bounded copies all happen here, before any lock or ring operation,
// so cross-producer contention stays confined to the ring's cursor
// update.
func encodeRecord(level Level, category, format string, args []any, calldepth int) record {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	file := "???"
	line := 0
	if _, f, l, ok := runtime.Caller(calldepth); ok {
		file = filepath.Base(f)
		line = l
	}

	return record{
		kind:     recordEntry,
		level:    level,
		when:     time.Now(),
		category: truncate(category, maxCategoryLen),
		file:     truncate(file, maxFileLen),
		line:     line,
		message:  truncate(msg, maxMessageLen),
	}
}

// log is the shared entry point behind the public logging surface.
// Outside the Running state it is a silent no-op: logging must never
// be able to fail or crash the host.
func (l *Logger) log(level Level, calldepth int, category, format string, args []any) {
	if !l.state.Running.Load() {
		return
	}

	cfg := l.getConfig()
	if level < cfg.Level {
		return
	}

	if lim := l.limiter.Load(); lim != nil && !lim.Allow() {
		l.countDrop(1)
		return
	}

	rec := encodeRecord(level, category, format, args, calldepth)

	if cfg.Synchronous {
		l.writeInline(rec)
		return
	}
	l.send(rec)
}

// send enqueues rec, accounting for drops. When the ring accepts a
// record again after a dropped stretch, a single report record is
// emitted with the accumulated count; if the report itself is rejected
// the count is restored.
func (l *Logger) send(rec record) {
	r := l.ring.Load()
	if r == nil {
		l.countDrop(1)
		return
	}

	if !r.tryEnqueue(rec) {
		if rec.unreportedDrops > 0 {
			l.state.PendingDropReport.Add(rec.unreportedDrops)
		} else {
			l.countDrop(1)
		}
		return
	}

	if rec.unreportedDrops == 0 {
		if n := l.state.PendingDropReport.Swap(0); n > 0 {
			report := record{
				kind:            recordEntry,
				level:           LevelWarn,
				when:            time.Now(),
				category:        internalCategory,
				file:            "ringlog",
				message:         fmt.Sprintf("%d records dropped", n),
				unreportedDrops: n,
			}
			l.send(report)
		}
	}
}

// countDrop bumps both the cumulative counter and the pending
// report counter.
func (l *Logger) countDrop(n uint64) {
	l.state.Dropped.Add(n)
	l.state.PendingDropReport.Add(n)
}
