package ringlog

import "time"

type recordKind uint8

const (
	recordEntry recordKind = iota
	recordFlush
)

// record is the unit moved through the ring. Once encoded it is
// immutable and self-contained: every field is an owned copy, truncated
// to its fixed capacity, so the producer's stack may be long gone by
// the time the writer task renders it.
type record struct {
	kind     recordKind
	level    Level
	when     time.Time
	category string
	file     string
	line     int
	message  string

	// flushed is closed by the writer task after the file sink has been
	// synced. Set only on recordFlush sentinels.
	flushed chan struct{}

	// unreportedDrops carries the drop count of a drop-report record so
	// it can be restored if the report itself is rejected.
	unreportedDrops uint64
}

// LockFunc acquires (lock=true) or releases (lock=false) a
// host-supplied lock. Installing one via SetLockFunc switches
// synchronous mode to use it instead of the engine's internal mutex.
type LockFunc func(lock bool, udata any)

type lockState struct {
	fn    LockFunc
	udata any
}

// Stats is a snapshot of the engine's counters.
type Stats struct {
	Dropped   uint64 // records rejected before reaching the ring or by a full ring
	Processed uint64 // records handed to the sinks
	FileDrops uint64 // records the file sink could not persist
	Rotations uint64 // completed file rotations
}
