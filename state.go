package ringlog

import "sync/atomic"

// State encapsulates the runtime state of the engine. Counters are
// atomics because producers, the writer task and Stats readers touch
// them concurrently.
type State struct {
	Running atomic.Bool

	Dropped   atomic.Uint64 // cumulative records lost before the sinks
	Processed atomic.Uint64 // records handed to the sinks
	FileDrops atomic.Uint64 // records the file sink failed to persist
	Rotations atomic.Uint64 // completed rotations

	// PendingDropReport tracks drops not yet surfaced by a report
	// record; swapped to zero when a report is emitted.
	PendingDropReport atomic.Uint64
}

func (s *State) reset() {
	s.Dropped.Store(0)
	s.Processed.Store(0)
	s.FileDrops.Store(0)
	s.Rotations.Store(0)
	s.PendingDropReport.Store(0)
}
