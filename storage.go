package ringlog

import (
	"os"
	"time"
)

// fileSink manages the current output file, its accumulated byte
// count, and size-triggered rotation. It is touched only by the writer
// task (or, in synchronous mode, by callers holding the engine's sync
// lock), so it carries no locking of its own. Rotated files are
// retained indefinitely; the engine never deletes them.
type fileSink struct {
	basePath string
	maxBytes int64 // 0 disables rotation
	state    *State

	file *os.File
	path string // name of the currently open file
	size int64
	buf  []byte
}

func newFileSink(basePath string, maxBytes int64, state *State) *fileSink {
	return &fileSink{
		basePath: basePath,
		maxBytes: maxBytes,
		state:    state,
		buf:      make([]byte, 0, 256),
	}
}

// open creates a fresh file named <base>.<YYYYMMDD_HHMMSS>.
func (s *fileSink) open(at time.Time) error {
	path := s.basePath + "." + at.Format(rotationLayout)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	s.file = f
	s.path = path
	s.size = 0
	return nil
}

// rotateIfNeeded performs the lazy size check before a write. Returns
// false when no file handle is available, in which case the write is
// dropped and rotation is retried on a later write. A rotation that
// would reuse the current filename (same second) is deferred so the
// already-written lines survive.
func (s *fileSink) rotateIfNeeded() bool {
	now := time.Now()

	if s.file == nil {
		// A previous rotation failed; keep retrying lazily.
		if err := s.open(now); err != nil {
			return false
		}
		s.state.Rotations.Add(1)
		return true
	}

	if s.maxBytes == 0 || s.size < s.maxBytes {
		return true
	}

	if s.basePath+"."+now.Format(rotationLayout) == s.path {
		return true
	}

	_ = s.file.Close()
	s.file = nil
	if err := s.open(now); err != nil {
		return false
	}
	s.state.Rotations.Add(1)
	return true
}

// write renders rec and appends it to the current file. Returns false
// when the record could not be persisted. Errors never propagate to
// logging callers.
func (s *fileSink) write(rec record) bool {
	if !s.rotateIfNeeded() {
		return false
	}
	s.buf = appendFileLine(s.buf[:0], rec)
	n, err := s.file.Write(s.buf)
	s.size += int64(n)
	return err == nil
}

func (s *fileSink) sync() {
	if s.file != nil {
		_ = s.file.Sync()
	}
}

// close syncs and closes the current file.
func (s *fileSink) close() error {
	if s.file == nil {
		return nil
	}
	_ = s.file.Sync()
	err := s.file.Close()
	s.file = nil
	if err != nil {
		return fmtErrorf("failed to close log file %q: %w", s.path, err)
	}
	return nil
}
