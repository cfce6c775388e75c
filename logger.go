package ringlog

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Logger is the engine: it owns the ring, the writer task and the
// sinks, and brackets their existence through Init and Shutdown.
// The zero value is not usable; create instances with New.
type Logger struct {
	cfg   atomic.Value // *Config
	state State

	initMu sync.Mutex // serializes Init/Shutdown transitions

	ring     atomic.Pointer[ring]
	limiter  atomic.Pointer[rate.Limiter]
	wg       sync.WaitGroup
	syncStop chan struct{}

	// file and console are owned by the writer task while running
	// asynchronously; in synchronous mode they are guarded by the sync
	// lock below.
	file    *fileSink
	console *consoleSink

	// Synchronous-mode lock: the internal mutex unless a host lock has
	// been installed via SetLockFunc.
	syncMu sync.Mutex
	lock   atomic.Value // lockState
}

// New creates an engine in the Uninitialized state.
func New() *Logger {
	l := &Logger{}
	l.cfg.Store(DefaultConfig())
	l.lock.Store(lockState{})
	return l
}

// Init validates cfg, opens the first log file, allocates the ring and
// starts the writer task. On any failure every resource acquired so
// far is released and the engine stays Uninitialized. Calling Init on
// a running engine fails with ErrAlreadyRunning.
func (l *Logger) Init(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("%w: configuration cannot be nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.state.Running.Load() {
		return fmtErrorf("%w", ErrAlreadyRunning)
	}

	cfg = cfg.Clone()

	file := newFileSink(cfg.FilePath, cfg.MaxFileBytes, &l.state)
	if err := file.open(time.Now()); err != nil {
		return fmtErrorf("%w: %v", ErrFileOpen, err)
	}

	var console *consoleSink
	if cfg.EnableConsole {
		w := os.Stderr
		if cfg.ConsoleTarget == "stdout" {
			w = os.Stdout
		}
		console = newConsoleSink(w, cfg.ConsoleColor)
	}

	if cfg.MaxLogRate > 0 {
		l.limiter.Store(rate.NewLimiter(rate.Limit(cfg.MaxLogRate), int(cfg.MaxLogRate)))
	} else {
		l.limiter.Store(nil)
	}

	l.cfg.Store(cfg)
	l.file = file
	l.console = console
	l.state.reset()

	if cfg.Synchronous {
		l.ring.Store(nil)
		l.state.Running.Store(true)
		return nil
	}

	r := newRing(cfg.BufferSize)
	l.ring.Store(r)

	l.wg.Add(1)
	go l.process(r, file, console)

	if cfg.FlushIntervalMs > 0 {
		l.syncStop = make(chan struct{})
		l.wg.Add(1)
		go l.periodicSync(r, time.Duration(cfg.FlushIntervalMs)*time.Millisecond, l.syncStop)
	}

	l.state.Running.Store(true)
	return nil
}

// Shutdown stops the engine: intake is cut off first, then the writer
// task drains every previously accepted record to the sinks, exits,
// and the file is synced and closed. A second Shutdown, or one on an
// engine that never started, is a no-op. The engine may be Init-ed
// again afterwards.
func (l *Logger) Shutdown() error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	if !l.state.Running.Load() {
		return nil
	}
	l.state.Running.Store(false)

	if r := l.ring.Load(); r != nil {
		if l.syncStop != nil {
			close(l.syncStop)
			l.syncStop = nil
		}
		r.stop()
		l.wg.Wait()
		l.ring.Store(nil)
	}

	// Both modes close under the sync lock: inline writes, and a Flush
	// that saw Running but lost the race to the nilled ring, read the
	// sink pointers under that lock.
	var err error
	l.withSyncLock(func() {
		err = l.file.close()
		l.file = nil
		l.console = nil
	})
	return err
}

// Flush forces a sync of the current file and waits for it to complete
// or for the timeout to expire.
func (l *Logger) Flush(timeout time.Duration) error {
	if !l.state.Running.Load() {
		return fmtErrorf("%w", ErrNotRunning)
	}

	r := l.ring.Load()
	if r == nil {
		// Synchronous mode syncs inline.
		l.withSyncLock(func() {
			if l.file != nil {
				l.file.sync()
			}
		})
		return nil
	}

	done := make(chan struct{})
	if !r.tryEnqueue(record{kind: recordFlush, flushed: done}) {
		return fmtErrorf("flush request rejected, ring full")
	}

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush (%v)", timeout)
	}
}

// Stats returns a snapshot of the engine counters. Counters survive
// until the next Init.
func (l *Logger) Stats() Stats {
	return Stats{
		Dropped:   l.state.Dropped.Load(),
		Processed: l.state.Processed.Load(),
		FileDrops: l.state.FileDrops.Load(),
		Rotations: l.state.Rotations.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

func (l *Logger) getConfig() *Config {
	return l.cfg.Load().(*Config)
}
