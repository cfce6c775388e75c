package ringlog

// Synchronous mode: no ring, no writer task. Every logging call
// encodes and writes to both sinks inline, serialized by a single
// lock. Lower throughput, simpler ordering; offered as an explicit
// alternative, never concurrently with the asynchronous pipeline.

// SetLockFunc installs a host-supplied lock used by synchronous mode
// in place of the engine's internal mutex. Passing nil restores the
// internal mutex. The asynchronous ring is unaffected.
func (l *Logger) SetLockFunc(fn LockFunc, udata any) {
	l.lock.Store(lockState{fn: fn, udata: udata})
}

func (l *Logger) withSyncLock(f func()) {
	ls := l.lock.Load().(lockState)
	if ls.fn != nil {
		ls.fn(true, ls.udata)
		defer ls.fn(false, ls.udata)
	} else {
		l.syncMu.Lock()
		defer l.syncMu.Unlock()
	}
	f()
}

// writeInline performs the synchronous-mode write path under the sync
// lock. Running is re-checked under the lock so a concurrent Shutdown
// cannot close the file out from under a write.
func (l *Logger) writeInline(rec record) {
	l.withSyncLock(func() {
		if !l.state.Running.Load() {
			return
		}
		if l.file != nil && !l.file.write(rec) {
			l.state.FileDrops.Add(1)
		}
		if l.console != nil {
			l.console.write(rec)
		}
		l.state.Processed.Add(1)
	})
}
