package ringlog

import "time"

// process is the writer task: the sole consumer of the ring and the
// only goroutine performing sink I/O while the engine runs
// asynchronously. Records are copied out of their slot before any sink
// is invoked, so file and console writes never block producers. The
// loop exits when the ring reports stopped-and-drained, after a final
// file sync.
func (l *Logger) process(r *ring, file *fileSink, console *consoleSink) {
	defer l.wg.Done()

	for {
		rec, ok := r.dequeueBlocking()
		if !ok {
			file.sync()
			return
		}

		if rec.kind == recordFlush {
			file.sync()
			if rec.flushed != nil {
				close(rec.flushed)
			}
			continue
		}

		if !file.write(rec) {
			l.state.FileDrops.Add(1)
		}
		if console != nil {
			console.write(rec)
		}
		l.state.Processed.Add(1)
	}
}

// periodicSync nudges the writer task to sync the file at a fixed
// interval by enqueuing flush sentinels. A full ring skips the tick;
// the next one will catch up.
func (l *Logger) periodicSync(r *ring, interval time.Duration, stop <-chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.tryEnqueue(record{kind: recordFlush})
		case <-stop:
			return
		}
	}
}
