package ringlog

import "sync"

// ring is a bounded multi-producer, single-consumer queue of records.
// One slot is always kept empty so that full and empty states are
// distinguishable by cursor comparison alone: a ring of N slots holds
// at most N-1 live records. Capacity is fixed for the ring's lifetime.
type ring struct {
	mu      sync.Mutex
	cond    *sync.Cond
	slots   []record
	write   int // next slot to fill, advanced only by producers under mu
	read    int // next slot to drain, advanced only by the writer task
	stopped bool
}

func newRing(capacity int64) *ring {
	r := &ring{slots: make([]record, capacity)}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// tryEnqueue copies rec into the next write slot and wakes the
// consumer. It never blocks: a full or stopped ring rejects the record
// immediately without mutating state. Safe for any number of
// concurrent producers.
func (r *ring) tryEnqueue(rec record) bool {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return false
	}
	next := (r.write + 1) % len(r.slots)
	if next == r.read {
		r.mu.Unlock()
		return false
	}
	r.slots[r.write] = rec
	r.write = next
	r.mu.Unlock()
	r.cond.Signal()
	return true
}

// dequeueBlocking waits until a record is available or the ring has
// been stopped. ok is false exactly when the ring is stopped and fully
// drained. Callable only by the single consumer.
func (r *ring) dequeueBlocking() (rec record, ok bool) {
	r.mu.Lock()
	for r.read == r.write && !r.stopped {
		r.cond.Wait()
	}
	if r.read == r.write {
		r.mu.Unlock()
		return record{}, false
	}
	rec = r.slots[r.read]
	r.slots[r.read] = record{} // drop slot references before unlocking
	r.read = (r.read + 1) % len(r.slots)
	r.mu.Unlock()
	return rec, true
}

// stop marks the ring stopped and wakes the consumer. Enqueued records
// remain drainable; new enqueues are rejected.
func (r *ring) stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
	r.cond.Broadcast()
}

// len reports the number of live records.
func (r *ring) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (r.write - r.read + len(r.slots)) % len(r.slots)
}
