package ringlog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryRecord(msg string) record {
	return record{kind: recordEntry, message: msg}
}

func TestRingFIFO(t *testing.T) {
	r := newRing(16)

	for i := 0; i < 10; i++ {
		ok := r.tryEnqueue(entryRecord(fmt.Sprintf("msg-%d", i)))
		require.True(t, ok)
	}

	for i := 0; i < 10; i++ {
		rec, ok := r.dequeueBlocking()
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("msg-%d", i), rec.message)
	}
	assert.Equal(t, 0, r.len())
}

// A ring of N slots accepts exactly N-1 records while the consumer is
// paused; every further enqueue is rejected without blocking.
func TestRingCapacity(t *testing.T) {
	const capacity = 8
	r := newRing(capacity)

	accepted := 0
	for i := 0; i < capacity*2; i++ {
		if r.tryEnqueue(entryRecord(fmt.Sprintf("msg-%d", i))) {
			accepted++
		}
	}
	assert.Equal(t, capacity-1, accepted)
	assert.Equal(t, capacity-1, r.len())

	// Draining one slot frees exactly one slot.
	_, ok := r.dequeueBlocking()
	require.True(t, ok)
	assert.True(t, r.tryEnqueue(entryRecord("after-drain")))
	assert.False(t, r.tryEnqueue(entryRecord("still-full")))
}

func TestRingRejectedEnqueueDoesNotMutate(t *testing.T) {
	r := newRing(2)
	require.True(t, r.tryEnqueue(entryRecord("kept")))
	require.False(t, r.tryEnqueue(entryRecord("rejected")))

	rec, ok := r.dequeueBlocking()
	require.True(t, ok)
	assert.Equal(t, "kept", rec.message)
	assert.Equal(t, 0, r.len())
}

func TestRingStop(t *testing.T) {
	r := newRing(4)
	require.True(t, r.tryEnqueue(entryRecord("before-stop")))

	r.stop()

	// Enqueues after stop are rejected, but already accepted records
	// remain drainable.
	assert.False(t, r.tryEnqueue(entryRecord("after-stop")))

	rec, ok := r.dequeueBlocking()
	require.True(t, ok)
	assert.Equal(t, "before-stop", rec.message)

	_, ok = r.dequeueBlocking()
	assert.False(t, ok)
}

func TestRingStopWakesBlockedConsumer(t *testing.T) {
	r := newRing(4)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := r.dequeueBlocking()
		assert.False(t, ok)
	}()

	r.stop()
	<-done
}

// Concurrent producers against a single consumer: every accepted
// record arrives exactly once, and each producer's records arrive in
// its own enqueue order.
func TestRingConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 500

	r := newRing(producers*perProducer + 1)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				ok := r.tryEnqueue(record{
					kind:    recordEntry,
					line:    i,
					message: fmt.Sprintf("producer-%d", p),
				})
				assert.True(t, ok)
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[string]int)
	total := 0
	for r.len() > 0 {
		rec, ok := r.dequeueBlocking()
		require.True(t, ok)
		// line carries the per-producer sequence number
		assert.Equal(t, seen[rec.message], rec.line, "per-producer order violated for %s", rec.message)
		seen[rec.message]++
		total++
	}

	assert.Equal(t, producers*perProducer, total)
	for p := 0; p < producers; p++ {
		assert.Equal(t, perProducer, seen[fmt.Sprintf("producer-%d", p)])
	}
}
