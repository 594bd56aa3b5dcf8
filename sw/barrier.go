package sw

import "sync"

// barrier is a reusable rendezvous for a fixed number of goroutines. Once
// broken it releases every waiter and refuses new ones.
type barrier struct {
	mu         sync.Mutex
	cond       sync.Cond
	parties    int
	waiting    int
	generation uint64
	broken     bool
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond.L = &b.mu
	return b
}

// Wait blocks until all parties have arrived. It reports false if the
// barrier was broken before the generation completed.
func (b *barrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return false
	}
	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return true
	}
	for gen == b.generation && !b.broken {
		b.cond.Wait()
	}
	return gen != b.generation
}

// Break wakes all waiters. Subsequent Waits return false immediately.
func (b *barrier) Break() {
	b.mu.Lock()
	b.broken = true
	b.mu.Unlock()
	b.cond.Broadcast()
}
