package sim

import "github.com/memsim-project/memsim/sim/trace"

// FIFO evicts the page resident longest, irrespective of intervening hits.
// Bookkeeping is an insertion-order queue: pages enqueue at the tail on
// insertion and dequeue from the head on eviction. Hits never reorder the
// queue, which is what distinguishes FIFO from LRU.
type FIFO struct {
	queue []trace.PageID
}

// NewFIFO creates a FIFO replacement policy.
func NewFIFO() *FIFO {
	return &FIFO{}
}

// OnReference enqueues the page on a miss. Hits leave the queue untouched.
func (f *FIFO) OnReference(page trace.PageID, wasHit bool) {
	if wasHit {
		return
	}
	f.queue = append(f.queue, page)
}

// Victim dequeues and returns the oldest resident page.
func (f *FIFO) Victim() trace.PageID {
	if len(f.queue) == 0 {
		panic("FIFO.Victim: empty queue")
	}
	victim := f.queue[0]
	f.queue = f.queue[1:]
	return victim
}
