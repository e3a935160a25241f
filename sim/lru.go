package sim

import (
	"container/list"

	"github.com/memsim-project/memsim/sim/trace"
)

// LRU evicts the least recently used resident page. Bookkeeping is a
// recency list plus a page index: every reference, hit or miss, moves the
// page to the most-recently-used end in O(1).
type LRU struct {
	order *list.List // front = most recently used, back = least
	elems map[trace.PageID]*list.Element
}

// NewLRU creates an LRU replacement policy.
func NewLRU() *LRU {
	return &LRU{
		order: list.New(),
		elems: make(map[trace.PageID]*list.Element),
	}
}

// OnReference promotes the page to the most-recently-used end, inserting it
// on a miss.
func (l *LRU) OnReference(page trace.PageID, wasHit bool) {
	if wasHit {
		l.order.MoveToFront(l.elems[page])
		return
	}
	l.elems[page] = l.order.PushFront(page)
}

// Victim removes and returns the least-recently-used page.
func (l *LRU) Victim() trace.PageID {
	back := l.order.Back()
	if back == nil {
		panic("LRU.Victim: empty recency list")
	}
	victim := l.order.Remove(back).(trace.PageID)
	delete(l.elems, victim)
	return victim
}
