package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/memsim-project/memsim/sim/trace"
)

// clockEntry is one slot in the clock ring.
type clockEntry struct {
	page   trace.PageID
	refbit bool
}

// Clock implements the second-chance approximation of LRU. Resident pages
// live in a circular list, each tagged with a reference bit set on hit. The
// eviction hand sweeps the ring, clearing set bits (granting a second
// chance) until it lands on a clear one; the new page takes the freed slot
// with its bit set and the hand moves past it.
type Clock struct {
	ring     []clockEntry
	index    map[trace.PageID]int
	hand     int
	freeSlot int // slot vacated by the last Victim call, -1 when none
}

// NewClock creates a Clock replacement policy.
func NewClock() *Clock {
	return &Clock{
		index:    make(map[trace.PageID]int),
		freeSlot: -1,
	}
}

// OnReference sets the reference bit on a hit. On a miss it places the page
// in the slot freed by the preceding eviction, or appends while the ring is
// still filling.
func (c *Clock) OnReference(page trace.PageID, wasHit bool) {
	if wasHit {
		c.ring[c.index[page]].refbit = true
		return
	}
	if c.freeSlot >= 0 {
		slot := c.freeSlot
		c.freeSlot = -1
		c.ring[slot] = clockEntry{page: page, refbit: true}
		c.index[page] = slot
		c.hand = (slot + 1) % len(c.ring)
		return
	}
	c.ring = append(c.ring, clockEntry{page: page, refbit: true})
	c.index[page] = len(c.ring) - 1
}

// Victim sweeps the hand until a clear reference bit is found, clearing set
// bits along the way, and returns the page in that slot.
func (c *Clock) Victim() trace.PageID {
	if len(c.ring) == 0 {
		panic("Clock.Victim: empty ring")
	}
	for {
		if !c.ring[c.hand].refbit {
			victim := c.ring[c.hand].page
			delete(c.index, victim)
			c.freeSlot = c.hand
			return victim
		}
		logrus.Debugf("second chance to page %s at slot %d", c.ring[c.hand].page, c.hand)
		c.ring[c.hand].refbit = false
		c.hand = (c.hand + 1) % len(c.ring)
	}
}
