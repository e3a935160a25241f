package sim

import "github.com/memsim-project/memsim/sim/trace"

// Optimal (Belady) evicts the resident page whose next reference lies
// farthest in the future; a page never referenced again wins outright. It
// needs the full materialized trace up front, so it carries O(trace length)
// bookkeeping where the other policies stay bounded by the frame count.
type Optimal struct {
	positions map[trace.PageID][]int // ascending future reference indices per page
	resident  []trace.PageID         // insertion order, for deterministic tie-breaks
	isRes     map[trace.PageID]bool
	cursor    int // index of the reference currently being processed
}

// NewOptimal creates an Optimal replacement policy with lookahead over the
// given materialized trace.
func NewOptimal(future []trace.Reference) *Optimal {
	positions := make(map[trace.PageID][]int)
	for i, ref := range future {
		positions[ref.Page] = append(positions[ref.Page], i)
	}
	return &Optimal{
		positions: positions,
		isRes:     make(map[trace.PageID]bool),
	}
}

// OnReference advances the lookahead cursor past the current reference and
// records insertions.
func (o *Optimal) OnReference(page trace.PageID, wasHit bool) {
	if pos := o.positions[page]; len(pos) > 0 && pos[0] <= o.cursor {
		o.positions[page] = pos[1:]
	}
	o.cursor++
	if wasHit {
		return
	}
	o.resident = append(o.resident, page)
	o.isRes[page] = true
}

// Victim returns the resident page with the farthest next use. Pages never
// referenced again are preferred; remaining ties go to the page resident
// longest.
func (o *Optimal) Victim() trace.PageID {
	if len(o.resident) == 0 {
		panic("Optimal.Victim: no resident pages")
	}
	best := -1
	bestNext := -1
	for i, page := range o.resident {
		next := o.nextUse(page)
		if next > bestNext {
			best, bestNext = i, next
		}
	}
	victim := o.resident[best]
	o.resident = append(o.resident[:best], o.resident[best+1:]...)
	delete(o.isRes, victim)
	return victim
}

// nextUse returns the index of the page's next reference after the cursor,
// or a sentinel beyond any trace index if it never recurs.
func (o *Optimal) nextUse(page trace.PageID) int {
	pos := o.positions[page]
	for len(pos) > 0 && pos[0] <= o.cursor {
		pos = pos[1:]
	}
	o.positions[page] = pos
	if len(pos) == 0 {
		return int(^uint(0) >> 1) // never referenced again
	}
	return pos[0]
}
