package sim

import "github.com/memsim-project/memsim/sim/trace"

// Frame is one occupied slot of the resident set.
type Frame struct {
	Page  trace.PageID
	Dirty bool // set when the page is written; forces a disk write on eviction
}

// AccessResult describes what one reference did to the resident set.
type AccessResult struct {
	Hit         bool
	Evicted     bool
	Victim      trace.PageID
	VictimDirty bool
}

// ResidentSet is the bounded container of currently cached pages. Capacity
// is the configured frame count; the eviction choice is delegated to the
// replacement policy. Invariant: the set never exceeds its capacity and
// never holds the same page twice.
type ResidentSet struct {
	frames   int
	resident map[trace.PageID]*Frame
	policy   ReplacementPolicy
}

// NewResidentSet creates an empty resident set with the given capacity and
// policy. Callers validate frames >= 1 via Config.Validate.
func NewResidentSet(frames int, policy ReplacementPolicy) *ResidentSet {
	return &ResidentSet{
		frames:   frames,
		resident: make(map[trace.PageID]*Frame, frames),
		policy:   policy,
	}
}

// Access resolves one reference against the resident set. On a hit the frame
// stays put (a write marks it dirty). On a miss with a full set the policy
// picks a victim, which is removed before the new page is inserted. The
// policy's bookkeeping is updated on every reference.
func (rs *ResidentSet) Access(ref trace.Reference) AccessResult {
	if frame, ok := rs.resident[ref.Page]; ok {
		if ref.Write {
			frame.Dirty = true
		}
		rs.policy.OnReference(ref.Page, true)
		return AccessResult{Hit: true}
	}

	var result AccessResult
	if len(rs.resident) == rs.frames {
		victim := rs.policy.Victim()
		result.Evicted = true
		result.Victim = victim
		result.VictimDirty = rs.resident[victim].Dirty
		delete(rs.resident, victim)
	}
	rs.resident[ref.Page] = &Frame{Page: ref.Page, Dirty: ref.Write}
	rs.policy.OnReference(ref.Page, false)
	return result
}

// Len returns the number of occupied frames.
func (rs *ResidentSet) Len() int {
	return len(rs.resident)
}

// Contains reports whether the page is currently resident.
func (rs *ResidentSet) Contains(page trace.PageID) bool {
	_, ok := rs.resident[page]
	return ok
}
