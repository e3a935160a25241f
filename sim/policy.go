package sim

import (
	"fmt"

	"github.com/memsim-project/memsim/sim/trace"
)

// Replacement policy names accepted by NewReplacementPolicy.
const (
	PolicyFIFO    = "fifo"
	PolicyLRU     = "lru"
	PolicyClock   = "clock"
	PolicyOptimal = "optimal"
)

// ValidReplacementPolicies is the set of recognized replacement policy names.
// Shared by Config.Validate and NewReplacementPolicy to avoid duplication.
// An empty string defaults to FIFO (for config file field compatibility).
var ValidReplacementPolicies = map[string]bool{
	"":            true,
	PolicyFIFO:    true,
	PolicyLRU:     true,
	PolicyClock:   true,
	PolicyOptimal: true,
}

// ReplacementPolicy decides which resident page to evict when a miss lands
// on a full resident set. A policy owns its bookkeeping exclusively; the
// resident set never reads it.
//
// The resident set calls OnReference for every reference, hit or miss, after
// membership has been resolved (and, on a full miss, after Victim). Victim is
// called only when the resident set is at capacity and a miss occurs; it
// removes the victim from the policy's own bookkeeping and returns it.
type ReplacementPolicy interface {
	OnReference(page trace.PageID, wasHit bool)
	Victim() trace.PageID
}

// NewReplacementPolicy creates a replacement policy by name. Valid names are
// defined in ValidReplacementPolicies; an empty string defaults to FIFO.
// future is the full materialized trace and is required only by the Optimal
// policy, which needs lookahead; other policies ignore it.
// Panics on unrecognized names: callers validate via Config.Validate first.
func NewReplacementPolicy(name string, future []trace.Reference) ReplacementPolicy {
	if !ValidReplacementPolicies[name] {
		panic(fmt.Sprintf("unknown replacement policy %q", name))
	}
	switch name {
	case "", PolicyFIFO:
		return NewFIFO()
	case PolicyLRU:
		return NewLRU()
	case PolicyClock:
		return NewClock()
	case PolicyOptimal:
		return NewOptimal(future)
	default:
		panic(fmt.Sprintf("unhandled replacement policy %q", name))
	}
}
