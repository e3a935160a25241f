package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Compile-time interface checks for all policy variants.
var (
	_ ReplacementPolicy = (*FIFO)(nil)
	_ ReplacementPolicy = (*LRU)(nil)
	_ ReplacementPolicy = (*Clock)(nil)
	_ ReplacementPolicy = (*Optimal)(nil)
)

func TestNewReplacementPolicy_ByName(t *testing.T) {
	assert.IsType(t, &FIFO{}, NewReplacementPolicy("fifo", nil))
	assert.IsType(t, &LRU{}, NewReplacementPolicy("lru", nil))
	assert.IsType(t, &Clock{}, NewReplacementPolicy("clock", nil))
	assert.IsType(t, &Optimal{}, NewReplacementPolicy("optimal", nil))
}

func TestNewReplacementPolicy_EmptyDefaultsToFIFO(t *testing.T) {
	assert.IsType(t, &FIFO{}, NewReplacementPolicy("", nil))
}

func TestNewReplacementPolicy_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { NewReplacementPolicy("mru", nil) })
}
