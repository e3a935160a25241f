package sim

import (
	"fmt"
	"strings"

	"github.com/memsim-project/memsim/sim/trace"
)

// Defaults for the observed configuration.
const (
	DefaultFrames = 3
	DefaultPolicy = PolicyFIFO
)

// Config groups the static parameters of one simulation run.
type Config struct {
	Frames   int    // resident set capacity (must be >= 1)
	Policy   string // replacement policy name (see ValidReplacementPolicies)
	PageSize int64  // address-mode only: bytes per page (must be > 0)
}

// NewConfig creates a Config with the policy name normalized to lower case.
func NewConfig(frames int, policy string, pageSize int64) Config {
	return Config{
		Frames:   frames,
		Policy:   strings.ToLower(policy),
		PageSize: pageSize,
	}
}

// PolicyName returns the canonical upper-case policy name for reporting.
func (c Config) PolicyName() string {
	if c.Policy == "" {
		return strings.ToUpper(DefaultPolicy)
	}
	return strings.ToUpper(c.Policy)
}

// Validate rejects invalid configuration before any reference is processed.
// frames < 1 would make every reference an unrecordable miss with immediate
// eviction of the just-inserted page, so it is a configuration error, not a
// simulatable state.
func (c Config) Validate() error {
	if c.Frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", c.Frames)
	}
	if !ValidReplacementPolicies[c.Policy] {
		return fmt.Errorf("unknown replacement policy %q", c.Policy)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	return nil
}

// PageSizeOrDefault returns the configured page size, falling back to the
// observed 4KiB default.
func (c Config) PageSizeOrDefault() int64 {
	if c.PageSize == 0 {
		return trace.DefaultPageSize
	}
	return c.PageSize
}
