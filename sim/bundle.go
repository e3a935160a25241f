package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/memsim-project/memsim/sim/trace"
)

// SimBundle holds run configuration loadable from a YAML file. Nil pointer
// fields mean "not set in YAML" — they do not override CLI flags. String
// fields use empty string for "not set".
type SimBundle struct {
	Frames     *int   `yaml:"frames"`
	Policy     string `yaml:"policy"`
	PageSize   *int64 `yaml:"page_size"`
	TraceLevel string `yaml:"trace_level"`
	TraceOut   string `yaml:"trace_out"`
}

// LoadSimBundle reads and parses a YAML run configuration file.
func LoadSimBundle(path string) (*SimBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var bundle SimBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that all names and parameter ranges in the bundle are valid.
func (b *SimBundle) Validate() error {
	if !ValidReplacementPolicies[b.Policy] {
		return fmt.Errorf("unknown replacement policy %q", b.Policy)
	}
	if b.Frames != nil && *b.Frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", *b.Frames)
	}
	if b.PageSize != nil && *b.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d", *b.PageSize)
	}
	if !trace.IsValidLevel(b.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", b.TraceLevel)
	}
	return nil
}
