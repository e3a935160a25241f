// Tracks run-wide reference statistics for final reporting.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about one simulation run. It is owned
// exclusively by the run's Simulator: created at zero, mutated once per
// reference, read only after the run ends. References = Hits + Misses and
// Evictions <= Misses hold at every point.
type Metrics struct {
	References int64 // total page references processed
	Hits       int64 // references resolved against a resident page
	Misses     int64 // references that faulted a page in
	Evictions  int64 // resident pages displaced to make room

	DiskReads  int64 // address mode: one per miss (page loaded from disk)
	DiskWrites int64 // address mode: one per dirty victim written back
}

// NewMetrics creates a zeroed Metrics record.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Observe folds one access result into the counters.
func (m *Metrics) Observe(result AccessResult) {
	m.References++
	if result.Hit {
		m.Hits++
		return
	}
	m.Misses++
	m.DiskReads++
	if result.Evicted {
		m.Evictions++
		if result.VictimDirty {
			m.DiskWrites++
		}
	}
}

// HitRate returns Hits / References, defined as 0.0 for an empty trace.
func (m *Metrics) HitRate() float64 {
	if m.References == 0 {
		return 0.0
	}
	return float64(m.Hits) / float64(m.References)
}

// FaultRate returns Misses / References, defined as 0.0 for an empty trace.
func (m *Metrics) FaultRate() float64 {
	if m.References == 0 {
		return 0.0
	}
	return float64(m.Misses) / float64(m.References)
}

// WriteReport renders the final token-mode report. The layout is a fixed
// external contract; no computation beyond the derived hit rate happens here.
func (m *Metrics) WriteReport(w io.Writer, policy string, frames int) {
	fmt.Fprintln(w, "=== memsim results ===")
	fmt.Fprintf(w, "policy:     %s\n", policy)
	fmt.Fprintf(w, "frames:     %d\n", frames)
	fmt.Fprintf(w, "references: %d\n", m.References)
	fmt.Fprintf(w, "hits:       %d\n", m.Hits)
	fmt.Fprintf(w, "misses:     %d\n", m.Misses)
	fmt.Fprintf(w, "evictions:  %d\n", m.Evictions)
	fmt.Fprintf(w, "hit_rate:   %.2f%%\n", m.HitRate()*100)
}

// WritePagingReport renders the demand-paging report in the grader's format.
func (m *Metrics) WritePagingReport(w io.Writer, frames int) {
	fmt.Fprintf(w, "total memory frames:  %d\n", frames)
	fmt.Fprintf(w, "events in trace:      %d\n", m.References)
	fmt.Fprintf(w, "total disk reads:     %d\n", m.DiskReads)
	fmt.Fprintf(w, "total disk writes:    %d\n", m.DiskWrites)
	fmt.Fprintf(w, "page fault rate:      %.4f\n", m.FaultRate())
}
