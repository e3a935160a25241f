package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/memsim-project/memsim/sim/trace"
)

// State is the lifecycle of one simulation run:
// Idle -> Running -> Done | Failed. Done and Failed are terminal.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Simulator drives one trace through the resident set, single-threaded and
// synchronous: each reference is fully processed (hit/miss/eviction/metrics)
// before the next is read. All mutable state is exclusively owned by the
// Simulator for the run's lifetime, keeping the engine reentrant across
// instances.
type Simulator struct {
	config  Config
	reader  trace.Reader
	store   *ResidentSet
	state   State
	Metrics *Metrics
	Trace   *trace.SimulationTrace
}

// NewSimulator wires a simulator for one run. The policy must match
// config.Policy; for the Optimal policy the reader must replay the same
// materialized trace the policy was built from.
func NewSimulator(config Config, reader trace.Reader, policy ReplacementPolicy, rec *trace.SimulationTrace) *Simulator {
	if rec == nil {
		rec = trace.NewSimulationTrace(trace.LevelNone)
	}
	return &Simulator{
		config:  config,
		reader:  reader,
		store:   NewResidentSet(config.Frames, policy),
		Metrics: NewMetrics(),
		Trace:   rec,
	}
}

// State returns the run's lifecycle state.
func (s *Simulator) State() State {
	return s.state
}

// Run consumes the trace to exhaustion. It returns the first reader error
// (malformed line or stream failure), which fails the run terminally; a run
// that has begun processing successfully is otherwise deterministic to
// completion. Run can be called at most once per Simulator.
func (s *Simulator) Run() error {
	if s.state != StateIdle {
		return fmt.Errorf("simulator already %s", s.state)
	}
	s.state = StateRunning

	for {
		ref, err := s.reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.state = StateFailed
			return err
		}

		result := s.store.Access(ref)
		s.Metrics.Observe(result)

		switch {
		case result.Hit:
			logrus.Debugf("hit  page %s", ref.Page)
		case result.Evicted:
			logrus.Debugf("MISS page %s, evicted %s (dirty=%t)", ref.Page, result.Victim, result.VictimDirty)
			s.Trace.RecordEviction(trace.EvictionRecord{
				Index:  s.Metrics.References,
				Page:   ref.Page,
				Victim: result.Victim,
				Dirty:  result.VictimDirty,
			})
		default:
			logrus.Debugf("MISS page %s, free frame", ref.Page)
		}
	}

	s.state = StateDone
	logrus.Infof("simulation complete: %d references, %d hits, %d misses, %d evictions",
		s.Metrics.References, s.Metrics.Hits, s.Metrics.Misses, s.Metrics.Evictions)
	return nil
}
