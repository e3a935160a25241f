package trace

// Level controls the verbosity of eviction tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelEvictions captures one record per eviction decision.
	LevelEvictions Level = "evictions"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:      true,
	LevelEvictions: true,
	"":             true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// EvictionRecord captures a single eviction decision.
type EvictionRecord struct {
	Index  int64  // 1-based index of the reference that forced the eviction
	Page   PageID // the faulting page being brought in
	Victim PageID // the page the policy chose to evict
	Dirty  bool   // victim frame had been written since it was loaded
}

// SimulationTrace collects eviction records during a run.
type SimulationTrace struct {
	Level     Level
	Evictions []EvictionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level Level) *SimulationTrace {
	return &SimulationTrace{Level: level}
}

// RecordEviction appends an eviction record. At LevelNone it is a no-op.
func (st *SimulationTrace) RecordEviction(record EvictionRecord) {
	if st.Level != LevelEvictions {
		return
	}
	st.Evictions = append(st.Evictions, record)
}
