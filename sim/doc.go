// Package sim provides the core page-replacement simulation engine for memsim.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - resident.go: the bounded resident set and the hit/miss/eviction cycle
//   - policy.go: the ReplacementPolicy interface and the policy factory
//   - simulator.go: the driver that pulls references through the resident set
//
// # Architecture
//
// The sim package owns the engine; trace ingestion lives in the sub-package:
//   - sim/trace/: line readers (token and address mode), transparent
//     decompression, and eviction-trace recording
//
// # Key Interfaces
//
// The extension point is a single small interface:
//   - ReplacementPolicy: update bookkeeping on every reference, pick a
//     victim when a miss lands on a full resident set
//
// Policies are selected once at configuration time by name (fifo, lru,
// clock, optimal) through NewReplacementPolicy and held for the run's
// duration. The resident set, metrics, and driver are policy-agnostic.
package sim
