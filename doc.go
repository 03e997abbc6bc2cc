// Package chronos is a thread-safe, in-memory toolkit for reasoning about
// time-ordered data streams in Go.
//
// 🚀 What is chronos?
//
//	A pure computational library that brings together:
//
//	  • Temporal sequences: append-only, timestamp-indexed element storage
//	  • Comparison: DTW, LCS, edit-distance and Euclidean distance over
//	    sequences, with a content-addressed result cache
//	  • Scheduling: EDF/LLF/RM/fixed-priority task queues with deadline
//	    and laxity awareness
//	  • Attractor analysis: Lyapunov-exponent estimation and dynamical
//	    classification of phase-space trajectories
//	  • Verification: linear temporal logic over finite traces, with
//	    counterexample extraction
//	  • Meta-learning: multi-level pattern extraction and safety-gated
//	    self-modification built on top of the above
//
// ✨ Why choose chronos?
//
//   - Rock-solid    — built-in R/W locks ensure thread-safety throughout
//   - Extensible    — functional options and injectable clocks/loggers
//   - Pure Go       — no cgo, computation stays in-process
//
// Under the hood, everything is organized as flat, domain-named packages:
//
//	temporal/    — TemporalElement, Sequence, timestamp-range queries
//	comparator/  — DTW, LCS, Edit, Euclidean, ComparisonKey cache
//	scheduler/   — ScheduledTask, policies, heap, stats
//	attractor/   — PhasePoint, Trajectory, Lyapunov estimation, classification
//	verifier/    — TemporalState, TemporalTrace, TemporalFormula, evaluator
//	strangeloop/ — MetaKnowledge, SafetyConstraint, learn_at_level, apply_modification
//	errs/        — shared sentinel error values
//	clock/       — monotonic nanosecond clock abstraction
//
// Each package has its own example_test.go showing its API; the module
// has no end-to-end example program wiring the components together.
package chronos
