// Package temporal is the sequence store underlying the comparator,
// attractor, and verifier components of the chronos engine.
//
// A Sequence[T] is an append-only, timestamp-ordered list. It is the one
// place the non-decreasing-timestamp invariant is enforced, so every
// downstream reader (DTW, LCS, phase-space projection, proposition
// evaluation) can assume ordered input without re-validating it.
//
//	seq := temporal.NewSequence[float64](0)
//	_ = seq.Append(1.0, 100)
//	_ = seq.Append(2.0, 200)
//	vals := seq.Values() // []float64{1.0, 2.0}
package temporal
