// Package comparator implements the temporal-sequence comparator: DTW,
// LCS, Levenshtein edit distance, and Euclidean distance over
// TemporalElement value sequences, backed by a bounded, content-addressed
// result cache.
//
// 🚀 What does it compare?
//
//	Sequences of a Numeric type (integers, runes, floats) via NewNumeric,
//	with all four algorithms; sequences of any other comparable type via
//	NewDiscrete, with DTW (0/1 value distance), LCS, and Edit, where
//	Euclidean returns ErrDimensionMismatch. DTW follows lvlath/dtw's DP
//	construction; every result goes through a deterministic cache.
//
// ⚙️ Usage:
//
//	cmp := comparator.NewNumeric[rune](comparator.DefaultConfig())
//	res, err := cmp.Compare([]rune("kitten"), []rune("sitting"), comparator.Edit)
//
// Cache hits are exact: the cache key is a content fingerprint of
// (seq1, seq2, algorithm), so two calls with identical inputs always
// produce identical results — the second call is guaranteed to be a hit.
package comparator
