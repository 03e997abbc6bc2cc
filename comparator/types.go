package comparator

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Numeric bounds the types NewNumeric accepts: any integer or floating
// point kind (runes satisfy constraints.Integer, so character sequences
// like "kitten"/"sitting" compare directly).
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Algorithm selects which distance measure Compare applies.
type Algorithm int

const (
	// DTW is classical Dynamic Time Warping.
	DTW Algorithm = iota
	// LCS is Longest-Common-Subsequence distance (max(|s1|,|s2|) - lcs_len).
	LCS
	// Edit is Levenshtein edit distance.
	Edit
	// Euclidean is pointwise Euclidean distance; requires equal lengths
	// and a numeric comparator.
	Euclidean
)

// String renders the algorithm name for logging and cache-key hashing.
func (a Algorithm) String() string {
	switch a {
	case DTW:
		return "dtw"
	case LCS:
		return "lcs"
	case Edit:
		return "edit"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Coord is one step of an alignment/matching path: I indexes seq1, J
// indexes seq2.
type Coord struct {
	I, J int
}

// ComparisonResult is the outcome of a single Compare call.
type ComparisonResult struct {
	// Distance is the computed distance under Algorithm.
	Distance float64
	// Algorithm is the measure that produced Distance.
	Algorithm Algorithm
	// Alignment is the warping/matching path for DTW/LCS, or nil for
	// Edit/Euclidean.
	Alignment []Coord
}

// Config configures a Comparator.
type Config struct {
	// CacheSize is the maximum number of ComparisonResult entries the LRU
	// cache retains. Default 1000.
	CacheSize uint
	// MaxSequenceLength rejects Compare calls whose operands exceed this
	// length with ErrSequenceTooLong. Default 10000.
	MaxSequenceLength uint
}

// DefaultConfig returns the defaults.
func DefaultConfig() Config {
	return Config{
		CacheSize:         1000,
		MaxSequenceLength: 10000,
	}
}

// Validate reports whether cfg holds sane, non-zero bounds.
func (cfg Config) Validate() error {
	if cfg.CacheSize == 0 {
		return fmt.Errorf("comparator: CacheSize must be > 0")
	}
	if cfg.MaxSequenceLength == 0 {
		return fmt.Errorf("comparator: MaxSequenceLength must be > 0")
	}
	return nil
}

// CacheStats reports the bounded result cache's observable state.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Size    int
	HitRate float64
}
