package comparator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/streampulse/chronos/errs"
)

// DistanceFunc is the caller-supplied value-space distance capability DTW
// uses between two elements, provided at construction rather than baked
// into the algorithm.
type DistanceFunc[T comparable] func(a, b T) float64

// Comparator computes DTW/LCS/Edit/Euclidean distances over sequences of
// T and caches results by content fingerprint. Safe for concurrent use:
// cache lookups and inserts are both serialized by the underlying LRU's
// own lock (a lookup updates recency), so concurrent lookups do not run in
// parallel.
type Comparator[T comparable] struct {
	cfg      Config
	dist     DistanceFunc[T]
	toFloat  func(T) float64 // nil unless constructed via NewNumeric
	cache    *resultCache
	log      zerolog.Logger
}

// Option configures a Comparator at construction.
type Option[T comparable] func(*Comparator[T])

// WithLogger attaches a structured logger; components default to
// zerolog.Nop() when none is supplied.
func WithLogger[T comparable](log zerolog.Logger) Option[T] {
	return func(c *Comparator[T]) { c.log = log }
}

// New builds a Comparator with an explicit value-distance capability,
// usable for any comparable T.
func New[T comparable](cfg Config, dist DistanceFunc[T], opts ...Option[T]) *Comparator[T] {
	if err := cfg.Validate(); err != nil {
		panic(err) // construction-time misconfiguration, not a runtime error value
	}
	c := &Comparator[T]{
		cfg:   cfg,
		dist:  dist,
		cache: newResultCache(cfg.CacheSize),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewNumeric builds a Comparator over a Numeric T using |a-b| as the DTW
// value distance and enabling Euclidean support.
func NewNumeric[T Numeric](cfg Config, opts ...Option[T]) *Comparator[T] {
	c := New[T](cfg, func(a, b T) float64 {
		d := float64(a) - float64(b)
		if d < 0 {
			d = -d
		}
		return d
	}, opts...)
	c.toFloat = func(v T) float64 { return float64(v) }
	return c
}

// NewDiscrete builds a Comparator over any comparable T using the
// discrete 0/1 value distance. Euclidean is unsupported and returns ErrDimensionMismatch.
func NewDiscrete[T comparable](cfg Config, opts ...Option[T]) *Comparator[T] {
	return New[T](cfg, func(a, b T) float64 {
		if a == b {
			return 0
		}
		return 1
	}, opts...)
}

// Compare computes the distance between seq1 and seq2 under algorithm,
// consulting and populating the bounded result cache.
func (c *Comparator[T]) Compare(seq1, seq2 []T, algorithm Algorithm) (ComparisonResult, error) {
	if uint(len(seq1)) > c.cfg.MaxSequenceLength || uint(len(seq2)) > c.cfg.MaxSequenceLength {
		return ComparisonResult{}, fmt.Errorf("%w: len %d/%d exceeds %d", errs.ErrSequenceTooLong, len(seq1), len(seq2), c.cfg.MaxSequenceLength)
	}

	// DTW has defined semantics for empty operands; the other three algorithms require both non-empty.
	if algorithm != DTW && (len(seq1) == 0 || len(seq2) == 0) {
		return ComparisonResult{}, fmt.Errorf("%w: algorithm %s requires non-empty operands", errs.ErrSequenceEmpty, algorithm)
	}

	if algorithm == Euclidean {
		if len(seq1) != len(seq2) {
			return ComparisonResult{}, fmt.Errorf("%w: euclidean requires equal lengths, got %d and %d", errs.ErrDimensionMismatch, len(seq1), len(seq2))
		}
		if c.toFloat == nil {
			return ComparisonResult{}, fmt.Errorf("%w: euclidean is undefined for a non-numeric comparator", errs.ErrDimensionMismatch)
		}
	}

	key := computeKeyGeneric(seq1, seq2, algorithm, c.toFloat)
	if res, ok := c.cache.get(key); ok {
		return res, nil
	}

	res := c.compute(seq1, seq2, algorithm)
	c.cache.put(key, res)
	return res, nil
}

func (c *Comparator[T]) compute(seq1, seq2 []T, algorithm Algorithm) ComparisonResult {
	switch algorithm {
	case DTW:
		d, path := dtwDistance(seq1, seq2, c.dist, true)
		return ComparisonResult{Distance: d, Algorithm: DTW, Alignment: path}
	case LCS:
		d, path := lcsDistance(seq1, seq2, true)
		return ComparisonResult{Distance: d, Algorithm: LCS, Alignment: path}
	case Edit:
		d := editDistance(seq1, seq2)
		return ComparisonResult{Distance: d, Algorithm: Edit}
	case Euclidean:
		vals1 := toFloatSlice(seq1, c.toFloat)
		vals2 := toFloatSlice(seq2, c.toFloat)
		d := euclideanDistance(vals1, vals2)
		return ComparisonResult{Distance: d, Algorithm: Euclidean}
	default:
		c.log.Warn().Int("algorithm", int(algorithm)).Msg("unknown comparator algorithm")
		return ComparisonResult{Distance: 0, Algorithm: algorithm}
	}
}

func toFloatSlice[T comparable](seq []T, toFloat func(T) float64) []float64 {
	out := make([]float64, len(seq))
	for i, v := range seq {
		out[i] = toFloat(v)
	}
	return out
}

// CacheStats reports cache hit/miss counters.
func (c *Comparator[T]) CacheStats() CacheStats {
	return c.cache.stats()
}

// ClearCache empties the result cache and resets its counters.
func (c *Comparator[T]) ClearCache() {
	c.cache.clear()
}
