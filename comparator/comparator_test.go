package comparator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streampulse/chronos/errs"
)

func TestCompare_DTW_IdenticalIsZero(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())
	res, err := c.Compare([]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}, DTW)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distance)
}

func TestCompare_DTW_EmptyBoundaries(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())

	res, err := c.Compare(nil, nil, DTW)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distance)

	res, err = c.Compare([]int{1}, nil, DTW)
	require.NoError(t, err)
	require.True(t, res.Distance > 1e300) // +Inf
}

func TestCompare_DTW_Symmetric(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())
	a := []int{1, 3, 2, 5, 4}
	b := []int{2, 1, 4, 3, 5}
	ab, err := c.Compare(a, b, DTW)
	require.NoError(t, err)
	ba, err := c.Compare(b, a, DTW)
	require.NoError(t, err)
	require.InDelta(t, ab.Distance, ba.Distance, 1e-9)
}

func TestCompare_LCS_Scenario(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())
	res, err := c.Compare([]int{1, 2, 3, 4, 5}, []int{1, 3, 5}, LCS)
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Distance) // max(5,3) - lcs_len(3) = 2
}

func TestCompare_Edit_Scenario(t *testing.T) {
	c := NewDiscrete[rune](DefaultConfig())
	res, err := c.Compare([]rune("kitten"), []rune("sitting"), Edit)
	require.NoError(t, err)
	require.Equal(t, 3.0, res.Distance)
}

func TestCompare_Edit_BoundedByMaxLen(t *testing.T) {
	c := NewDiscrete[rune](DefaultConfig())
	a := []rune("abcdef")
	b := []rune("uvwxyz")
	res, err := c.Compare(a, b, Edit)
	require.NoError(t, err)
	require.LessOrEqual(t, res.Distance, float64(max(len(a), len(b))))
}

func TestCompare_Euclidean_RequiresEqualLength(t *testing.T) {
	c := NewNumeric[float64](DefaultConfig())
	_, err := c.Compare([]float64{1, 2, 3}, []float64{1, 2}, Euclidean)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestCompare_Euclidean_Basic(t *testing.T) {
	c := NewNumeric[float64](DefaultConfig())
	res, err := c.Compare([]float64{0, 0}, []float64{3, 4}, Euclidean)
	require.NoError(t, err)
	require.InDelta(t, 5.0, res.Distance, 1e-9)
}

func TestCompare_Euclidean_UndefinedOnDiscrete(t *testing.T) {
	c := NewDiscrete[string](DefaultConfig())
	_, err := c.Compare([]string{"a"}, []string{"b"}, Euclidean)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestCompare_SequenceTooLong(t *testing.T) {
	c := NewNumeric[int](Config{CacheSize: 10, MaxSequenceLength: 3})
	_, err := c.Compare([]int{1, 2, 3, 4}, []int{1}, DTW)
	require.ErrorIs(t, err, errs.ErrSequenceTooLong)
}

func TestCompare_SequenceEmpty_NonDTW(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())
	_, err := c.Compare(nil, []int{1, 2}, LCS)
	require.ErrorIs(t, err, errs.ErrSequenceEmpty)
}

func TestCache_HitOnSecondCall(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())
	a, b := []int{1, 2, 3}, []int{1, 2, 4}

	first, err := c.Compare(a, b, DTW)
	require.NoError(t, err)
	stats := c.CacheStats()
	require.Equal(t, uint64(0), stats.Hits)
	require.Equal(t, uint64(1), stats.Misses)

	second, err := c.Compare(a, b, DTW)
	require.NoError(t, err)
	require.Equal(t, first, second)

	stats = c.CacheStats()
	require.Equal(t, uint64(1), stats.Hits)
	require.Equal(t, uint64(1), stats.Misses)
	require.InDelta(t, 0.5, stats.HitRate, 1e-9)
}

func TestCache_Clear(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())
	_, err := c.Compare([]int{1}, []int{2}, DTW)
	require.NoError(t, err)
	require.Equal(t, 1, c.CacheStats().Size)

	c.ClearCache()
	stats := c.CacheStats()
	require.Equal(t, 0, stats.Size)
	require.Equal(t, uint64(0), stats.Hits)
	require.Equal(t, uint64(0), stats.Misses)
}

func TestCompare_EditDistance_SelfIsZero(t *testing.T) {
	c := NewDiscrete[rune](DefaultConfig())
	s := []rune("abcdefg")
	res, err := c.Compare(s, s, Edit)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distance)
}

func TestCompare_LCS_SelfIsZero(t *testing.T) {
	c := NewNumeric[int](DefaultConfig())
	s := []int{5, 4, 3, 2, 1}
	res, err := c.Compare(s, s, LCS)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distance)
}
