package comparator

import (
	"math/rand"
	"testing"
)

func randIntSeq(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(1000)
	}
	return out
}

func BenchmarkCompare_DTW(b *testing.B) {
	c := NewNumeric[int](Config{CacheSize: 1, MaxSequenceLength: 100000})
	a := randIntSeq(200, 1)
	s := randIntSeq(200, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ClearCache()
		_, _ = c.Compare(a, s, DTW)
	}
}

func BenchmarkCompare_CacheHit(b *testing.B) {
	c := NewNumeric[int](DefaultConfig())
	a := randIntSeq(200, 1)
	s := randIntSeq(200, 2)
	_, _ = c.Compare(a, s, DTW)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Compare(a, s, DTW)
	}
}
