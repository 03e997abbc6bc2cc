package attractor

import "testing"

func BenchmarkAddPoint(b *testing.B) {
	a := New(Config{EmbeddingDimension: 3, MaxTrajectoryLength: 500})
	coords := []float64{1, 2, 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.AddPoint(coords, uint64(i))
	}
}

func BenchmarkAnalyze(b *testing.B) {
	a := New(Config{EmbeddingDimension: 1, MaxTrajectoryLength: 500})
	v := 1.0
	for i := 0; i < 300; i++ {
		_ = a.AddPoint([]float64{v}, uint64(i))
		v = v*0.99 + 0.001
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Analyze()
	}
}
