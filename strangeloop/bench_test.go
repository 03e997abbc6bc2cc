package strangeloop

import (
	"testing"

	"github.com/streampulse/chronos/clock"
)

func BenchmarkLearnAtLevel(b *testing.B) {
	e := New(DefaultConfig(), clock.NewSystem())
	data := []string{"timeout", "timeout", "retry", "ok", "timeout", "retry"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.LearnAtLevel(0, data)
	}
}

func BenchmarkApplyModification(b *testing.B) {
	e := New(DefaultConfig(), clock.NewSystem())
	mod := Modification{Name: "bench-change", PostState: map[string]bool{"safe": true}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.ApplyModification(mod)
	}
}
