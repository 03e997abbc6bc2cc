package verifier

import "testing"

func BenchmarkVerify_Globally(b *testing.B) {
	v := New(Config{MaxTraceLength: 1000, MaxSolvingTime: 5000, Strictness: Medium})
	for i := 0; i < 1000; i++ {
		v.Push(TemporalState{ID: uint64(i), Propositions: map[string]bool{"safe": true}})
	}
	formula := Globally(Atom("safe"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Verify(formula)
	}
}

func BenchmarkPush(b *testing.B) {
	v := New(DefaultConfig())
	state := TemporalState{ID: 1, Propositions: map[string]bool{"safe": true}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Push(state)
	}
}
