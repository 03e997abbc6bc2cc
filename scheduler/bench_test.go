package scheduler

import (
	"testing"

	"github.com/streampulse/chronos/clock"
)

func BenchmarkSchedule_EDF(b *testing.B) {
	clk := clock.NewManual()
	s := New[int](Config{MaxQueueSize: uint(b.N) + 1}, EarliestDeadlineFirst, clk)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Schedule(i, uint64(i), Medium, 0)
	}
}

func BenchmarkScheduleDequeue_EDF(b *testing.B) {
	clk := clock.NewManual()
	s := New[int](Config{MaxQueueSize: uint(b.N) + 1}, EarliestDeadlineFirst, clk)
	for i := 0; i < b.N; i++ {
		_, _ = s.Schedule(i, uint64(b.N-i), Medium, 0)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.NextTask()
	}
}
