// Package scheduler implements the real-time scheduler: a priority+deadline
// queue dispatched under EDF, LLF, RM, or FixedPriority policy, with a
// lifecycle state machine and stats.
//
// 🚀 What does it schedule?
//
//	Any payload type T, wrapped in a ScheduledTask carrying a deadline
//	(an absolute monotonic instant, never wall-clock) and a Priority.
//	next_task() never blocks: it returns the highest-ranked Ready task or
//	nothing at all, leaving blocking/backoff to the caller.
//
// ⚙️ Usage:
//
//	s := scheduler.New[string](scheduler.DefaultConfig(), scheduler.EarliestDeadlineFirst, clock.NewSystem())
//	s.Start()
//	id, err := s.Schedule("payload", now+500_000, scheduler.High, 0)
//	task, ok := s.NextTask()
//	err = s.ExecuteTask(task, func(payload string) error { return nil })
//
// The queue is a single container/heap-backed binary heap guarded by a
// mutex, generalizing the heap-frontier pattern lvlath/dijkstra uses for
// its shortest-path frontier to a priority+deadline task queue.
package scheduler
