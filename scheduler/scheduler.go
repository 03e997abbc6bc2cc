package scheduler

import (
	"container/heap"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/streampulse/chronos/clock"
	"github.com/streampulse/chronos/errs"
)

// Scheduler dispatches ScheduledTask[T] work under a priority+deadline
// policy. The queue is a single container/heap guarded by mu; producers
// may call Schedule concurrently with a consumer calling NextTask.
type Scheduler[T any] struct {
	cfg    Config
	policy Policy
	clk    clock.Clock
	log    zerolog.Logger

	mu      sync.Mutex
	heap    taskHeap[T]
	byID    map[uint64]*ScheduledTask[T]
	nextID  atomic.Uint64
	running atomic.Bool

	scheduled       atomic.Uint64
	completed       atomic.Uint64
	missedDeadlines atomic.Uint64
	failed          atomic.Uint64
	peakQueue       atomic.Int64
	latencySumNs    atomic.Uint64
	latencyCount    atomic.Uint64

	rmMu      sync.Mutex
	rmPeriods []uint64 // sorted ascending; rank index drives assigned Priority
}

// Option configures a Scheduler at construction.
type Option[T any] func(*Scheduler[T])

// WithLogger attaches a structured logger; defaults to zerolog.Nop().
func WithLogger[T any](log zerolog.Logger) Option[T] {
	return func(s *Scheduler[T]) { s.log = log }
}

// New builds a Scheduler under policy, backed by clk for monotonic time.
func New[T any](cfg Config, policy Policy, clk clock.Clock, opts ...Option[T]) *Scheduler[T] {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	s := &Scheduler[T]{
		cfg:    cfg,
		policy: policy,
		clk:    clk,
		log:    zerolog.Nop(),
		heap:   taskHeap[T]{policy: policy},
		byID:   make(map[uint64]*ScheduledTask[T]),
	}
	for _, opt := range opts {
		opt(s)
	}
	heap.Init(&s.heap)
	return s
}

// Start marks the scheduler running. Scheduling and dequeuing work
// regardless of this flag; Start/Stop/IsRunning let an external control
// loop track whether it should currently be pumping the scheduler.
func (s *Scheduler[T]) Start() { s.running.Store(true) }

// Stop marks the scheduler stopped.
func (s *Scheduler[T]) Stop() { s.running.Store(false) }

// IsRunning reports the current running flag.
func (s *Scheduler[T]) IsRunning() bool { return s.running.Load() }

// RegisterPeriodic declares a periodic task class's period and returns the
// static Priority RateMonotonic assigns it: shorter period outranks
// longer period (classical rate-monotonic priority assignment). Once
// assigned, the scheduler dequeues RateMonotonic-policy tasks exactly
// like FixedPriority using that Priority.
//
// Periodic classes are declared as a batch, the way a real-time system
// enumerates its full periodic task set at startup: assigning one period
// at a time would freeze earlier assignments before the full period set
// is known, so RegisterPeriodic always (re)computes ranks over the
// complete set registered so far. It returns the Priority of each period
// passed in this call, in argument order; priorities returned by earlier
// calls are not updated.
func (s *Scheduler[T]) RegisterPeriodic(periods ...uint64) []Priority {
	s.rmMu.Lock()
	defer s.rmMu.Unlock()

	s.rmPeriods = append(s.rmPeriods, periods...)
	sorted := append([]uint64(nil), s.rmPeriods...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rankOf := make(map[uint64]int, len(sorted))
	for i, p := range sorted {
		if _, seen := rankOf[p]; !seen {
			rankOf[p] = i
		}
	}

	out := make([]Priority, len(periods))
	for i, p := range periods {
		out[i] = rankToPriority(rankOf[p], len(sorted))
	}
	return out
}

// rankToPriority spreads rank (0 = shortest period) across the five
// priority buckets, shortest period getting Critical.
func rankToPriority(rank, total int) Priority {
	buckets := []Priority{Critical, High, Medium, Low, Background}
	if total <= 1 {
		return Critical
	}
	idx := rank * (len(buckets) - 1) / (total - 1)
	return buckets[idx]
}

// Schedule enqueues payload with the given deadline and priority, using
// estimatedRuntime for LeastLaxityFirst's laxity key (ignored by other
// policies). Returns ErrQueueFull if the queue is already at
// cfg.MaxQueueSize.
func (s *Scheduler[T]) Schedule(payload T, deadline uint64, priority Priority, estimatedRuntime uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.heap.items) >= int(s.cfg.MaxQueueSize) {
		return 0, errs.ErrQueueFull
	}

	id := s.nextID.Add(1)
	task := &ScheduledTask[T]{
		ID:               id,
		Payload:          payload,
		Priority:         priority,
		Deadline:         deadline,
		CreatedAt:        s.clk.NowNanos(),
		estimatedRuntime: estimatedRuntime,
		state:            Ready,
	}
	heap.Push(&s.heap, task)
	s.byID[id] = task
	s.scheduled.Add(1)

	if n := int64(len(s.heap.items)); n > s.peakQueue.Load() {
		s.peakQueue.Store(n)
	}
	return id, nil
}

// NextTask non-blockingly dequeues the highest-ranked Ready task, or
// returns ok=false if the queue is empty.
func (s *Scheduler[T]) NextTask() (*ScheduledTask[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.heap.items) == 0 {
		return nil, false
	}
	task := heap.Pop(&s.heap).(*ScheduledTask[T])
	task.state = Running
	delete(s.byID, task.ID)
	return task, true
}

// Cancel removes a task by id before it is dequeued. Returns false if the
// id is unknown or the task has already left the queue.
func (s *Scheduler[T]) Cancel(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.byID[id]
	if !ok {
		return false
	}
	for i, t := range s.heap.items {
		if t.ID == id {
			heap.Remove(&s.heap, i)
			break
		}
	}
	delete(s.byID, id)
	task.state = Cancelled
	return true
}

// ExecuteTask invokes f(task.Payload), updates latency/completion stats,
// and never lets a panic from f escape: it is caught, logged, and counted
// as TaskFailed.
func (s *Scheduler[T]) ExecuteTask(task *ScheduledTask[T], f func(T) error) (err error) {
	now := s.clk.NowNanos()
	onTime := now <= task.Deadline
	var faulted bool

	defer func() {
		if r := recover(); r != nil {
			faulted = true
			s.failed.Add(1)
			s.log.Error().Interface("panic", r).Uint64("task_id", task.ID).Msg("task callback panicked")
			err = fmt.Errorf("%w: %v", errs.ErrTaskFailed, r)
		}
		latency := now - task.CreatedAt
		s.recordLatency(latency)
		if faulted {
			return
		}
		if onTime {
			task.state = Completed
			s.completed.Add(1)
		} else {
			task.state = MissedDeadline
			s.missedDeadlines.Add(1)
			s.log.Warn().Uint64("task_id", task.ID).Msg("task missed deadline")
		}
	}()

	if cbErr := f(task.Payload); cbErr != nil {
		faulted = true
		s.failed.Add(1)
		s.log.Error().Err(cbErr).Uint64("task_id", task.ID).Msg("task callback returned error")
		return fmt.Errorf("%w: %v", errs.ErrTaskFailed, cbErr)
	}
	return nil
}

func (s *Scheduler[T]) recordLatency(latencyNs uint64) {
	s.latencySumNs.Add(latencyNs)
	s.latencyCount.Add(1)
}

// Clear empties the queue and resets per-task bookkeeping, but preserves
// cumulative stats counters.
func (s *Scheduler[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heap.items = nil
	s.byID = make(map[uint64]*ScheduledTask[T])
}

// QueueSize returns the number of tasks currently queued.
func (s *Scheduler[T]) QueueSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.heap.items)
}

// Stats reports cumulative counters.
func (s *Scheduler[T]) Stats() Stats {
	count := s.latencyCount.Load()
	var avg float64
	if count > 0 {
		avg = float64(s.latencySumNs.Load()) / float64(count)
	}
	return Stats{
		Scheduled:        s.scheduled.Load(),
		Completed:        s.completed.Load(),
		MissedDeadlines:  s.missedDeadlines.Load(),
		Failed:           s.failed.Load(),
		AverageLatencyNs: avg,
		PeakQueue:        int(s.peakQueue.Load()),
	}
}
