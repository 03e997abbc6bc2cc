package scheduler

import "fmt"

// Priority is a totally ordered scheduling priority; higher
// numeric value outranks lower.
type Priority int

const (
	Background Priority = 10
	Low        Priority = 25
	Medium     Priority = 50
	High       Priority = 75
	Critical   Priority = 100
)

// String renders the priority name for logging.
func (p Priority) String() string {
	switch p {
	case Critical:
		return "critical"
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	case Background:
		return "background"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// State is a ScheduledTask's lifecycle state.
type State int

const (
	Scheduled State = iota
	Ready
	Running
	Completed
	MissedDeadline
	Cancelled
)

// String renders the state name for logging.
func (s State) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case MissedDeadline:
		return "missed_deadline"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// terminal reports whether s is one of the three terminal states.
func (s State) terminal() bool {
	return s == Completed || s == MissedDeadline || s == Cancelled
}

// Policy selects the dequeue ranking the scheduler applies.
type Policy int

const (
	// EarliestDeadlineFirst ranks by deadline ascending, tie-broken by
	// priority descending then id ascending.
	EarliestDeadlineFirst Policy = iota
	// LeastLaxityFirst ranks by laxity (deadline - estimated runtime)
	// ascending; see the comment in taskHeap.Less for why no re-sort on
	// dequeue is needed.
	LeastLaxityFirst
	// RateMonotonic assigns static priority from declared periods at
	// registration (RegisterPeriodic), then dequeues exactly like
	// FixedPriority.
	RateMonotonic
	// FixedPriority ranks by priority descending, tie-broken by id
	// ascending.
	FixedPriority
)

// ScheduledTask is one unit of work in the queue.
type ScheduledTask[T any] struct {
	ID        uint64
	Payload   T
	Priority  Priority
	Deadline  uint64 // absolute monotonic nanosecond instant
	CreatedAt uint64

	estimatedRuntime uint64
	state            State
}

// State returns the task's current lifecycle state.
func (t *ScheduledTask[T]) State() State {
	return t.state
}

// Laxity returns deadline - now - estimatedRuntime, slack
// time; it may be negative (overdue).
func (t *ScheduledTask[T]) Laxity(now uint64) int64 {
	return int64(t.Deadline) - int64(now) - int64(t.estimatedRuntime)
}

// Config configures a Scheduler.
type Config struct {
	MaxQueueSize       uint
	EnableRTScheduling bool
	CPUAffinity        []int
}

// DefaultConfig returns the defaults.
func DefaultConfig() Config {
	return Config{MaxQueueSize: 10000}
}

// Validate reports whether cfg holds a sane queue bound.
func (cfg Config) Validate() error {
	if cfg.MaxQueueSize == 0 {
		return fmt.Errorf("scheduler: MaxQueueSize must be > 0")
	}
	return nil
}

// Stats reports the scheduler's observable counters. TaskFailed is
// counted separately from Completed and MissedDeadline so a callback
// panic or error doesn't masquerade as either.
type Stats struct {
	Scheduled        uint64
	Completed        uint64
	MissedDeadlines  uint64
	Failed           uint64
	AverageLatencyNs float64
	PeakQueue        int
}
