package scheduler

// taskHeap is a container/heap-backed binary heap of *ScheduledTask[T],
// ordered per Policy. This generalizes lvlath/dijkstra.Dijkstra's
// container/heap frontier (a typed wrapper exposing Less/Swap/Push/Pop
// around a slice of heap items) from a shortest-path frontier to a
// priority+deadline task queue.
type taskHeap[T any] struct {
	items  []*ScheduledTask[T]
	policy Policy
}

func (h *taskHeap[T]) Len() int { return len(h.items) }

func (h *taskHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Less encodes each policy's ranking, always falling back to ID ascending
// (FIFO within an otherwise-tied rank) as the final tie-break so dequeue
// order stays deterministic under concurrent insertion.
func (h *taskHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	switch h.policy {
	case EarliestDeadlineFirst:
		if a.Deadline != b.Deadline {
			return a.Deadline < b.Deadline
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID < b.ID
	case LeastLaxityFirst:
		// laxityKey = deadline - estimatedRuntime. "now" is common to
		// every item being compared at a given Less call, so it cancels
		// out of the comparison: ranking by (deadline-now-est) ascending
		// is identical to ranking by (deadline-est) ascending, for any
		// fixed now. No re-sort on dequeue is required.
		ak := int64(a.Deadline) - int64(a.estimatedRuntime)
		bk := int64(b.Deadline) - int64(b.estimatedRuntime)
		if ak != bk {
			return ak < bk
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID < b.ID
	case RateMonotonic, FixedPriority:
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID < b.ID
	default:
		return a.ID < b.ID
	}
}

func (h *taskHeap[T]) Push(x any) {
	h.items = append(h.items, x.(*ScheduledTask[T]))
}

func (h *taskHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}
