package queues

import "github.com/go-foundations/mlfq/thread"

// L1Queue holds the real-time (shortest-remaining-burst) tier.
//
// Ordering key, Remain, mutates while a thread is enqueued (TotalExe
// grows as the kernel's tick handler accounts execution time to the
// running thread). Rather than re-sort on every mutation, L1Queue
// keeps an unsorted backing slice and scans for the minimum at
// extraction time — design note (ii) from the scheduler's
// re-architecture guidance, preferred for clarity since this tier is
// expected to stay small.
type L1Queue struct {
	items []*thread.Descriptor
}

// NewL1Queue constructs an empty L1 queue.
func NewL1Queue() *L1Queue {
	return &L1Queue{}
}

// Insert appends t; order is established lazily at RemoveFront time.
func (q *L1Queue) Insert(t *thread.Descriptor) {
	q.items = append(q.items, t)
}

// RemoveFront scans for and removes the thread with the smallest
// (freshly recomputed) Remain, tie-broken by ascending id.
func (q *L1Queue) RemoveFront() (*thread.Descriptor, bool) {
	if len(q.items) == 0 {
		return nil, false
	}

	best := 0
	for i := 1; i < len(q.items); i++ {
		if BurstOrder(q.items[i], q.items[best]) < 0 {
			best = i
		}
	}

	t := q.items[best]
	q.items = append(q.items[:best], q.items[best+1:]...)
	return t, true
}

// IsEmpty reports whether the queue holds no threads.
func (q *L1Queue) IsEmpty() bool {
	return len(q.items) == 0
}

// Contains reports whether t is currently enqueued.
func (q *L1Queue) Contains(t *thread.Descriptor) bool {
	for _, item := range q.items {
		if item == t {
			return true
		}
	}
	return false
}

// Iter calls fn for every enqueued thread, in current backing order
// (not burst order — callers that need ordering should RemoveFront
// repeatedly, or sort a snapshot).
func (q *L1Queue) Iter(fn func(*thread.Descriptor) bool) {
	for _, item := range q.items {
		if !fn(item) {
			return
		}
	}
}

// Len returns the number of enqueued threads.
func (q *L1Queue) Len() int {
	return len(q.items)
}

// Peek returns the thread RemoveFront would currently select, without
// removing it. Used by the preemption oracle, which must compare the
// running thread's Remain against L1's head without disturbing L1.
func (q *L1Queue) Peek() (*thread.Descriptor, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	best := 0
	for i := 1; i < len(q.items); i++ {
		if BurstOrder(q.items[i], q.items[best]) < 0 {
			best = i
		}
	}
	return q.items[best], true
}
