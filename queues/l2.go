package queues

import "github.com/go-foundations/mlfq/thread"

// L2Queue holds the strict-priority tier. It stays sorted by
// descending priority at all times; among equal priorities, insertion
// order is preserved (a stable sort, not a heap — a binary heap does
// not give that for free, and the scheduler's priority model §4.1
// requires it for ties).
type L2Queue struct {
	items []*thread.Descriptor
}

// NewL2Queue constructs an empty L2 queue.
func NewL2Queue() *L2Queue {
	return &L2Queue{}
}

// Insert places t just before the first existing thread of strictly
// lower priority, i.e. after every existing thread of equal-or-higher
// priority. That keeps descending-priority order and leaves ties in
// insertion order.
func (q *L2Queue) Insert(t *thread.Descriptor) {
	pos := len(q.items)
	for i, item := range q.items {
		if PriorityOrder(item, t) > 0 {
			pos = i
			break
		}
	}
	q.items = append(q.items, nil)
	copy(q.items[pos+1:], q.items[pos:])
	q.items[pos] = t
}

// RemoveFront removes and returns the highest-priority thread.
func (q *L2Queue) RemoveFront() (*thread.Descriptor, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	t := q.items[0]
	q.items = q.items[1:]
	return t, true
}

// IsEmpty reports whether the queue holds no threads.
func (q *L2Queue) IsEmpty() bool {
	return len(q.items) == 0
}

// Contains reports whether t is currently enqueued.
func (q *L2Queue) Contains(t *thread.Descriptor) bool {
	for _, item := range q.items {
		if item == t {
			return true
		}
	}
	return false
}

// Iter calls fn for every enqueued thread, in priority order.
func (q *L2Queue) Iter(fn func(*thread.Descriptor) bool) {
	for _, item := range q.items {
		if !fn(item) {
			return
		}
	}
}

// Len returns the number of enqueued threads.
func (q *L2Queue) Len() int {
	return len(q.items)
}
