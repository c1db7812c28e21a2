package queues

import "github.com/go-foundations/mlfq/thread"

// L3Queue holds the background (FIFO, round-robin) tier. It is backed
// by a growable ring buffer, adapted from the teacher's work-stealing
// deque: the two-index, wrap-and-grow layout is the same, but L3 only
// ever pushes at the tail and pops from the head, since this tier
// needs plain FIFO, not double-ended access.
type L3Queue struct {
	head, tail int
	buf        []*thread.Descriptor
}

const l3InitialCapacity = 16

// NewL3Queue constructs an empty L3 queue.
func NewL3Queue() *L3Queue {
	return &L3Queue{buf: make([]*thread.Descriptor, l3InitialCapacity)}
}

// Insert appends t to the tail of the queue.
func (q *L3Queue) Insert(t *thread.Descriptor) {
	if q.tail-q.head >= len(q.buf) {
		q.grow()
	}
	q.buf[q.tail%len(q.buf)] = t
	q.tail++
}

// RemoveFront removes and returns the thread at the head of the queue.
func (q *L3Queue) RemoveFront() (*thread.Descriptor, bool) {
	if q.head >= q.tail {
		return nil, false
	}
	t := q.buf[q.head%len(q.buf)]
	q.buf[q.head%len(q.buf)] = nil
	q.head++
	return t, true
}

// IsEmpty reports whether the queue holds no threads.
func (q *L3Queue) IsEmpty() bool {
	return q.head >= q.tail
}

// Contains reports whether t is currently enqueued.
func (q *L3Queue) Contains(t *thread.Descriptor) bool {
	found := false
	q.Iter(func(item *thread.Descriptor) bool {
		if item == t {
			found = true
			return false
		}
		return true
	})
	return found
}

// Iter calls fn for every enqueued thread, head to tail.
func (q *L3Queue) Iter(fn func(*thread.Descriptor) bool) {
	for i := q.head; i < q.tail; i++ {
		if !fn(q.buf[i%len(q.buf)]) {
			return
		}
	}
}

// Len returns the number of enqueued threads.
func (q *L3Queue) Len() int {
	return q.tail - q.head
}

// grow doubles the backing buffer, re-laying out elements from head.
func (q *L3Queue) grow() {
	newBuf := make([]*thread.Descriptor, len(q.buf)*2)
	for i := q.head; i < q.tail; i++ {
		newBuf[i%len(newBuf)] = q.buf[i%len(q.buf)]
	}
	q.buf = newBuf
}
