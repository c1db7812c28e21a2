// Package queues implements the three ready-queue backends the
// scheduler composes: L1 (shortest-remaining-burst), L2
// (strict-priority, insertion-order stable), and L3 (FIFO with
// round-robin re-admission).
//
// Each backend implements the same narrow Queue interface so the
// scheduler core never special-cases a tier's storage strategy; it
// only special-cases band membership and selection order.
package queues

import "github.com/go-foundations/mlfq/thread"

// Queue is the operation set every ready-queue tier exposes.
type Queue interface {
	// Insert places t into the queue according to the tier's order.
	Insert(t *thread.Descriptor)

	// RemoveFront removes and returns the head of the queue. ok is
	// false when the queue is empty.
	RemoveFront() (t *thread.Descriptor, ok bool)

	// IsEmpty reports whether the queue holds no threads.
	IsEmpty() bool

	// Contains reports whether t is currently enqueued, by identity.
	Contains(t *thread.Descriptor) bool

	// Iter calls fn for every enqueued thread in queue order, without
	// removing anything. Iteration stops early if fn returns false.
	Iter(fn func(*thread.Descriptor) bool)

	// Len returns the number of enqueued threads.
	Len() int
}

// BurstOrder is L1's comparator: ascending remaining burst, ties
// broken by ascending thread id. Both operands' Remain is refreshed
// before comparing, since TotalExe mutates while a thread is enqueued.
func BurstOrder(a, b *thread.Descriptor) int {
	ra, rb := a.Remain(), b.Remain()
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if a.ID == b.ID {
		return 0
	}
	if a.ID < b.ID {
		return -1
	}
	return 1
}

// PriorityOrder is L2's comparator: descending priority. Equal
// priority threads compare equal, leaving the underlying container
// responsible for preserving insertion order on ties.
func PriorityOrder(a, b *thread.Descriptor) int {
	if a.Priority != b.Priority {
		if a.Priority > b.Priority {
			return -1
		}
		return 1
	}
	return 0
}
