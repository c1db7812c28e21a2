package queues

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/go-foundations/mlfq/thread"
)

type QueuesTestSuite struct {
	suite.Suite
}

func TestQueuesTestSuite(t *testing.T) {
	suite.Run(t, new(QueuesTestSuite))
}

func (ts *QueuesTestSuite) TestL1BurstOrder() {
	q := NewL1Queue()

	a := thread.NewDescriptor(5, "A", 120, 40)
	a.TotalExe = 10 // remain 30

	b := thread.NewDescriptor(3, "B", 120, 50)
	b.TotalExe = 20 // remain 30, ties with A, id 3 < 5

	q.Insert(a)
	q.Insert(b)

	first, ok := q.RemoveFront()
	ts.True(ok)
	ts.Equal(3, first.ID, "tie on remain breaks by ascending id")

	second, ok := q.RemoveFront()
	ts.True(ok)
	ts.Equal(5, second.ID)

	ts.True(q.IsEmpty())
}

func (ts *QueuesTestSuite) TestL1ShortestRemainWins() {
	q := NewL1Queue()

	a := thread.NewDescriptor(1, "A", 120, 50) // remain 50
	b := thread.NewDescriptor(2, "B", 120, 30) // remain 30

	q.Insert(a)
	q.Insert(b)

	first, ok := q.RemoveFront()
	ts.True(ok)
	ts.Equal(2, first.ID)
}

func (ts *QueuesTestSuite) TestL1RemainRecomputedOnDemand() {
	q := NewL1Queue()

	a := thread.NewDescriptor(1, "A", 120, 50)
	b := thread.NewDescriptor(2, "B", 120, 40)
	q.Insert(a)
	q.Insert(b)

	// B currently has the shorter remaining burst, but A catches up.
	a.TotalExe = 45 // remain(a) = 5, now shorter than remain(b) = 40

	first, ok := q.RemoveFront()
	ts.True(ok)
	ts.Equal(1, first.ID, "remain must be recomputed fresh at extraction")
}

func (ts *QueuesTestSuite) TestL2PriorityOrderAndStability() {
	q := NewL2Queue()

	low := thread.NewDescriptor(1, "low", 60, 0)
	high := thread.NewDescriptor(2, "high", 90, 0)
	firstEqual := thread.NewDescriptor(3, "first-equal", 75, 0)
	secondEqual := thread.NewDescriptor(4, "second-equal", 75, 0)

	q.Insert(low)
	q.Insert(high)
	q.Insert(firstEqual)
	q.Insert(secondEqual)

	order := []int{}
	q.Iter(func(t *thread.Descriptor) bool {
		order = append(order, t.ID)
		return true
	})

	ts.Equal([]int{2, 3, 4, 1}, order, "descending priority, ties in insertion order")
}

func (ts *QueuesTestSuite) TestL3FIFO() {
	q := NewL3Queue()

	for i := 1; i <= 5; i++ {
		q.Insert(thread.NewDescriptor(i, "t", 10, 0))
	}

	for i := 1; i <= 5; i++ {
		t, ok := q.RemoveFront()
		ts.True(ok)
		ts.Equal(i, t.ID)
	}
	ts.True(q.IsEmpty())
}

func (ts *QueuesTestSuite) TestL3GrowsPastInitialCapacity() {
	q := NewL3Queue()

	n := l3InitialCapacity*2 + 3
	for i := 0; i < n; i++ {
		q.Insert(thread.NewDescriptor(i, "t", 10, 0))
	}
	ts.Equal(n, q.Len())

	for i := 0; i < n; i++ {
		t, ok := q.RemoveFront()
		ts.True(ok)
		ts.Equal(i, t.ID)
	}
}

func (ts *QueuesTestSuite) TestContains() {
	q := NewL3Queue()
	a := thread.NewDescriptor(1, "a", 10, 0)
	b := thread.NewDescriptor(2, "b", 10, 0)

	q.Insert(a)
	ts.True(q.Contains(a))
	ts.False(q.Contains(b))
}
