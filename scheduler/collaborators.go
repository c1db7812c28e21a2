package scheduler

import "github.com/go-foundations/mlfq/thread"

// IntLevel is the interrupt controller's reported level.
type IntLevel int

const (
	IntOff IntLevel = iota
	IntOn
)

// InterruptController is the narrow interface the scheduler uses to
// assert mutual exclusion. The scheduler never disables or enables
// interrupts itself — that is the caller's responsibility on entry and
// exit of every scheduler entry point — it only asserts the level it
// expects.
type InterruptController interface {
	Level() IntLevel
}

// ContextSwitcher performs the machine-dependent register and stack
// swap between two threads. Switch returns when old is next
// dispatched (i.e. control resumes inside the call that originally
// invoked it, in old's context).
type ContextSwitcher interface {
	Switch(old, next *thread.Descriptor)
}

// TickSource is the monotonic tick counter the scheduler reads to
// stamp trace events and dispatch bookkeeping.
type TickSource interface {
	TotalTicks() uint64
}

// ManualInterruptController is a trivial InterruptController a test or
// simulation flips explicitly, standing in for the real interrupt
// controller's getLevel().
type ManualInterruptController struct {
	level IntLevel
}

// NewManualInterruptController starts with interrupts off, matching
// every scheduler entry point's precondition.
func NewManualInterruptController() *ManualInterruptController {
	return &ManualInterruptController{level: IntOff}
}

// Level implements InterruptController.
func (m *ManualInterruptController) Level() IntLevel { return m.level }

// SetLevel changes the reported interrupt level.
func (m *ManualInterruptController) SetLevel(level IntLevel) { m.level = level }

// ManualTickSource is a TickSource a test or simulation advances
// explicitly.
type ManualTickSource struct {
	ticks uint64
}

// TotalTicks implements TickSource.
func (m *ManualTickSource) TotalTicks() uint64 { return m.ticks }

// Advance moves the tick counter forward by n ticks.
func (m *ManualTickSource) Advance(n uint64) { m.ticks += n }

// NoopContextSwitcher is a ContextSwitcher that returns immediately,
// for driving the scheduler's bookkeeping in tests and simulations
// without a real machine stack swap.
type NoopContextSwitcher struct{}

// Switch implements ContextSwitcher.
func (NoopContextSwitcher) Switch(_, _ *thread.Descriptor) {}
