// Package scheduler implements the multilevel feedback ready-queue
// scheduler: admission, selection, aging, preemption, and dispatch for
// a cooperative, single-CPU kernel.
//
// Every entry point requires interrupts to be off (the sole mutual
// exclusion mechanism on a uniprocessor); callers are responsible for
// disabling interrupts before calling in and restoring the prior level
// after. Violating that precondition is an assertion failure, not a
// recoverable error — see SchedulerError.
package scheduler

import (
	"github.com/go-foundations/mlfq/queues"
	"github.com/go-foundations/mlfq/thread"
	"github.com/go-foundations/mlfq/trace"
)

// Config wires the scheduler's external collaborators (spec §6) and
// tunable constants. Zero-valued fields are defaulted the way the
// teacher's NewWithConfig defaults an unset worker count or buffer
// size.
type Config struct {
	Tunables    Tunables
	Sink        trace.Sink
	Interrupts  InterruptController
	ContextSwitch ContextSwitcher
	Ticks       TickSource
}

// Scheduler holds all process-wide ready-queue state. It is expected
// to be constructed once by kernel bootstrap and threaded explicitly
// through call sites — spec §9 flags the original's global singleton
// as a re-architecture point; this type is the explicit handle that
// replaces it.
type Scheduler struct {
	l1 *queues.L1Queue
	l2 *queues.L2Queue
	l3 *queues.L3Queue

	current        *thread.Descriptor
	currentTier    int
	ticksRunning   int
	toBeDestroyed  *thread.Descriptor

	tunables   Tunables
	sink       trace.Sink
	interrupts InterruptController
	ctxSwitch  ContextSwitcher
	ticks      TickSource

	stats *Stats
}

// New constructs a Scheduler. Unset collaborators get innocuous
// defaults (ManualInterruptController, NoopContextSwitcher,
// trace.Discard, a zero TickSource) so a caller can build one with
// only the fields it cares about set, matching the teacher's
// NewWithConfig defaulting pattern.
func New(cfg Config) *Scheduler {
	if cfg.Tunables == (Tunables{}) {
		cfg.Tunables = DefaultTunables()
	}
	if cfg.Sink == nil {
		cfg.Sink = trace.Discard{}
	}
	if cfg.Interrupts == nil {
		cfg.Interrupts = NewManualInterruptController()
	}
	if cfg.ContextSwitch == nil {
		cfg.ContextSwitch = NoopContextSwitcher{}
	}
	if cfg.Ticks == nil {
		cfg.Ticks = &ManualTickSource{}
	}

	return &Scheduler{
		l1:         queues.NewL1Queue(),
		l2:         queues.NewL2Queue(),
		l3:         queues.NewL3Queue(),
		tunables:   cfg.Tunables,
		sink:       cfg.Sink,
		interrupts: cfg.Interrupts,
		ctxSwitch:  cfg.ContextSwitch,
		ticks:      cfg.Ticks,
		stats:      newStats(),
	}
}

func (s *Scheduler) assertInterruptsOff(entry string) {
	assert(entry, s.interrupts.Level() == IntOff, "entered with interrupts enabled")
}

func (s *Scheduler) now() uint64 {
	return s.ticks.TotalTicks()
}

func (s *Scheduler) queueFor(tier int) queues.Queue {
	switch tier {
	case 1:
		return s.l1
	case 2:
		return s.l2
	case 3:
		return s.l3
	default:
		return nil
	}
}

// Current returns the currently running thread, or nil if none.
func (s *Scheduler) Current() *thread.Descriptor {
	return s.current
}

// Stats returns a snapshot of accumulated scheduler counters.
func (s *Scheduler) Stats() StatsSnapshot {
	return s.stats.Get()
}

// ReadyToRun admits thread t into the ready queue selected by its
// current priority, then resets its priority to its initial value.
//
// The reset happens after band selection deliberately (spec §4.3 /
// §9): a thread promoted into L1 and then blocked re-enters L1 by the
// priority it carried at the moment of this call, but begins aging
// again from InitPriority. This is preserved exactly as specified,
// not "fixed."
func (s *Scheduler) ReadyToRun(t *thread.Descriptor) {
	const entry = "ReadyToRun"
	s.assertInterruptsOff(entry)

	tier := Band(t.Priority)
	assert(entry, tier != 0, "thread %d has out-of-range priority %d", t.ID, t.Priority)

	q := s.queueFor(tier)
	if !q.Contains(t) {
		q.Insert(t)
		s.stats.recordAdmission()
		s.sink.Emit(trace.Event{
			Tag:      trace.TagAdmit,
			Tick:     s.now(),
			ThreadID: t.ID,
			Queue:    tier,
		})
	}

	t.Status = thread.Ready
	t.Priority = t.InitPriority
}

// FindNextToRun probes L1, then L2, then L3, and removes and returns
// the front of the first non-empty queue. ok is false when all three
// queues are empty, signalling the caller to invoke the idle path.
func (s *Scheduler) FindNextToRun() (next *thread.Descriptor, ok bool) {
	const entry = "FindNextToRun"
	s.assertInterruptsOff(entry)

	for tier := 1; tier <= 3; tier++ {
		q := s.queueFor(tier)
		if q.IsEmpty() {
			continue
		}
		t, removed := q.RemoveFront()
		if !removed {
			continue
		}
		s.currentTier = tier
		s.sink.Emit(trace.Event{
			Tag:      trace.TagSelect,
			Tick:     s.now(),
			ThreadID: t.ID,
			Queue:    tier,
		})
		return t, true
	}
	return nil, false
}

// Run dispatches next onto the CPU, saving the outgoing thread's
// state and marking it for deferred destruction if finishing.
// Control returns to the caller when old (the thread running before
// this call) is itself dispatched again; from old's point of view,
// Run is where it resumes.
func (s *Scheduler) Run(next *thread.Descriptor, finishing bool) {
	const entry = "Run"
	s.assertInterruptsOff(entry)

	old := s.current

	if finishing {
		assert(entry, s.toBeDestroyed == nil, "finishing thread with a destruction already pending")
		s.toBeDestroyed = old
	}

	if old != nil {
		if old.AddressSpace != nil {
			old.SaveUserState()
			old.AddressSpace.SaveState()
		}
		old.CheckOverflow()
	}

	s.current = next
	next.Status = thread.Running
	next.WaitingTime = 0
	s.ticksRunning = 0

	oldID, oldExecTicks := 0, 0
	if old != nil {
		oldID = old.ID
		oldExecTicks = int(s.now() - old.LastExecTick)
	}
	s.sink.Emit(trace.Event{
		Tag:           trace.TagDispatch,
		Tick:          s.now(),
		ThreadID:      next.ID,
		ReplacedID:    oldID,
		ReplacedTicks: oldExecTicks,
	})

	next.LastExecTick = s.now()
	s.stats.recordDispatch()

	if old != nil {
		s.ctxSwitch.Switch(old, next)
	}

	// Control resumes here once old is redispatched.
	s.assertInterruptsOff(entry)

	s.CheckToBeDestroyed()

	if old != nil && old.AddressSpace != nil {
		old.RestoreUserState()
		old.AddressSpace.RestoreState()
	}
}

// CheckToBeDestroyed releases the descriptor pending destruction, if
// any. Called from Run after the context switch returns, so a thread
// is never freed while its own stack is still live.
func (s *Scheduler) CheckToBeDestroyed() {
	s.toBeDestroyed = nil
}

// ToBeDestroyed exposes the pending-destruction slot for tests that
// need to observe scenario F's handoff directly.
func (s *Scheduler) ToBeDestroyed() *thread.Descriptor {
	return s.toBeDestroyed
}

// UpdatePriority runs the aging pass: for every READY thread in every
// tier, accumulate TimerTicks of waiting time, and promote priority by
// PriorityIncrement (capped at PriorityCap) once waiting time reaches
// AgingThresholdTicks. Thread id 0 (the idle/main thread) is exempt.
//
// Promotion does not re-home the thread across queues (spec §4.6,
// §9): a thread whose priority crosses a band boundary stays in its
// current queue until it is next selected and re-admitted via
// ReadyToRun. This is the scheduler's deliberate deferred-migration
// policy, preserved exactly as the source specifies.
func (s *Scheduler) UpdatePriority() {
	const entry = "UpdatePriority"
	s.assertInterruptsOff(entry)

	for tier := 1; tier <= 3; tier++ {
		q := s.queueFor(tier)
		q.Iter(func(t *thread.Descriptor) bool {
			assert(entry, t.Status == thread.Ready, "thread %d in L%d is not READY", t.ID, tier)

			t.WaitingTime += s.tunables.TimerTicks

			if t.WaitingTime >= s.tunables.AgingThresholdTicks && t.ID > 0 {
				old := t.Priority
				next := old + s.tunables.PriorityIncrement
				if next > s.tunables.PriorityCap {
					next = s.tunables.PriorityCap
				}
				t.Priority = next
				t.WaitingTime = 0
				s.stats.recordPromotion()
				s.sink.Emit(trace.Event{
					Tag:         trace.TagPromote,
					Tick:        s.now(),
					ThreadID:    t.ID,
					OldPriority: old,
					NewPriority: next,
				})
			}
			return true
		})
	}
}

// CheckRemain is the preemption oracle (spec §4.7). It evaluates,
// against the scheduler's current state, whether the running thread
// must be displaced:
//
//  1. The running thread is effectively in the L1 band and L1's head
//     has a strictly smaller remaining burst.
//  2. The running thread is from L2 or L3 and a strictly higher tier
//     is now non-empty (L1 preempts L2/L3; L2 preempts L3). L1 runners
//     are never preempted by L2/L3 arrivals.
//  3. The running thread is from L3 and has run a full quantum.
//
// It does not act on the decision: per spec, the external tick
// handler re-admits the current thread (if not blocking or finishing)
// and calls FindNextToRun + Run.
func (s *Scheduler) CheckRemain() Decision {
	const entry = "CheckRemain"
	s.assertInterruptsOff(entry)

	if s.current == nil {
		return Decision{}
	}

	if s.currentTier == 1 {
		if head, ok := s.l1.Peek(); ok && head.Remain() < s.current.Remain() {
			return s.decide(PreemptL1ShorterRemain)
		}
		return Decision{}
	}

	if !s.l1.IsEmpty() {
		return s.decide(PreemptHigherTierArrival)
	}

	if s.currentTier == 3 && !s.l2.IsEmpty() {
		return s.decide(PreemptHigherTierArrival)
	}

	if s.currentTier == 3 && s.ticksRunning >= s.tunables.L3QuantumTicks {
		return s.decide(PreemptL3QuantumExpired)
	}

	return Decision{}
}

func (s *Scheduler) decide(reason PreemptReason) Decision {
	s.stats.recordPreempt(reason)
	return Decision{Preempt: true, Reason: reason}
}

// Tick runs the aging pass and advances the running thread's quantum
// counter by one TimerTicks quantum, then returns the preemption
// oracle's verdict. This is the entry point the external timer
// interrupt handler calls once per tick boundary (spec §2.5, §4.6).
func (s *Scheduler) Tick() Decision {
	s.UpdatePriority()
	s.ticksRunning += s.tunables.TimerTicks
	return s.CheckRemain()
}

// CurrentTier returns which ready-queue tier (1, 2, or 3) the thread
// most recently selected by FindNextToRun came from, or 0 if
// FindNextToRun has not yet selected a thread. It is not reset when the
// queues empty or a selected thread is never dispatched.
func (s *Scheduler) CurrentTier() int {
	return s.currentTier
}

// Print returns a debug dump of L1's contents, in current backing
// order.
func (s *Scheduler) Print() string {
	out := "L1ReadyList contents:\n"
	s.l1.Iter(func(t *thread.Descriptor) bool {
		out += "  " + t.Name + "\n"
		return true
	})
	return out
}
