package scheduler

import "github.com/go-foundations/mlfq/thread"

// Priority band boundaries. Checked at admission time only (spec
// invariant 2): a thread's band can drift out of sync with its
// current queue while it waits, by design (see UpdatePriority).
const (
	L1Min = 100
	L1Max = thread.MaxPriority
	L2Min = 50
	L2Max = 99
	L3Min = thread.MinPriority
	L3Max = 49
)

// Tunables holds the scheduler's compile-time constants. Library
// consumers get spec-accurate defaults from DefaultTunables; only
// cmd/schedsim ever overrides them, via package config.
type Tunables struct {
	// AgingThresholdTicks is the accumulated waiting time, in ticks,
	// after which a thread's priority is promoted.
	AgingThresholdTicks int

	// PriorityIncrement is added to a thread's priority on promotion.
	PriorityIncrement int

	// PriorityCap is the maximum priority a promotion can reach.
	PriorityCap int

	// L3QuantumTicks is the round-robin time slice for the L3 tier.
	L3QuantumTicks int

	// TimerTicks is the quantum length added to WaitingTime on every
	// UpdatePriority call.
	TimerTicks int
}

// DefaultTunables returns the constants named in the spec: aging
// threshold 1000, increment 10, cap 149, L3 quantum 100.
func DefaultTunables() Tunables {
	return Tunables{
		AgingThresholdTicks: 1000,
		PriorityIncrement:   10,
		PriorityCap:         thread.MaxPriority,
		L3QuantumTicks:      100,
		TimerTicks:          100,
	}
}

// Band returns which tier (1, 2, or 3) a priority belongs to. Priority
// outside [thread.MinPriority, thread.MaxPriority] returns 0, which
// admission must treat as an assertion failure (spec §7).
func Band(priority int) int {
	switch {
	case priority >= L1Min && priority <= L1Max:
		return 1
	case priority >= L2Min && priority <= L2Max:
		return 2
	case priority >= L3Min && priority <= L3Max:
		return 3
	default:
		return 0
	}
}
