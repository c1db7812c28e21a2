package scheduler

import "sync"

// PreemptReason classifies why the preemption oracle signalled
// preempt, for observability. It has no bearing on scheduling
// semantics.
type PreemptReason int

const (
	NoPreempt PreemptReason = iota
	PreemptL1ShorterRemain
	PreemptHigherTierArrival
	PreemptL3QuantumExpired
)

func (r PreemptReason) String() string {
	switch r {
	case PreemptL1ShorterRemain:
		return "l1_shorter_remain"
	case PreemptHigherTierArrival:
		return "higher_tier_arrival"
	case PreemptL3QuantumExpired:
		return "l3_quantum_expired"
	default:
		return "none"
	}
}

// Decision is the preemption oracle's verdict.
type Decision struct {
	Preempt bool
	Reason  PreemptReason
}

// StatsSnapshot is a point-in-time copy of Stats, safe to read without
// holding any lock.
type StatsSnapshot struct {
	Admissions       int
	Dispatches       int
	Promotions       int
	PreemptionByTier map[PreemptReason]int
}

// Stats accumulates scheduler-wide counters, mirroring the teacher's
// mutex-guarded metrics struct pattern (accumulate under lock, return
// a value copy from Get).
type Stats struct {
	mu sync.RWMutex

	admissions       int
	dispatches       int
	promotions       int
	preemptionByTier map[PreemptReason]int
}

func newStats() *Stats {
	return &Stats{preemptionByTier: make(map[PreemptReason]int)}
}

func (s *Stats) recordAdmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admissions++
}

func (s *Stats) recordDispatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatches++
}

func (s *Stats) recordPromotion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promotions++
}

func (s *Stats) recordPreempt(reason PreemptReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preemptionByTier[reason]++
}

// Get returns a snapshot copy of the accumulated counters.
func (s *Stats) Get() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make(map[PreemptReason]int, len(s.preemptionByTier))
	for k, v := range s.preemptionByTier {
		cp[k] = v
	}
	return StatsSnapshot{
		Admissions:       s.admissions,
		Dispatches:       s.dispatches,
		Promotions:       s.promotions,
		PreemptionByTier: cp,
	}
}
