// Package thread defines the descriptor the scheduler schedules.
//
// The descriptor is owned by the surrounding kernel (thread creation,
// stack allocation, and destruction are out of scope here); the
// scheduler only ever holds a non-owning reference to it.
package thread

import (
	"github.com/google/uuid"
)

// Status is the lifecycle state of a thread.
type Status int

const (
	New Status = iota
	Ready
	Running
	Blocked
	Terminated
)

func (s Status) String() string {
	switch s {
	case New:
		return "NEW"
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	case Terminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Priority bounds. Priority ∈ [MinPriority, MaxPriority].
const (
	MinPriority = 0
	MaxPriority = 149
)

// AddressSpace is a stand-in for the user-memory image collaborator
// (spec: out of scope, external). It carries enough identity for the
// dispatcher's save/restore hand-off to be observable in tests without
// modeling a real MMU.
type AddressSpace struct {
	ID uuid.UUID

	saved bool
}

// NewAddressSpace allocates a fresh address-space handle.
func NewAddressSpace() *AddressSpace {
	return &AddressSpace{ID: uuid.New()}
}

// SaveState persists the user-mode image for the owning thread.
func (a *AddressSpace) SaveState() {
	if a == nil {
		return
	}
	a.saved = true
}

// RestoreState reinstates the user-mode image for the owning thread.
func (a *AddressSpace) RestoreState() {
	if a == nil {
		return
	}
	a.saved = false
}

// Descriptor is the observable thread state the scheduler reads and
// mutates. Field names mirror the attributes named in the spec.
type Descriptor struct {
	ID   int // stable unique identifier; ID == 0 is the idle/main thread
	Name string

	Status Status

	Priority     int // current effective priority
	InitPriority int // priority reapplied on each admission

	BurstTime int // declared total CPU burst, in ticks
	TotalExe  int // accumulated execution ticks so far
	remain    int // derived = BurstTime - TotalExe; refreshed lazily

	WaitingTime  int // ticks accumulated since last admission
	LastExecTick uint64

	AddressSpace *AddressSpace

	userRegistersSaved bool
	stackWatermark     int
}

// NewDescriptor creates a thread descriptor with the given id, initial
// priority, and declared CPU burst. Priority is clamped into
// [MinPriority, MaxPriority] by the caller's responsibility;
// out-of-range priority is an admission-time assertion failure (spec
// §7), not sanitized here.
func NewDescriptor(id int, name string, priority, burstTime int) *Descriptor {
	return &Descriptor{
		ID:           id,
		Name:         name,
		Status:       New,
		Priority:     priority,
		InitPriority: priority,
		BurstTime:    burstTime,
	}
}

// Remain recomputes and returns the residual burst: BurstTime -
// TotalExe. The spec requires this be refreshed at every insertion and
// comparison because TotalExe mutates while a thread is enqueued.
func (d *Descriptor) Remain() int {
	d.remain = d.BurstTime - d.TotalExe
	return d.remain
}

// SaveUserState saves the machine CPU registers for a user-mode thread.
// Stubbed: the real register file lives with the (out-of-scope)
// context-switch primitive.
func (d *Descriptor) SaveUserState() {
	d.userRegistersSaved = true
}

// RestoreUserState restores the machine CPU registers for a user-mode
// thread.
func (d *Descriptor) RestoreUserState() {
	d.userRegistersSaved = false
}

// CheckOverflow validates the outgoing kernel stack has not overflowed.
// Stubbed: real overflow detection requires a stack canary maintained
// by the (out-of-scope) thread-creation code.
func (d *Descriptor) CheckOverflow() {
	if d.stackWatermark < 0 {
		panic("thread: kernel stack overflow detected")
	}
}
