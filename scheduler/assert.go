package scheduler

import "fmt"

// SchedulerError marks an assertion violation inside a scheduler entry
// point — by spec, these indicate kernel bugs (interrupts left on,
// double destruction, a non-READY thread found in a ready queue), never
// a recoverable runtime condition. Call sites panic with this type
// rather than returning an error, since none of the spec'd signatures
// (ReadyToRun, FindNextToRun, Run, UpdatePriority) have an error
// return to begin with.
type SchedulerError struct {
	Entry   string
	Message string
}

func (e *SchedulerError) Error() string {
	return fmt.Sprintf("scheduler: %s: %s", e.Entry, e.Message)
}

func assert(entry string, cond bool, format string, args ...any) {
	if !cond {
		panic(&SchedulerError{Entry: entry, Message: fmt.Sprintf(format, args...)})
	}
}
