// Package trace provides the scheduler's debug trace sink.
//
// The scheduler emits one event per admission, selection, priority
// change, and dispatch. The bracketed tag format is part of the
// observable contract (golden-file tests); the underlying sink is a
// narrow interface so the scheduler core never imports a logging
// library directly.
package trace

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Tag classifies a trace event, matching the four tags the spec names.
type Tag string

const (
	TagAdmit    Tag = "A" // thread inserted into a ready queue
	TagSelect   Tag = "B" // thread removed from a ready queue
	TagPromote  Tag = "C" // aging priority promotion
	TagDispatch Tag = "E" // thread selected for execution
)

// Event is one scheduler trace record.
type Event struct {
	Tag      Tag
	Tick     uint64
	ThreadID int
	Queue    int // 1, 2, or 3; zero when not queue-relevant

	// Optional fields, populated depending on Tag.
	OldPriority   int
	NewPriority   int
	ReplacedID    int
	ReplacedTicks int
}

// Sink receives scheduler trace events. Implementations must not block
// the caller for long: events are emitted from inside scheduler entry
// points that run with interrupts disabled.
type Sink interface {
	Emit(Event)
}

// Message renders an event using the exact bracketed field order the
// spec documents for each tag, for sinks (or tests) that want the
// original debug-string shape alongside structured fields.
func (e Event) Message() string {
	switch e.Tag {
	case TagAdmit:
		return fmt.Sprintf("[A]Tick[%d]: Thread[%d] -> L[%d]", e.Tick, e.ThreadID, e.Queue)
	case TagSelect:
		return fmt.Sprintf("[B]Tick[%d]: Thread[%d] <- L[%d]", e.Tick, e.ThreadID, e.Queue)
	case TagPromote:
		return fmt.Sprintf("[C]Tick[%d]: Thread[%d] priority [%d] -> [%d]", e.Tick, e.ThreadID, e.OldPriority, e.NewPriority)
	case TagDispatch:
		return fmt.Sprintf("[E]Tick[%d]: Thread[%d] selected; Thread[%d] replaced after executing [%d] ticks",
			e.Tick, e.ThreadID, e.ReplacedID, e.ReplacedTicks)
	default:
		return fmt.Sprintf("[?]Tick[%d]: Thread[%d]", e.Tick, e.ThreadID)
	}
}

// ZerologSink emits scheduler events as structured zerolog records
// under the "dbgSche" logger category.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink builds a sink writing human-readable console output
// to w (os.Stdout if nil), classed under the "dbgSche" category.
func NewZerologSink(w *os.File) *ZerologSink {
	if w == nil {
		w = os.Stdout
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Str("category", "dbgSche").
		Logger()
	return &ZerologSink{logger: logger}
}

// Emit implements Sink.
func (s *ZerologSink) Emit(e Event) {
	ev := s.logger.Debug().
		Str("tag", string(e.Tag)).
		Uint64("tick", e.Tick).
		Int("thread_id", e.ThreadID)

	if e.Queue != 0 {
		ev = ev.Int("queue", e.Queue)
	}
	switch e.Tag {
	case TagPromote:
		ev = ev.Int("old_priority", e.OldPriority).Int("new_priority", e.NewPriority)
	case TagDispatch:
		ev = ev.Int("replaced_id", e.ReplacedID).Int("replaced_ticks", e.ReplacedTicks)
	}
	ev.Msg(e.Message())
}

// Discard is a Sink that drops every event; useful for library
// consumers and tests that only care about scheduler side effects, not
// trace output.
type Discard struct{}

// Emit implements Sink.
func (Discard) Emit(Event) {}

// Recorder is a Sink that appends every event to an in-memory slice,
// used by tests to assert against the exact emitted sequence.
type Recorder struct {
	Events []Event
}

// Emit implements Sink.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}
