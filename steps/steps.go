// SPDX-License-Identifier: MIT
// Package steps: trace recorder implementation.

package steps

// Stage marks where an entry sits inside one traced operation.
type Stage uint8

const (
	// Begin opens an operation.
	Begin Stage = iota

	// Step is an intermediate, explanatory entry.
	Step

	// End closes an operation, optionally carrying its final state.
	End
)

// String returns a stable name for the stage.
func (s Stage) String() string {
	switch s {
	case Begin:
		return "begin"
	case Step:
		return "step"
	case End:
		return "end"
	default:
		return "stage(?)"
	}
}

// Entry is one recorded step. Seq is the entry's position in the trace,
// assigned on append, so a consumer can re-sort after serialization.
type Entry struct {
	Op    string
	Stage Stage
	Msg   string
	State map[string]any
	Seq   int
}

// Trace is an append-only ordered sequence of entries. The zero value
// and the nil pointer are both ready to use; every method on a nil
// receiver is a no-op, which is how callers opt out of tracing.
type Trace struct {
	entries []Entry
	op      string
	open    bool
}

// New returns an empty trace.
func New() *Trace { return &Trace{} }

// Begin opens a new named operation. An operation left open is closed
// implicitly first, so the trace stays well-formed and the traced
// computation never fails on account of its trace.
func (t *Trace) Begin(op string) {
	if t == nil {
		return
	}
	if t.open {
		t.append(End, "implicit end", nil)
	}
	t.op = op
	t.open = true
	t.append(Begin, "begin", nil)
}

// Add appends an intermediate step with a message and optional state.
// Without a preceding Begin, an anonymous operation is opened first.
func (t *Trace) Add(msg string, state map[string]any) {
	if t == nil {
		return
	}
	if !t.open {
		if t.op == "" {
			t.op = "unnamed"
		}
		t.open = true
		t.append(Begin, "implicit begin", nil)
	}
	t.append(Step, msg, state)
}

// End closes the current operation, recording the final state. Without
// an open operation it does nothing.
func (t *Trace) End(final map[string]any) {
	if t == nil || !t.open {
		return
	}
	t.append(End, "end", final)
	t.open = false
	t.op = ""
}

// ToList returns a copy of the recorded entries in order. A nil trace
// yields nil.
func (t *Trace) ToList() []Entry {
	if t == nil {
		return nil
	}

	return append([]Entry(nil), t.entries...)
}

// Len reports the number of recorded entries.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Clear drops all entries and any open operation.
func (t *Trace) Clear() {
	if t == nil {
		return
	}
	t.entries = nil
	t.op = ""
	t.open = false
}

func (t *Trace) append(stage Stage, msg string, state map[string]any) {
	if state == nil {
		state = map[string]any{}
	}
	t.entries = append(t.entries, Entry{
		Op:    t.op,
		Stage: stage,
		Msg:   msg,
		State: state,
		Seq:   len(t.entries),
	})
}
