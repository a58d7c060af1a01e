// Package steps records an ordered pedagogical trace of one logical
// operation — a pure side-channel that other components may write into
// but whose absence never changes any result.
//
// A Trace is owned by the calling operation: create one with New, pass
// it down, read it once with ToList, discard it. Every method is a legal
// no-op on a nil *Trace, so opting out of tracing costs a single nil
// argument and zero allocations:
//
//	func Solve(pol *numeric.Policy, text string, tr *steps.Trace) ... {
//	  tr.Begin("solve")
//	  tr.Add("parsed input", map[string]any{"rows": rows})
//	  ...
//	  tr.End(map[string]any{"ok": true})
//	}
//
//	Solve(pol, text, nil) // identical results, no trace
//
// Entries carry the operation name, a stage marker (Begin, Step, End), a
// human message, a small state mapping, and a sequence index. The trace
// is append-only; Begin on an open trace closes the previous operation
// implicitly rather than erroring, keeping misuse visible in the trace
// itself instead of failing a computation that tracing must never affect.
package steps
