// Package algebra wires the core packages into end-to-end services:
// text in, validated mode-consistent computation in the middle, display
// strings out, with an optional pedagogical trace alongside.
//
// Each service follows the same pipeline:
//
//	text ─▶ parse.Matrix ─▶ Policy.ToMatrix ─▶ validate ─▶ matrix op ─▶ format
//
// Errors from any stage propagate unchanged (wrapped with the service
// name), so a presentation layer can match the core sentinels with
// errors.Is and render precise feedback. Passing a nil *steps.Trace is
// the supported way to run without tracing.
package algebra
