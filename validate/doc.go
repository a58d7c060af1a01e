// Package validate provides fail-fast structural precondition checks for
// vectors and matrices, plus the interval/sign-change range checks used
// by iterative root-finding front ends.
//
// Every function either accepts its input silently or returns a wrapped
// sentinel (ErrShape, ErrRange) whose message names the violated rule
// and the offending dimensions or values. Nothing is auto-corrected,
// ever: a caller that reaches an algorithm has, by construction, already
// passed the checks that algorithm assumes.
//
// Shape checks depend only on dimensions — never on the numeric mode —
// so the same matrix passes or fails identically under exact and
// tolerant policies.
package validate
