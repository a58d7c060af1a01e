// Package numeric is the single source of truth for how numbers are
// represented and compared: exact rationals or tolerance-aware floats,
// chosen by an explicit Policy and never silently mixed.
//
// 🚀 What is a Policy?
//
//	A small immutable value {mode, tolerance, decimals} built once via
//	NewPolicy and passed explicitly into every call that converts or
//	compares. Reconfiguration means building a new Policy; readers of
//	the old value can never observe a half-applied change, so no global
//	barrier is needed.
//
//	  • Exact mode    — math/big rationals, reduced by construction,
//	    structural equality, no rounding, ever.
//	  • Tolerant mode — float64 values rounded to a configured decimal
//	    count on conversion, equality within a configured tolerance.
//
// ✨ Key properties:
//   - Closed union: a Number is Rational or Float, nothing else; every
//     operation switches exhaustively over the kind.
//   - Mixing fails fast: combining a Rational with a Float, or feeding a
//     Number that contradicts the Policy's mode, is a programmer error
//     and panics with a stable message. All user-triggerable failures
//     are sentinel errors instead.
//   - Centralized comparisons: Equal, IsZero and IsOne live here so that
//     algorithms built on top can never fall back to direct ==, the
//     classic source of floating-point equality bugs.
//
// ⚙️ Usage:
//
//	pol, err := numeric.NewPolicy(numeric.Tolerant,
//	  numeric.WithDecimals(4),
//	  numeric.WithTolerance(1e-9),
//	)
//	n, err := pol.ToNumber(lit)      // lit from the parse package
//	ok := pol.Equal(a, b)            // |a-b| ≤ tolerance in Tolerant mode
//
// Exact conversion reconstructs rationals from the literal's decimal
// text (3.14 → 157/50), preserving what the user wrote rather than the
// nearest binary float.
package numeric
