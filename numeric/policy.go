// SPDX-License-Identifier: MIT

// Package numeric: the Policy — conversion and comparison under one mode.
// This file defines:
//   - Option / NewPolicy (functional options, validated as a whole),
//   - ToNumber / ToVector / ToMatrix conversions,
//   - Equal / IsZero / IsOne predicates.
//
// Design goals:
//   - Deterministic behavior: no global state; a Policy is an immutable
//     value threaded explicitly through every call.
//   - Reconfiguration is replacement: build a new Policy; concurrent
//     readers of the old value can never straddle a change.
//   - Every comparison in higher layers MUST route through this policy;
//     direct == on floats is the bug class this package exists to kill.

package numeric

import (
	"fmt"
	"math"

	"github.com/kiwisolve/numkit/parse"
)

// Option mutates a Policy under construction. Setters store raw values;
// NewPolicy validates the assembled configuration as a whole, so an
// invalid combination surfaces as ErrInvalidConfiguration rather than a
// panic — configuration is user input here, not programmer input.
type Option func(*Policy)

// WithTolerance sets the Tolerant-mode equality tolerance (must be > 0).
func WithTolerance(tol float64) Option {
	return func(p *Policy) { p.tolerance = tol }
}

// WithDecimals sets the Tolerant-mode rounding width (must be ≥ 0).
func WithDecimals(d int) Option {
	return func(p *Policy) { p.decimals = d }
}

// Policy is one immutable numeric configuration: {mode, tolerance,
// decimals}. Tolerance and decimals only influence Tolerant mode but are
// always carried, so switching modes never loses configuration.
type Policy struct {
	mode      Mode
	tolerance float64
	decimals  int
}

// Default returns the documented default policy: Exact mode, with
// DefaultTolerance/DefaultDecimals carried for a later Tolerant policy.
func Default() *Policy {
	return &Policy{mode: Exact, tolerance: DefaultTolerance, decimals: DefaultDecimals}
}

// NewPolicy builds a Policy for the given mode.
//
// Stage 1 (Prepare): start from the documented defaults.
// Stage 2 (Apply): run option setters in order, last-writer-wins.
// Stage 3 (Validate): reject an unrecognized mode, a non-positive or
// non-finite tolerance, or a negative decimal count with
// ErrInvalidConfiguration naming the offending value.
func NewPolicy(mode Mode, opts ...Option) (*Policy, error) {
	p := Default()
	p.mode = mode
	for _, opt := range opts {
		opt(p)
	}

	if mode != Exact && mode != Tolerant {
		return nil, fmt.Errorf("NewPolicy: unknown mode %s: %w", mode, ErrInvalidConfiguration)
	}
	if p.tolerance <= 0 || math.IsInf(p.tolerance, 0) || math.IsNaN(p.tolerance) {
		return nil, fmt.Errorf("NewPolicy: tolerance %v must be a positive finite value: %w",
			p.tolerance, ErrInvalidConfiguration)
	}
	if p.decimals < 0 {
		return nil, fmt.Errorf("NewPolicy: decimals %d must be ≥ 0: %w", p.decimals, ErrInvalidConfiguration)
	}

	return p, nil
}

// Mode reports the active mode.
func (p *Policy) Mode() Mode { return p.mode }

// Tolerance reports the configured equality tolerance.
func (p *Policy) Tolerance() float64 { return p.tolerance }

// Decimals reports the configured rounding / display width.
func (p *Policy) Decimals() int { return p.decimals }

// ToNumber converts a native literal into this policy's representation.
//
//   - Exact: the literal's exact rational reading is taken as-is —
//     integers and fractions map exactly, decimal and scientific
//     literals were already reconstructed from their decimal text.
//   - Tolerant: the literal's float reading, rounded to the configured
//     decimal count.
//
// The invalid literal fails with ErrUnsupportedType.
func (p *Policy) ToNumber(lit parse.Literal) (Number, error) {
	if !lit.IsValid() {
		return Number{}, fmt.Errorf("ToNumber: invalid literal: %w", ErrUnsupportedType)
	}
	if p.mode == Tolerant {
		return Number{kind: KindFloat, f: roundTo(lit.Float64(), p.decimals)}, nil
	}

	return Number{kind: KindRational, rat: lit.Rat()}, nil
}

// ToVector converts literals elementwise, order-preserving.
func (p *Policy) ToVector(lits []parse.Literal) (Vector, error) {
	out := make(Vector, len(lits))
	for i, lit := range lits {
		n, err := p.ToNumber(lit)
		if err != nil {
			return nil, fmt.Errorf("ToVector: element %d: %w", i, err)
		}
		out[i] = n
	}

	return out, nil
}

// ToMatrix converts rows elementwise, order-preserving. It does NOT
// check rectangularity; that is the validate package's concern.
func (p *Policy) ToMatrix(rows [][]parse.Literal) (Matrix, error) {
	out := make(Matrix, len(rows))
	for i, row := range rows {
		vec, err := p.ToVector(row)
		if err != nil {
			return nil, fmt.Errorf("ToMatrix: row %d: %w", i, err)
		}
		out[i] = vec
	}

	return out, nil
}

// Equal compares two Numbers under the active mode: structural equality
// of reduced rationals in Exact mode, |a−b| ≤ tolerance in Tolerant
// mode. Feeding a Number of the wrong kind is a programmer error and
// panics — mode mixing must never be silently absorbed by a comparison.
func (p *Policy) Equal(a, b Number) bool {
	p.require(a)
	p.require(b)
	if p.mode == Exact {
		return a.rat.Cmp(b.rat) == 0
	}

	return math.Abs(a.f-b.f) <= p.tolerance
}

// IsZero reports whether n equals the mode's zero under Equal semantics.
func (p *Policy) IsZero(n Number) bool { return p.Equal(n, p.Zero()) }

// IsOne reports whether n equals the mode's one under Equal semantics.
func (p *Policy) IsOne(n Number) bool { return p.Equal(n, p.One()) }

// Zero returns the mode-consistent zero value.
func (p *Policy) Zero() Number {
	if p.mode == Tolerant {
		return FromFloat(0)
	}

	return FromInt(0)
}

// One returns the mode-consistent one value.
func (p *Policy) One() Number {
	if p.mode == Tolerant {
		return FromFloat(1)
	}

	return FromInt(1)
}

// require panics unless n carries the representation this policy's mode
// produces — the fail-fast half of the "never silently mix" invariant.
func (p *Policy) require(n Number) {
	want := KindRational
	if p.mode == Tolerant {
		want = KindFloat
	}
	if n.kind == KindInvalid {
		panic(panicInvalidNumber)
	}
	if n.kind != want {
		panic(panicModeMismatch)
	}
}

// roundTo rounds v to the given number of decimal places, half away
// from zero.
func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	r := math.Round(v * shift)
	if math.IsInf(r, 0) {
		return v
	}

	return r / shift
}
