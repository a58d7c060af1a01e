// SPDX-License-Identifier: MIT
// Package numeric: the Number closed union, plus Vector and Matrix
// value types. Numbers are immutable: every operation returns a fresh
// value and accessors hand out copies of internal big.Rat state.

package numeric

import (
	"fmt"
	"math/big"
	"strconv"
)

// Kind tags the representation of a Number. The zero value is
// KindInvalid so the zero Number can never masquerade as a value.
type Kind uint8

const (
	// KindInvalid marks the zero Number; arithmetic on it panics and
	// formatting it fails with ErrUnsupportedType.
	KindInvalid Kind = iota

	// KindRational — arbitrary-precision rational (Exact mode).
	// Invariant: always reduced, denominator > 0 (big.Rat guarantees both).
	KindRational

	// KindFloat — float64 (Tolerant mode).
	KindFloat
)

// String returns a stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRational:
		return "rational"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Number is one mode-consistent numeric value. Within one computation
// all Numbers share the active mode's kind; combining kinds is a
// programmer error and panics (see errors.go).
type Number struct {
	kind Kind
	rat  *big.Rat
	f    float64
}

// Vector is an ordered sequence of Numbers.
type Vector []Number

// Matrix is an ordered sequence of row Vectors. Rectangularity is NOT a
// construction guarantee; it is checked explicitly by the validate
// package.
type Matrix []Vector

// FromInt builds a rational Number from an integer.
func FromInt(v int64) Number {
	return Number{kind: KindRational, rat: new(big.Rat).SetInt64(v)}
}

// FromFrac builds a rational Number num/den, reduced with den > 0.
// A zero denominator returns ErrDivisionByZero.
func FromFrac(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, fmt.Errorf("FromFrac: %d/%d: %w", num, den, ErrDivisionByZero)
	}

	return Number{kind: KindRational, rat: new(big.Rat).SetFrac64(num, den)}, nil
}

// FromRat builds a rational Number from a copy of r; a nil r yields the
// invalid Number.
func FromRat(r *big.Rat) Number {
	if r == nil {
		return Number{}
	}

	return Number{kind: KindRational, rat: new(big.Rat).Set(r)}
}

// FromFloat builds a float Number.
func FromFloat(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// Kind reports the representation of n.
func (n Number) Kind() Kind { return n.kind }

// IsValid reports whether n holds a value.
func (n Number) IsValid() bool { return n.kind != KindInvalid }

// Rat returns a copy of the reduced rational value, or nil when n is
// not rational. The copy keeps Number immutable under caller mutation.
func (n Number) Rat() *big.Rat {
	if n.kind != KindRational {
		return nil
	}

	return new(big.Rat).Set(n.rat)
}

// Float64 returns the floating reading of n: the stored float, or the
// nearest float64 for a rational.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindRational:
		f, _ := n.rat.Float64()

		return f
	case KindFloat:
		return n.f
	default:
		panic(panicInvalidNumber)
	}
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	switch n.kind {
	case KindRational:
		return n.rat.Sign()
	case KindFloat:
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		default:
			return 0
		}
	default:
		panic(panicInvalidNumber)
	}
}

// Cmp compares n against o (-1, 0, +1). Both operands must share a kind.
func (n Number) Cmp(o Number) int {
	n.match(o)
	if n.kind == KindRational {
		return n.rat.Cmp(o.rat)
	}
	switch {
	case n.f < o.f:
		return -1
	case n.f > o.f:
		return 1
	default:
		return 0
	}
}

// Add returns n + o. Both operands must share a kind.
func (n Number) Add(o Number) Number {
	n.match(o)
	if n.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Add(n.rat, o.rat)}
	}

	return Number{kind: KindFloat, f: n.f + o.f}
}

// Mul returns n · o. Both operands must share a kind.
func (n Number) Mul(o Number) Number {
	n.match(o)
	if n.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Mul(n.rat, o.rat)}
	}

	return Number{kind: KindFloat, f: n.f * o.f}
}

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.kind {
	case KindRational:
		return Number{kind: KindRational, rat: new(big.Rat).Neg(n.rat)}
	case KindFloat:
		return Number{kind: KindFloat, f: -n.f}
	default:
		panic(panicInvalidNumber)
	}
}

// Inv returns 1/n; a zero value returns ErrDivisionByZero.
func (n Number) Inv() (Number, error) {
	if n.Sign() == 0 {
		return Number{}, fmt.Errorf("Inv: %w", ErrDivisionByZero)
	}
	if n.kind == KindRational {
		return Number{kind: KindRational, rat: new(big.Rat).Inv(n.rat)}, nil
	}

	return Number{kind: KindFloat, f: 1 / n.f}, nil
}

// String implements fmt.Stringer for debugging: rationals as a/b (or a
// bare integer), floats in shortest decimal form.
func (n Number) String() string {
	switch n.kind {
	case KindRational:
		return n.rat.RatString()
	case KindFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}

// match enforces the shared-kind invariant for binary operations.
func (n Number) match(o Number) {
	if n.kind == KindInvalid || o.kind == KindInvalid {
		panic(panicInvalidNumber)
	}
	if n.kind != o.kind {
		panic(panicMixedKinds)
	}
}
