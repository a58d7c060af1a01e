// SPDX-License-Identifier: MIT
// Package parse: the Literal native-number union.
// A Literal is the result of parsing, prior to any numeric-mode decision.
// The representation set is fixed and small (int, exact fraction, real),
// so it is modeled as a closed tagged union; every operation switches
// exhaustively over Kind.

package parse

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Kind tags the native representation a Literal was parsed into.
// The zero value is KindInvalid so that an uninitialized Literal can never
// masquerade as a number.
type Kind uint8

const (
	// KindInvalid marks the zero Literal; it is not a number.
	KindInvalid Kind = iota

	// KindInt — an integer literal (digits only, no dot, no exponent).
	KindInt

	// KindFraction — an exact ratio produced by '/' or '^' over exact operands.
	KindFraction

	// KindReal — a decimal or scientific literal, or any value computed
	// through floating arithmetic (sqrt, fractional powers, real division).
	KindReal
)

// String returns a stable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFraction:
		return "fraction"
	case KindReal:
		return "real"
	default:
		return "invalid"
	}
}

// Literal is a parsed native number. Every valid Literal carries two
// readings of the same value:
//
//   - an exact rational, reconstructed from the literal's decimal text
//     (for computed reals: from the shortest decimal representation),
//     consumed by the exact numeric mode;
//   - a float64, consumed by the tolerant numeric mode.
//
// Literal is an immutable value type: accessors return copies, and no
// method mutates the receiver.
type Literal struct {
	kind Kind
	rat  *big.Rat
	f    float64
}

// NewInt builds an integer literal.
func NewInt(v int64) Literal {
	r := new(big.Rat).SetInt64(v)

	return Literal{kind: KindInt, rat: r, f: ratFloat(r)}
}

// NewFraction builds an exact fraction literal num/den.
// A zero denominator returns ErrDivisionByZero.
func NewFraction(num, den int64) (Literal, error) {
	if den == 0 {
		return Literal{}, fmt.Errorf("NewFraction: %d/%d: %w", num, den, ErrDivisionByZero)
	}
	r := new(big.Rat).SetFrac64(num, den)

	return Literal{kind: KindFraction, rat: r, f: ratFloat(r)}, nil
}

// NewReal builds a real literal from a finite float64.
// NaN and ±Inf return ErrInvalidSyntax: a Literal always names a finite value.
func NewReal(v float64) (Literal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Literal{}, fmt.Errorf("NewReal: %v is not finite: %w", v, ErrInvalidSyntax)
	}

	return Literal{kind: KindReal, rat: ratFromFloat(v), f: v}, nil
}

// Kind reports the native representation of the literal.
func (l Literal) Kind() Kind { return l.kind }

// IsValid reports whether the literal holds a parsed value.
func (l Literal) IsValid() bool { return l.kind != KindInvalid }

// Rat returns a copy of the exact rational reading, or nil for the
// invalid literal. The copy keeps Literal immutable under caller mutation.
func (l Literal) Rat() *big.Rat {
	if l.rat == nil {
		return nil
	}

	return new(big.Rat).Set(l.rat)
}

// Float64 returns the floating reading of the literal.
func (l Literal) Float64() float64 { return l.f }

// IsInt reports whether the literal names an integer value: either an
// integer literal or an exact fraction that reduced to denominator 1.
// Real literals are never integral, even at whole values — this mirrors
// the exponent-integrality rule of the grammar (2^2.0 is a real power).
func (l Literal) IsInt() bool {
	switch l.kind {
	case KindInt:
		return true
	case KindFraction:
		return l.rat.IsInt()
	default:
		return false
	}
}

// String renders the literal for diagnostics: exact kinds as a/b (or a
// bare integer), reals in shortest decimal form.
func (l Literal) String() string {
	switch l.kind {
	case KindInt, KindFraction:
		return l.rat.RatString()
	case KindReal:
		return strconv.FormatFloat(l.f, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}

// neg returns the literal with its sign flipped; the kind is preserved.
func (l Literal) neg() Literal {
	return Literal{kind: l.kind, rat: new(big.Rat).Neg(l.rat), f: -l.f}
}

// ratFloat is the canonical float reading of an exact rational.
func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64()

	return f
}

// ratFromFloat reconstructs an exact rational from the shortest decimal
// text of f, preserving the decimal the user would read rather than the
// underlying binary expansion. f must be finite.
func ratFromFloat(f float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		// Unreachable for finite f; guard kept so a future caller cannot
		// smuggle NaN/Inf into an exact reading.
		panic("parse: ratFromFloat: non-finite input")
	}

	return r
}
