// SPDX-License-Identifier: MIT
// Package format: public rendering surface.

package format

import (
	"fmt"
	"math"
	"math/big"

	"github.com/kiwisolve/numkit/numeric"
)

// Style selects how a scalar is rendered.
type Style uint8

const (
	// Auto prefers a finite decimal and falls back to a fraction.
	Auto Style = iota

	// Fraction always renders a/b (bare integer when the denominator is 1).
	Fraction

	// Float always renders a decimal, capped at the decimal count.
	Float
)

// String returns a stable name for the style.
func (s Style) String() string {
	switch s {
	case Auto:
		return "auto"
	case Fraction:
		return "fraction"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// ErrUnsupportedType aliases the numeric sentinel: rendering the invalid
// Number (or a non-finite float) names the same condition as converting
// an invalid literal.
var ErrUnsupportedType = numeric.ErrUnsupportedType

// ErrInvalidConfiguration aliases the numeric sentinel for bad rendering
// options (unknown style, negative decimal count).
var ErrInvalidConfiguration = numeric.ErrInvalidConfiguration

// Scalar renders one Number under the given style; decimals caps the
// fractional digits of decimal output (half-up rounding, trailing zeros
// trimmed).
func Scalar(n numeric.Number, style Style, decimals int) (string, error) {
	if decimals < 0 {
		return "", fmt.Errorf("Scalar: decimals %d must be ≥ 0: %w", decimals, ErrInvalidConfiguration)
	}
	r, err := exactValue(n)
	if err != nil {
		return "", fmt.Errorf("Scalar: %w", err)
	}

	switch style {
	case Fraction:
		return r.RatString(), nil
	case Float:
		return decimalString(r, decimals), nil
	case Auto:
		if n.Kind() == numeric.KindFloat || finiteDecimal(r) {
			return decimalString(r, decimals), nil
		}

		return r.RatString(), nil
	default:
		return "", fmt.Errorf("Scalar: unknown style %s: %w", style, ErrInvalidConfiguration)
	}
}

// Matrix renders every entry of m under the given style, preserving the
// shape (ragged input stays ragged: formatting never repairs structure).
func Matrix(m numeric.Matrix, style Style, decimals int) ([][]string, error) {
	out := make([][]string, len(m))
	for i, row := range m {
		cells := make([]string, len(row))
		for j, n := range row {
			s, err := Scalar(n, style, decimals)
			if err != nil {
				return nil, fmt.Errorf("Matrix: entry (%d,%d): %w", i, j, err)
			}
			cells[j] = s
		}
		out[i] = cells
	}

	return out, nil
}

// exactValue lifts a Number into an exact rational for rendering. Floats
// re-enter through their shortest decimal text, so the decimal a user
// saw is the decimal that gets formatted.
func exactValue(n numeric.Number) (*big.Rat, error) {
	switch n.Kind() {
	case numeric.KindRational:
		return n.Rat(), nil
	case numeric.KindFloat:
		f := n.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite value %v: %w", f, ErrUnsupportedType)
		}

		return floatRat(f), nil
	default:
		return nil, fmt.Errorf("invalid Number: %w", ErrUnsupportedType)
	}
}
