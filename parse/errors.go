// SPDX-License-Identifier: MIT
// Package parse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the parse
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. Call sites wrap with fmt.Errorf("ctx: %w", ErrX) to
// attach the offending fragment and position.

package parse

import "errors"

var (
	// ErrInvalidSyntax is returned for any input outside the restricted
	// grammar: disallowed characters, unbalanced parentheses, malformed
	// numbers, trailing input, unsupported operations (binary +/-,
	// fractional powers of negative bases, square roots of negatives).
	ErrInvalidSyntax = errors.New("parse: invalid syntax")

	// ErrDivisionByZero is returned when a literal denominator evaluates
	// to zero. It is deliberately distinct from ErrInvalidSyntax: the text
	// is grammatically valid but names an undefined value.
	ErrDivisionByZero = errors.New("parse: division by zero")
)
