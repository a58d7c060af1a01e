// SPDX-License-Identifier: MIT
// Package validate: the canonical source of truth for precondition checks.
//
// Purpose:
//   - Keep algorithm packages minimal by delegating shape/range guards here.
//   - Return wrapped sentinel errors so call sites can match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; Rectangular is O(rows), the
//     rest are O(1) on top of it.
//
// Note:
//   - Each composite validator follows a fixed sequence (Rectangular
//     first, then the specific rule), so the first reported violation is
//     always the most fundamental one.

package validate

import (
	"errors"
	"fmt"

	"github.com/kiwisolve/numkit/numeric"
)

var (
	// ErrShape is returned when a matrix violates a structural rule:
	// ragged rows, non-square where square is required, incompatible
	// product dimensions, or an impossible augmentation split.
	ErrShape = errors.New("validate: shape violation")

	// ErrRange is returned when a numeric range rule is violated:
	// a degenerate interval or a missing sign change.
	ErrRange = errors.New("validate: range violation")
)

// Rectangular ensures all rows of m have equal length. The empty matrix
// is trivially rectangular.
func Rectangular(m numeric.Matrix) error {
	if len(m) == 0 {
		return nil
	}
	want := len(m[0])
	for i, row := range m {
		if len(row) != want {
			return fmt.Errorf("Rectangular: row %d has %d columns, row 0 has %d: %w", i, len(row), want, ErrShape)
		}
	}

	return nil
}

// Square ensures m is rectangular, non-empty and has rows == columns.
func Square(m numeric.Matrix) error {
	if err := Rectangular(m); err != nil {
		return fmt.Errorf("Square: %w", err)
	}
	if len(m) == 0 {
		return fmt.Errorf("Square: empty matrix: %w", ErrShape)
	}
	if rows, cols := len(m), len(m[0]); rows != cols {
		return fmt.Errorf("Square: %d×%d is not square: %w", rows, cols, ErrShape)
	}

	return nil
}

// Multipliable ensures the product a·b is defined: both rectangular,
// non-empty, and columns(a) == rows(b).
func Multipliable(a, b numeric.Matrix) error {
	if err := Rectangular(a); err != nil {
		return fmt.Errorf("Multipliable: left: %w", err)
	}
	if err := Rectangular(b); err != nil {
		return fmt.Errorf("Multipliable: right: %w", err)
	}
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("Multipliable: empty operand: %w", ErrShape)
	}
	if cols, rows := len(a[0]), len(b); cols != rows {
		return fmt.Errorf("Multipliable: columns(A)=%d, rows(B)=%d: %w", cols, rows, ErrShape)
	}

	return nil
}

// Augmented ensures m can be read as an augmented matrix split after
// column n: rectangular, non-empty, 1 ≤ n, and at least one column on
// the right of the split (columns ≥ n+1).
func Augmented(m numeric.Matrix, n int) error {
	if err := Rectangular(m); err != nil {
		return fmt.Errorf("Augmented: %w", err)
	}
	if len(m) == 0 {
		return fmt.Errorf("Augmented: empty matrix: %w", ErrShape)
	}
	cols := len(m[0])
	if n < 1 || n+1 > cols {
		return fmt.Errorf("Augmented: split column %d with %d columns (want 1 ≤ n ≤ %d): %w",
			n, cols, cols-1, ErrShape)
	}

	return nil
}

// Interval ensures a < b, defining a non-degenerate open interval.
// Both endpoints must share the active representation; comparing mixed
// kinds is a programmer error (see the numeric package).
func Interval(a, b numeric.Number) error {
	if a.Cmp(b) >= 0 {
		return fmt.Errorf("Interval: %s is not below %s: %w", a, b, ErrRange)
	}

	return nil
}

// SignChange ensures fa and fb have strictly opposite signs — the
// bracket precondition of bisection-style methods. A zero at either
// endpoint fails: a root on the boundary is not a sign change.
func SignChange(fa, fb numeric.Number) error {
	sa, sb := fa.Sign(), fb.Sign()
	if sa == 0 || sb == 0 {
		return fmt.Errorf("SignChange: zero endpoint (f(a)=%s, f(b)=%s): %w", fa, fb, ErrRange)
	}
	if sa == sb {
		return fmt.Errorf("SignChange: same sign at both endpoints (f(a)=%s, f(b)=%s): %w", fa, fb, ErrRange)
	}

	return nil
}
