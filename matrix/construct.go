// SPDX-License-Identifier: MIT
// Package matrix: constructors and augmentation transforms.
// All functions are pure: they allocate fresh row slices and never alias
// or mutate their arguments. Numbers themselves are immutable values, so
// sharing entries between input and output is safe.

package matrix

import (
	"fmt"

	"github.com/kiwisolve/numkit/numeric"
	"github.com/kiwisolve/numkit/validate"
)

// Zeros creates a rows×cols matrix of mode-zero entries.
//
// Stage 1 (Validate): rows and cols must be ≥ 1.
// Stage 2 (Allocate): fill with pol.Zero().
// Complexity: O(rows·cols).
func Zeros(pol *numeric.Policy, rows, cols int) (numeric.Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Zeros: dimensions %d×%d must be ≥ 1: %w", rows, cols, ErrShape)
	}
	zero := pol.Zero()
	out := make(numeric.Matrix, rows)
	for i := range out {
		row := make(numeric.Vector, cols)
		for j := range row {
			row[j] = zero
		}
		out[i] = row
	}

	return out, nil
}

// Identity creates the n×n identity matrix with mode-one diagonal
// entries. Complexity: O(n²).
func Identity(pol *numeric.Policy, n int) (numeric.Matrix, error) {
	out, err := Zeros(pol, n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	one := pol.One()
	for i := 0; i < n; i++ {
		out[i][i] = one
	}

	return out, nil
}

// Copy returns a deep value copy of m: fresh outer and row slices.
// The input must be rectangular. Complexity: O(rows·cols).
func Copy(m numeric.Matrix) (numeric.Matrix, error) {
	if err := validate.Rectangular(m); err != nil {
		return nil, fmt.Errorf("Copy: %w", err)
	}
	out := make(numeric.Matrix, len(m))
	for i, row := range m {
		out[i] = append(numeric.Vector(nil), row...)
	}

	return out, nil
}

// Augment concatenates a and b horizontally into [a | b].
// Both must be rectangular with equal row counts.
func Augment(a, b numeric.Matrix) (numeric.Matrix, error) {
	if err := validate.Rectangular(a); err != nil {
		return nil, fmt.Errorf("Augment: left: %w", err)
	}
	if err := validate.Rectangular(b); err != nil {
		return nil, fmt.Errorf("Augment: right: %w", err)
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("Augment: row counts differ (%d vs %d): %w", len(a), len(b), ErrShape)
	}
	out := make(numeric.Matrix, len(a))
	for i := range a {
		row := make(numeric.Vector, 0, len(a[i])+len(b[i]))
		row = append(row, a[i]...)
		row = append(row, b[i]...)
		out[i] = row
	}

	return out, nil
}

// SplitAugmented is the inverse of Augment at column n: the first n
// columns form the left block, the rest the right. n may be anywhere in
// the inclusive range [0, columns(m)]; an empty side is legal, and
// anything outside that range is an ErrIndex.
func SplitAugmented(m numeric.Matrix, n int) (numeric.Matrix, numeric.Matrix, error) {
	if err := validate.Rectangular(m); err != nil {
		return nil, nil, fmt.Errorf("SplitAugmented: %w", err)
	}
	cols := 0
	if len(m) > 0 {
		cols = len(m[0])
	}
	if n < 0 || n > cols {
		return nil, nil, fmt.Errorf("SplitAugmented: column %d outside [0, %d]: %w", n, cols, ErrIndex)
	}
	left := make(numeric.Matrix, len(m))
	right := make(numeric.Matrix, len(m))
	for i, row := range m {
		left[i] = append(numeric.Vector(nil), row[:n]...)
		right[i] = append(numeric.Vector(nil), row[n:]...)
	}

	return left, right, nil
}
