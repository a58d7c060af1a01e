// SPDX-License-Identifier: MIT
// Package matrix: whole-matrix operations built on the same primitives
// the row operations use. Mul is the textbook cubic product and Add the
// elementwise sum; traces built on top of them read like hand
// computation.

package matrix

import (
	"fmt"

	"github.com/kiwisolve/numkit/numeric"
	"github.com/kiwisolve/numkit/validate"
)

// Mul returns the matrix product a·b.
//
// Stage 1 (Validate): Multipliable (rectangular, non-empty, inner
// dimensions agree).
// Stage 2 (Execute): textbook triple loop; the accumulator starts from
// the first term so no policy value is needed here.
// Complexity: O(rows(a)·cols(b)·cols(a)).
func Mul(a, b numeric.Matrix) (numeric.Matrix, error) {
	if err := validate.Multipliable(a, b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	rows, inner, cols := len(a), len(a[0]), len(b[0])
	out := make(numeric.Matrix, rows)
	for i := 0; i < rows; i++ {
		row := make(numeric.Vector, cols)
		for j := 0; j < cols; j++ {
			acc := a[i][0].Mul(b[0][j])
			for k := 1; k < inner; k++ {
				acc = acc.Add(a[i][k].Mul(b[k][j]))
			}
			row[j] = acc
		}
		out[i] = row
	}

	return out, nil
}

// Add returns the elementwise sum a + b; both operands must be
// rectangular, non-empty and of identical shape.
func Add(a, b numeric.Matrix) (numeric.Matrix, error) {
	if err := validate.Rectangular(a); err != nil {
		return nil, fmt.Errorf("Add: left: %w", err)
	}
	if err := validate.Rectangular(b); err != nil {
		return nil, fmt.Errorf("Add: right: %w", err)
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("Add: empty operand: %w", ErrShape)
	}
	if len(a) != len(b) || len(a[0]) != len(b[0]) {
		return nil, fmt.Errorf("Add: shapes %d×%d and %d×%d differ: %w",
			len(a), len(a[0]), len(b), len(b[0]), ErrShape)
	}
	out := make(numeric.Matrix, len(a))
	for i := range a {
		row := make(numeric.Vector, len(a[i]))
		for j := range a[i] {
			row[j] = a[i][j].Add(b[i][j])
		}
		out[i] = row
	}

	return out, nil
}

// Equal reports whether a and b have identical shape and policy-equal
// entries. Shape comparison precedes any numeric comparison, so matrices
// of different dimensions are simply unequal, never an error.
func Equal(pol *numeric.Policy, a, b numeric.Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !pol.Equal(a[i][j], b[i][j]) {
				return false
			}
		}
	}

	return true
}
