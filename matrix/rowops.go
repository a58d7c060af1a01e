// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations and pivot search.
// Row operations are the vocabulary of gaussian-style elimination; each
// returns a new matrix, is bounds-checked, and is self-inverse in the
// usual algebraic sense (swap twice, scale by c then 1/c).

package matrix

import (
	"fmt"

	"github.com/kiwisolve/numkit/numeric"
	"github.com/kiwisolve/numkit/validate"
)

// SwapRows returns m with rows i and j exchanged.
func SwapRows(m numeric.Matrix, i, j int) (numeric.Matrix, error) {
	out, err := Copy(m)
	if err != nil {
		return nil, fmt.Errorf("SwapRows: %w", err)
	}
	if err = rowBounds(m, "SwapRows", i, j); err != nil {
		return nil, err
	}
	out[i], out[j] = out[j], out[i]

	return out, nil
}

// ScaleRow returns m with row i scaled by c: Rᵢ ← c·Rᵢ.
// c must carry the same representation as the entries (see numeric).
func ScaleRow(m numeric.Matrix, i int, c numeric.Number) (numeric.Matrix, error) {
	out, err := Copy(m)
	if err != nil {
		return nil, fmt.Errorf("ScaleRow: %w", err)
	}
	if err = rowBounds(m, "ScaleRow", i); err != nil {
		return nil, err
	}
	for k, x := range out[i] {
		out[i][k] = c.Mul(x)
	}

	return out, nil
}

// AddScaledRow returns m with row j's multiple added into row i:
// Rᵢ ← Rᵢ + c·Rⱼ. i == j is legal (it scales row i by 1+c).
func AddScaledRow(m numeric.Matrix, i, j int, c numeric.Number) (numeric.Matrix, error) {
	out, err := Copy(m)
	if err != nil {
		return nil, fmt.Errorf("AddScaledRow: %w", err)
	}
	if err = rowBounds(m, "AddScaledRow", i, j); err != nil {
		return nil, err
	}
	src := m[j]
	for k, x := range out[i] {
		out[i][k] = x.Add(c.Mul(src[k]))
	}

	return out, nil
}

// FindPivotRow returns the smallest row index ≥ startRow whose entry in
// the given column is not mode-zero under pol, or NoPivot when no such
// row exists.
//
// The tie-break is strictly "first qualifying row": no magnitude-based
// partial pivoting. Traces built on top of it match what a student
// working by hand would pick.
func FindPivotRow(pol *numeric.Policy, m numeric.Matrix, col, startRow int) (int, error) {
	if err := validate.Rectangular(m); err != nil {
		return NoPivot, fmt.Errorf("FindPivotRow: %w", err)
	}
	if len(m) == 0 {
		return NoPivot, fmt.Errorf("FindPivotRow: empty matrix: %w", ErrShape)
	}
	if col < 0 || col >= len(m[0]) {
		return NoPivot, fmt.Errorf("FindPivotRow: column %d outside [0, %d): %w", col, len(m[0]), ErrIndex)
	}
	if startRow < 0 || startRow >= len(m) {
		return NoPivot, fmt.Errorf("FindPivotRow: start row %d outside [0, %d): %w", startRow, len(m), ErrIndex)
	}
	for r := startRow; r < len(m); r++ {
		if !pol.IsZero(m[r][col]) {
			return r, nil
		}
	}

	return NoPivot, nil
}

// rowBounds checks every index against the row count of m.
func rowBounds(m numeric.Matrix, tag string, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= len(m) {
			return fmt.Errorf("%s: row %d outside [0, %d): %w", tag, i, len(m), ErrIndex)
		}
	}

	return nil
}
