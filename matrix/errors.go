// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Shape violations reuse the validate package's sentinel so that a
// caller can match every structural failure in the pipeline with one
// errors.Is target; only the index-bounds condition is owned here.

package matrix

import (
	"errors"

	"github.com/kiwisolve/numkit/validate"
)

// ErrIndex indicates that a row or column index is outside the valid
// bounds of the matrix it was applied to.
var ErrIndex = errors.New("matrix: index out of range")

// ErrShape aliases validate.ErrShape: constructors and Augment report
// structural violations with the same sentinel the validators use.
var ErrShape = validate.ErrShape

// NoPivot is the not-found sentinel returned by FindPivotRow when no row
// at or below the start row has a non-mode-zero entry in the column.
const NoPivot = -1
