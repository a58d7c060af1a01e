// Package matrix offers pure construction and manipulation primitives
// over mode-consistent numbers: the building blocks that elimination,
// inversion and solver routines are later assembled from.
//
// 🚀 What's inside?
//
//	  • Constructors: Zeros, Identity, Copy — mode-zero / mode-one
//	    entries drawn from the active numeric.Policy
//	  • Augmentation: Augment ([A|B]) and its inverse SplitAugmented
//	  • Elementary row operations: SwapRows, ScaleRow, AddScaledRow —
//	    each bounds-checked and self-inverse in the usual algebraic sense
//	  • Pivot search: FindPivotRow, strictly first-qualifying-row
//
// ✨ Key properties:
//   - Pure: every function returns a new Matrix (or pair); arguments are
//     never mutated, so a caller can keep any intermediate state for a
//     pedagogical trace.
//   - Mode-agnostic arithmetic: entries combine through the numeric
//     package's closed union, so exact stays exact and tolerant stays
//     tolerant; mixing panics there, not here.
//   - No magnitude pivoting: FindPivotRow returns the smallest row index
//     whose entry is not mode-zero. Partial pivoting would be better
//     numerics but worse pedagogy; the simple rule is intentional and
//     must be preserved by callers.
//
// ⚙️ Usage:
//
//	I, _ := matrix.Identity(pol, 3)
//	aug, _ := matrix.Augment(a, rhs)
//	r, _ := matrix.FindPivotRow(pol, aug, 0, 0)
//
// Shape violations surface as validate.ErrShape, index violations as
// ErrIndex; both carry the offending dimensions.
package matrix
