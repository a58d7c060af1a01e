// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// User-triggerable failures are sentinels matched via errors.Is; panics
// are reserved for programmer errors (mode mixing, arithmetic on the
// zero Number) and use the stable messages below.

package numeric

import (
	"errors"

	"github.com/kiwisolve/numkit/parse"
)

var (
	// ErrInvalidConfiguration is returned by NewPolicy when the mode is
	// unrecognized, the tolerance is not strictly positive, or the
	// decimal count is negative.
	ErrInvalidConfiguration = errors.New("numeric: invalid configuration")

	// ErrUnsupportedType is returned when a value that is not a valid
	// native literal (or not a valid Number, in the format package)
	// reaches a conversion or rendering entry point.
	ErrUnsupportedType = errors.New("numeric: unsupported value")
)

// ErrDivisionByZero aliases the parse-package sentinel: a zero
// denominator names the same condition whether it appears in source text
// or in a directly constructed fraction, and errors.Is matches both.
var ErrDivisionByZero = parse.ErrDivisionByZero

// Stable panic messages for programmer errors (no magic strings inline).
const (
	panicMixedKinds    = "numeric: mixed rational and float operands"
	panicInvalidNumber = "numeric: operation on invalid Number"
	panicModeMismatch  = "numeric: Number does not match the policy mode"
)
