// SPDX-License-Identifier: MIT

// Package numeric: mode enumeration and documented defaults.
// The defaults below are the single source of truth for zero-value
// behavior; Default() and NewPolicy MUST stay in sync with them.

package numeric

import (
	"fmt"
	"strings"
)

// Mode selects the numeric representation for one Policy.
type Mode uint8

const (
	// Exact represents values as arbitrary-precision rationals.
	// No rounding, structural equality. This is the default mode.
	Exact Mode = iota

	// Tolerant represents values as float64, rounded to a configured
	// decimal count on conversion and compared within a configured
	// tolerance.
	Tolerant
)

// String returns a stable name for the mode.
func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Tolerant:
		return "tolerant"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// DEFAULTS — single source of truth.
const (
	// DefaultDecimals is the rounding width applied when converting a
	// literal in Tolerant mode, and the display cap used by formatting.
	DefaultDecimals = 6

	// DefaultTolerance is the Tolerant-mode equality tolerance.
	DefaultTolerance = 1e-9
)

// ParseMode maps a configuration string onto a Mode. Both the canonical
// names and the historical spellings are accepted: "exact"/"fraction"
// select Exact, "tolerant"/"float" select Tolerant. Anything else is an
// InvalidConfiguration.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "fraction":
		return Exact, nil
	case "tolerant", "float":
		return Tolerant, nil
	default:
		return Exact, fmt.Errorf("ParseMode: unknown mode %q (want exact|fraction|tolerant|float): %w",
			s, ErrInvalidConfiguration)
	}
}
