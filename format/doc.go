// Package format renders mode numbers and matrices as display strings.
//
// Three styles:
//
//   - Auto     — a finite decimal with trailing zeros trimmed when the
//     value has a finite decimal expansion (reduced denominator with
//     prime factors ⊆ {2,5} for rationals; always for floats), and the
//     reduced fraction a/b otherwise.
//   - Fraction — always a/b, or a bare integer when the denominator is 1.
//   - Float    — a fixed-point decimal capped at the configured decimal
//     count, half-up rounded, trailing zeros trimmed.
//
// Decimal output is computed over exact rationals (floats re-enter
// through their shortest decimal text), so rounding is true decimal
// half-up, never binary: format never introduces artifacts the number
// itself does not have.
//
// The invalid (zero) Number fails with ErrUnsupportedType; an unknown
// style or negative decimal count fails with ErrInvalidConfiguration.
package format
