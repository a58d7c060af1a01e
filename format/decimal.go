// SPDX-License-Identifier: MIT
// Package format: exact decimal machinery.
// A reduced fraction p/q has a finite decimal expansion iff q's prime
// factors are only 2 and 5; decimalString exploits that indirectly by
// rounding at the decimal cap with integer arithmetic, which is exact
// for finite expansions shorter than the cap and a true decimal half-up
// rounding for everything else.

package format

import (
	"math/big"
	"strconv"
	"strings"
)

var (
	two  = big.NewInt(2)
	five = big.NewInt(5)
	ten  = big.NewInt(10)
)

// finiteDecimal reports whether r (always reduced) has a finite decimal
// expansion: its denominator is of the form 2ᵃ·5ᵇ.
func finiteDecimal(r *big.Rat) bool {
	q := new(big.Int).Set(r.Denom())
	rem := new(big.Int)
	for {
		if quo, m := new(big.Int).QuoRem(q, two, rem); m.Sign() == 0 {
			q = quo
			continue
		}
		break
	}
	for {
		if quo, m := new(big.Int).QuoRem(q, five, rem); m.Sign() == 0 {
			q = quo
			continue
		}
		break
	}

	return q.Cmp(big.NewInt(1)) == 0
}

// decimalString renders r as a decimal with at most `decimals`
// fractional digits, rounding half away from zero and trimming trailing
// zeros (and a bare trailing point). The result never reads "-0".
func decimalString(r *big.Rat, decimals int) string {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom() // big.Rat invariant: den > 0

	// Scale to `decimals` fractional digits and round half-up.
	pow := new(big.Int).Exp(ten, big.NewInt(int64(decimals)), nil)
	scaled := new(big.Int).Mul(num, pow)
	quo, rem := new(big.Int).QuoRem(scaled, den, new(big.Int))
	if new(big.Int).Lsh(rem, 1).Cmp(den) >= 0 {
		quo.Add(quo, big.NewInt(1))
	}

	digits := quo.String()
	var body string
	if decimals == 0 {
		body = digits
	} else {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		intPart := digits[:len(digits)-decimals]
		fracPart := strings.TrimRight(digits[len(digits)-decimals:], "0")
		body = intPart
		if fracPart != "" {
			body += "." + fracPart
		}
	}
	if r.Sign() < 0 && body != "0" {
		body = "-" + body
	}

	return body
}

// floatRat reconstructs an exact rational from the shortest decimal text
// of a finite float64 — the same decimal-intent rule the parse package
// applies to computed reals.
func floatRat(f float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		// Unreachable for finite f; callers validate finiteness first.
		panic("format: floatRat: non-finite input")
	}

	return r
}
