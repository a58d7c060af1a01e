// SPDX-License-Identifier: Apache-2.0
// Package parse_test contains unit tests for the restricted parser.
package parse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kiwisolve/numkit/parse"
)

// TestScalar_Valid walks the accepted grammar: integers, decimals,
// scientific notation, fractions, powers, sqrt, grouping, unary minus.
// Expected values are stated as exact rational text.
func TestScalar_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		kind parse.Kind
		rat  string
	}{
		{"integer", "42", parse.KindInt, "42"},
		{"negative integer", "-7", parse.KindInt, "-7"},
		{"double negation", "--5", parse.KindInt, "5"},
		{"decimal", "3.14", parse.KindReal, "157/50"},
		{"scientific", "1e-3", parse.KindReal, "1/1000"},
		{"scientific with sign", "2.5e+2", parse.KindReal, "250"},
		{"uppercase exponent", "1E2", parse.KindReal, "100"},
		{"fraction", "1/2", parse.KindFraction, "1/2"},
		{"fraction reduces", "6/4", parse.KindFraction, "3/2"},
		{"negative fraction", "-3/4", parse.KindFraction, "-3/4"},
		{"nested fraction", "(1/2)/(3/4)", parse.KindFraction, "2/3"},
		{"integer power", "2^10", parse.KindInt, "1024"},
		{"fraction power", "(3/2)^(2)", parse.KindFraction, "9/4"},
		{"negative exponent", "2^(-2)", parse.KindFraction, "1/4"},
		{"right associative power", "2^3^2", parse.KindInt, "512"},
		{"fractional exponent base as fraction", "(1/2)^(3/2)", parse.KindReal, ""},
		{"sqrt", "sqrt(4)", parse.KindReal, "2"},
		{"sqrt of fraction", "sqrt(1/4)", parse.KindReal, "1/2"},
		{"sqrt nested", "sqrt(sqrt(16))", parse.KindReal, "2"},
		{"grouping", "((5))", parse.KindInt, "5"},
		{"whitespace around tokens", "  ( 3 / 2 ) ^ ( 2 )  ", parse.KindFraction, "9/4"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lit, err := parse.Scalar(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.kind, lit.Kind())
			if tc.rat != "" {
				require.Equal(t, tc.rat, lit.Rat().RatString())
			}
		})
	}
}

// TestScalar_Errors covers every rejection class of the grammar: each
// failure must match the right sentinel via errors.Is.
func TestScalar_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", parse.ErrInvalidSyntax},
		{"blank", "   ", parse.ErrInvalidSyntax},
		{"binary plus", "1+2", parse.ErrInvalidSyntax},
		{"binary minus", "3-1", parse.ErrInvalidSyntax},
		{"variable", "x", parse.ErrInvalidSyntax},
		{"arbitrary call", "sin(1)", parse.ErrInvalidSyntax},
		{"unbalanced open", "(1/2", parse.ErrInvalidSyntax},
		{"unbalanced close", "1/2)", parse.ErrInvalidSyntax},
		{"trailing input", "3 4", parse.ErrInvalidSyntax},
		{"bare dot", ".5", parse.ErrInvalidSyntax},
		{"trailing dot", "5.", parse.ErrInvalidSyntax},
		{"bare exponent marker", "1e", parse.ErrInvalidSyntax},
		{"exponent without digits", "1e+", parse.ErrInvalidSyntax},
		{"whitespace splits token", "sq rt(4)", parse.ErrInvalidSyntax},
		{"sqrt of negative", "sqrt(-1)", parse.ErrInvalidSyntax},
		{"fractional power of negative base", "(-2)^(1/2)", parse.ErrInvalidSyntax},
		{"zero denominator", "1/0", parse.ErrDivisionByZero},
		{"zero denominator nested", "1/(2^0 - 1)", parse.ErrInvalidSyntax},
		{"zero denominator via power", "0^(-1)", parse.ErrDivisionByZero},
		{"huge exponent", "2^99999999999", parse.ErrInvalidSyntax},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parse.Scalar(tc.in)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestScalar_DivisionByZeroIsNotSyntax pins the taxonomy split: a zero
// denominator is grammatically fine and must NOT match ErrInvalidSyntax.
func TestScalar_DivisionByZeroIsNotSyntax(t *testing.T) {
	t.Parallel()

	_, err := parse.Scalar("3/0")
	require.Error(t, err)
	require.True(t, errors.Is(err, parse.ErrDivisionByZero))
	require.False(t, errors.Is(err, parse.ErrInvalidSyntax))
}

func TestVector(t *testing.T) {
	t.Parallel()

	t.Run("mixed elements", func(t *testing.T) {
		t.Parallel()

		vec, err := parse.Vector("[1/2, -3, 0.25]")
		require.NoError(t, err)
		require.Len(t, vec, 3)
		require.Equal(t, "1/2", vec[0].Rat().RatString())
		require.Equal(t, "-3", vec[1].Rat().RatString())
		require.Equal(t, "1/4", vec[2].Rat().RatString())
	})

	t.Run("level-0 commas only", func(t *testing.T) {
		t.Parallel()

		// The comma-free fields contain parens; no spurious split.
		vec, err := parse.Vector("[(1/2)^(2), sqrt(9)]")
		require.NoError(t, err)
		require.Len(t, vec, 2)
		require.Equal(t, "1/4", vec[0].Rat().RatString())
		require.Equal(t, "3", vec[1].Rat().RatString())
	})

	t.Run("empty vector", func(t *testing.T) {
		t.Parallel()

		vec, err := parse.Vector("[]")
		require.NoError(t, err)
		require.Empty(t, vec)
	})

	tests := []struct {
		name string
		in   string
	}{
		{"missing brackets", "1, 2, 3"},
		{"empty element", "[1,,2]"},
		{"empty input", "  "},
		{"invalid element", "[1, x]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parse.Vector(tc.in)
			require.Error(t, err)
			require.True(t, errors.Is(err, parse.ErrInvalidSyntax))
		})
	}
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	t.Run("two by two", func(t *testing.T) {
		t.Parallel()

		rows, err := parse.Matrix("[[1,2],[3,4]]")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "2", rows[0][1].Rat().RatString())
		require.Equal(t, "3", rows[1][0].Rat().RatString())
	})

	t.Run("ragged rows allowed here", func(t *testing.T) {
		t.Parallel()

		// Rectangularity is the validate package's concern, not parsing's.
		rows, err := parse.Matrix("[[1,2,3],[4]]")
		require.NoError(t, err)
		require.Len(t, rows[0], 3)
		require.Len(t, rows[1], 1)
	})

	t.Run("empty matrix", func(t *testing.T) {
		t.Parallel()

		rows, err := parse.Matrix("[]")
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("unbracketed row", func(t *testing.T) {
		t.Parallel()

		_, err := parse.Matrix("[[1,2], 3]")
		require.Error(t, err)
		require.True(t, errors.Is(err, parse.ErrInvalidSyntax))
	})
}

// TestConstructors covers the direct Literal constructors used by
// callers that skip text entirely.
func TestConstructors(t *testing.T) {
	t.Parallel()

	lit := parse.NewInt(-9)
	require.Equal(t, parse.KindInt, lit.Kind())
	require.Equal(t, "-9", lit.Rat().RatString())

	frac, err := parse.NewFraction(6, 4)
	require.NoError(t, err)
	require.Equal(t, "3/2", frac.Rat().RatString())

	_, err = parse.NewFraction(1, 0)
	require.True(t, errors.Is(err, parse.ErrDivisionByZero))

	re, err := parse.NewReal(0.5)
	require.NoError(t, err)
	require.Equal(t, "1/2", re.Rat().RatString())
	require.Equal(t, 0.5, re.Float64())

	var invalid parse.Literal
	require.False(t, invalid.IsValid())
	require.Nil(t, invalid.Rat())
}
