// SPDX-License-Identifier: Apache-2.0
// Package numeric_test contains unit tests for the Policy.
package numeric_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kiwisolve/numkit/numeric"
	"github.com/kiwisolve/numkit/parse"
)

func mustScalar(t *testing.T, text string) parse.Literal {
	t.Helper()
	lit, err := parse.Scalar(text)
	require.NoError(t, err)

	return lit
}

func TestNewPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mode    numeric.Mode
		opts    []numeric.Option
		wantErr bool
	}{
		{"exact defaults", numeric.Exact, nil, false},
		{"tolerant defaults", numeric.Tolerant, nil, false},
		{"tolerant configured", numeric.Tolerant,
			[]numeric.Option{numeric.WithDecimals(4), numeric.WithTolerance(1e-9)}, false},
		{"unknown mode", numeric.Mode(99), nil, true},
		{"zero tolerance", numeric.Tolerant, []numeric.Option{numeric.WithTolerance(0)}, true},
		{"negative tolerance", numeric.Tolerant, []numeric.Option{numeric.WithTolerance(-1e-9)}, true},
		{"negative decimals", numeric.Tolerant, []numeric.Option{numeric.WithDecimals(-1)}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pol, err := numeric.NewPolicy(tc.mode, tc.opts...)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, numeric.ErrInvalidConfiguration))

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.mode, pol.Mode())
		})
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"exact", "fraction", "Exact", " FRACTION "} {
		m, err := numeric.ParseMode(s)
		require.NoError(t, err)
		require.Equal(t, numeric.Exact, m)
	}
	for _, s := range []string{"tolerant", "float"} {
		m, err := numeric.ParseMode(s)
		require.NoError(t, err)
		require.Equal(t, numeric.Tolerant, m)
	}
	_, err := numeric.ParseMode("decimal")
	require.True(t, errors.Is(err, numeric.ErrInvalidConfiguration))
}

// TestToNumber_Exact pins the decimal-text reconstruction rule: exact
// mode rebuilds rationals from what the user wrote, not from float bits.
func TestToNumber_Exact(t *testing.T) {
	t.Parallel()

	pol := numeric.Default()

	tests := []struct {
		in  string
		rat string
	}{
		{"2", "2"},
		{"6/4", "3/2"},
		{"3.14", "157/50"}, // not the binary expansion of float64(3.14)
		{"1e-3", "1/1000"},
		{"-0.5", "-1/2"},
	}
	for _, tc := range tests {
		n, err := pol.ToNumber(mustScalar(t, tc.in))
		require.NoError(t, err)
		require.Equal(t, numeric.KindRational, n.Kind())
		require.Equal(t, tc.rat, n.Rat().RatString())
	}

	_, err := pol.ToNumber(parse.Literal{})
	require.True(t, errors.Is(err, numeric.ErrUnsupportedType))
}

// TestToNumber_Tolerant pins float conversion with configured rounding.
func TestToNumber_Tolerant(t *testing.T) {
	t.Parallel()

	pol, err := numeric.NewPolicy(numeric.Tolerant, numeric.WithDecimals(4))
	require.NoError(t, err)

	n, err := pol.ToNumber(mustScalar(t, "1/3"))
	require.NoError(t, err)
	require.Equal(t, numeric.KindFloat, n.Kind())
	require.Equal(t, 0.3333, n.Float64())

	n, err = pol.ToNumber(mustScalar(t, "2.000051"))
	require.NoError(t, err)
	require.Equal(t, 2.0001, n.Float64())
}

func TestToMatrix(t *testing.T) {
	t.Parallel()

	pol := numeric.Default()
	rows, err := parse.Matrix("[[1,2],[3]]")
	require.NoError(t, err)

	// Ragged input converts fine: rectangularity is not this layer's rule.
	m, err := pol.ToMatrix(rows)
	require.NoError(t, err)
	require.Len(t, m, 2)
	require.Len(t, m[0], 2)
	require.Len(t, m[1], 1)
	require.Equal(t, "3", m[1][0].String())
}

func TestEqualExact(t *testing.T) {
	t.Parallel()

	pol := numeric.Default()
	a, _ := numeric.FromFrac(6, 4)
	b, _ := numeric.FromFrac(3, 2)
	c, _ := numeric.FromFrac(2, 3)

	require.True(t, pol.Equal(a, b))
	require.False(t, pol.Equal(a, c))
	require.True(t, pol.IsZero(numeric.FromInt(0)))
	require.False(t, pol.IsZero(a))
	require.True(t, pol.IsOne(numeric.FromInt(1)))
}

// TestEqualTolerant mirrors the classic 0.1+0.2 scenario: equality
// within tolerance, inequality beyond it.
func TestEqualTolerant(t *testing.T) {
	t.Parallel()

	pol, err := numeric.NewPolicy(numeric.Tolerant,
		numeric.WithDecimals(4), numeric.WithTolerance(1e-9))
	require.NoError(t, err)

	require.True(t, pol.Equal(numeric.FromFloat(0.1+0.2), numeric.FromFloat(0.3)))
	require.False(t, pol.Equal(numeric.FromFloat(0.1), numeric.FromFloat(0.2)))
	require.True(t, pol.IsZero(numeric.FromFloat(1e-12)))
	require.False(t, pol.IsZero(numeric.FromFloat(1e-6)))
	require.True(t, pol.IsOne(numeric.FromFloat(1+1e-12)))
}

// TestEqualModeMismatchPanics pins the other half of fail-fast mixing:
// a Number that contradicts the policy's mode is a programmer error.
func TestEqualModeMismatchPanics(t *testing.T) {
	t.Parallel()

	exact := numeric.Default()
	require.Panics(t, func() { exact.Equal(numeric.FromFloat(1), numeric.FromFloat(1)) })
	require.Panics(t, func() { exact.IsZero(numeric.Number{}) })

	tol, err := numeric.NewPolicy(numeric.Tolerant)
	require.NoError(t, err)
	require.Panics(t, func() { tol.Equal(numeric.FromInt(1), numeric.FromInt(1)) })
}

// TestPolicyZeroOne checks mode-consistent constants.
func TestPolicyZeroOne(t *testing.T) {
	t.Parallel()

	require.Equal(t, numeric.KindRational, numeric.Default().Zero().Kind())
	require.Equal(t, numeric.KindRational, numeric.Default().One().Kind())

	tol, err := numeric.NewPolicy(numeric.Tolerant)
	require.NoError(t, err)
	require.Equal(t, numeric.KindFloat, tol.Zero().Kind())
	require.Equal(t, 1.0, tol.One().Float64())
}
