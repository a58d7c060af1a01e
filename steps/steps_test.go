// SPDX-License-Identifier: Apache-2.0
// Package steps_test contains unit tests for the trace recorder.
package steps_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kiwisolve/numkit/steps"
)

func TestNilTraceIsNoOp(t *testing.T) {
	t.Parallel()

	var tr *steps.Trace
	tr.Begin("op")
	tr.Add("step", map[string]any{"k": 1})
	tr.End(nil)
	tr.Clear()

	require.Nil(t, tr.ToList())
	require.Zero(t, tr.Len())
}

func TestOrderingAndSeq(t *testing.T) {
	t.Parallel()

	tr := steps.New()
	tr.Begin("multiply")
	tr.Add("left operand", map[string]any{"rows": 2})
	tr.Add("right operand", map[string]any{"rows": 2})
	tr.End(map[string]any{"ok": true})

	got := tr.ToList()
	require.Len(t, got, 4)

	wantStages := []steps.Stage{steps.Begin, steps.Step, steps.Step, steps.End}
	for i, e := range got {
		require.Equal(t, i, e.Seq)
		require.Equal(t, wantStages[i], e.Stage)
		require.Equal(t, "multiply", e.Op)
		require.NotNil(t, e.State)
	}
	require.Equal(t, "left operand", got[1].Msg)
	require.Equal(t, true, got[3].State["ok"])
}

func TestImplicitBegin(t *testing.T) {
	t.Parallel()

	tr := steps.New()
	tr.Add("no begin before me", nil)

	got := tr.ToList()
	require.Len(t, got, 2)
	require.Equal(t, steps.Begin, got[0].Stage)
	require.Equal(t, "implicit begin", got[0].Msg)
	require.Equal(t, "unnamed", got[0].Op)
	require.Equal(t, steps.Step, got[1].Stage)
}

func TestImplicitEnd(t *testing.T) {
	t.Parallel()

	tr := steps.New()
	tr.Begin("first")
	tr.Begin("second")

	got := tr.ToList()
	require.Len(t, got, 3)
	require.Equal(t, steps.End, got[1].Stage)
	require.Equal(t, "implicit end", got[1].Msg)
	require.Equal(t, "first", got[1].Op)
	require.Equal(t, "second", got[2].Op)
}

func TestEndWithoutOpenDoesNothing(t *testing.T) {
	t.Parallel()

	tr := steps.New()
	tr.End(map[string]any{"ok": true})
	require.Zero(t, tr.Len())

	tr.Begin("op")
	tr.End(nil)
	tr.End(nil)
	require.Equal(t, 2, tr.Len())
}

func TestToListIsACopy(t *testing.T) {
	t.Parallel()

	tr := steps.New()
	tr.Begin("op")
	tr.End(nil)

	got := tr.ToList()
	got[0].Msg = "mutated"

	require.Equal(t, "begin", tr.ToList()[0].Msg)
}

func TestClear(t *testing.T) {
	t.Parallel()

	tr := steps.New()
	tr.Begin("op")
	tr.Add("x", nil)
	tr.Clear()
	require.Zero(t, tr.Len())

	// A cleared trace starts fresh: Add opens a new anonymous operation.
	tr.Add("y", nil)
	got := tr.ToList()
	require.Len(t, got, 2)
	require.Equal(t, "implicit begin", got[0].Msg)
	require.Zero(t, got[0].Seq)
}

func TestStageString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "begin", steps.Begin.String())
	require.Equal(t, "step", steps.Step.String())
	require.Equal(t, "end", steps.End.String())
	require.Equal(t, "stage(?)", steps.Stage(9).String())
}
