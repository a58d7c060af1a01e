// SPDX-License-Identifier: MIT
// Package algebra: matrix services over the numeric core.

package algebra

import (
	"fmt"

	"github.com/kiwisolve/numkit/format"
	"github.com/kiwisolve/numkit/matrix"
	"github.com/kiwisolve/numkit/numeric"
	"github.com/kiwisolve/numkit/parse"
	"github.com/kiwisolve/numkit/steps"
	"github.com/kiwisolve/numkit/validate"
)

// Result carries a service's raw operands, the computed matrix, and its
// display rendering.
type Result struct {
	Left      numeric.Matrix
	Right     numeric.Matrix
	Out       numeric.Matrix
	Formatted [][]string
}

// Multiply parses two matrix texts, validates the product precondition,
// computes A·B and renders it in Auto style.
func Multiply(pol *numeric.Policy, textA, textB string, tr *steps.Trace) (*Result, error) {
	tr.Begin("multiply")

	a, b, err := operands(pol, textA, textB, tr)
	if err != nil {
		return nil, fail(tr, fmt.Errorf("Multiply: %w", err))
	}
	if err = validate.Multipliable(a, b); err != nil {
		return nil, fail(tr, fmt.Errorf("Multiply: %w", err))
	}
	tr.Add("validated dimensions", map[string]any{
		"A": []int{len(a), len(a[0])},
		"B": []int{len(b), len(b[0])},
	})

	out, err := matrix.Mul(a, b)
	if err != nil {
		return nil, fail(tr, fmt.Errorf("Multiply: %w", err))
	}
	tr.Add("computed product", nil)

	rendered, err := format.Matrix(out, format.Auto, pol.Decimals())
	if err != nil {
		return nil, fail(tr, fmt.Errorf("Multiply: %w", err))
	}
	tr.End(map[string]any{"ok": true})

	return &Result{Left: a, Right: b, Out: out, Formatted: rendered}, nil
}

// Sum parses two matrix texts, validates shape agreement, computes A+B
// and renders it in the requested style.
func Sum(pol *numeric.Policy, textA, textB string, style format.Style, tr *steps.Trace) (*Result, error) {
	tr.Begin("sum")

	a, b, err := operands(pol, textA, textB, tr)
	if err != nil {
		return nil, fail(tr, fmt.Errorf("Sum: %w", err))
	}

	out, err := matrix.Add(a, b)
	if err != nil {
		return nil, fail(tr, fmt.Errorf("Sum: %w", err))
	}
	tr.Add("computed sum", nil)

	rendered, err := format.Matrix(out, style, pol.Decimals())
	if err != nil {
		return nil, fail(tr, fmt.Errorf("Sum: %w", err))
	}
	tr.End(map[string]any{"ok": true})

	return &Result{Left: a, Right: b, Out: out, Formatted: rendered}, nil
}

// operands runs the shared front half of every service: parse both
// texts, convert under the policy, require rectangular shapes.
func operands(pol *numeric.Policy, textA, textB string, tr *steps.Trace) (numeric.Matrix, numeric.Matrix, error) {
	a, err := operand(pol, textA)
	if err != nil {
		return nil, nil, fmt.Errorf("left operand: %w", err)
	}
	b, err := operand(pol, textB)
	if err != nil {
		return nil, nil, fmt.Errorf("right operand: %w", err)
	}
	tr.Add("parsed operands", nil)

	return a, b, nil
}

func operand(pol *numeric.Policy, text string) (numeric.Matrix, error) {
	raw, err := parse.Matrix(text)
	if err != nil {
		return nil, err
	}
	m, err := pol.ToMatrix(raw)
	if err != nil {
		return nil, err
	}
	if err = validate.Rectangular(m); err != nil {
		return nil, err
	}

	return m, nil
}

// fail records the failure in the trace (when present) and hands the
// error back unchanged.
func fail(tr *steps.Trace, err error) error {
	tr.Add("error", map[string]any{"message": err.Error()})
	tr.End(map[string]any{"ok": false})

	return err
}
