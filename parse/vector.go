// SPDX-License-Identifier: MIT
// Package parse: vector and matrix splitting.
// Vectors look like [a, b, c]; matrices like [[..],[..],..]. Fields are
// separated by level-0 commas (commas inside parentheses or inner
// brackets never split) and each field is parsed with Scalar.

package parse

import (
	"fmt"
	"strings"
)

// Vector parses [a, b, c] into a slice of native literals.
// An empty body ("[]") yields an empty vector.
func Vector(text string) ([]Literal, error) {
	inner, err := unbracket(text, "vector")
	if err != nil {
		return nil, err
	}
	if inner == "" {
		return []Literal{}, nil
	}

	fields := splitTop(inner)
	out := make([]Literal, 0, len(fields))
	for idx, field := range fields {
		if strings.TrimSpace(field) == "" {
			return nil, fmt.Errorf("Vector: empty element at index %d: %w", idx, ErrInvalidSyntax)
		}
		lit, err := Scalar(field)
		if err != nil {
			return nil, fmt.Errorf("Vector: element %d: %w", idx, err)
		}
		out = append(out, lit)
	}

	return out, nil
}

// Matrix parses [[row],[row],...] into a slice of rows. Rows may differ
// in length here: rectangularity is checked later, by the validate
// package, so that shape feedback names the exact violation.
func Matrix(text string) ([][]Literal, error) {
	inner, err := unbracket(text, "matrix")
	if err != nil {
		return nil, err
	}
	if inner == "" {
		return [][]Literal{}, nil
	}

	rawRows := splitTop(inner)
	rows := make([][]Literal, 0, len(rawRows))
	for idx, raw := range rawRows {
		raw = strings.TrimSpace(raw)
		if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
			return nil, fmt.Errorf("Matrix: row %d %q must be bracketed: %w", idx, raw, ErrInvalidSyntax)
		}
		row, err := Vector(raw)
		if err != nil {
			return nil, fmt.Errorf("Matrix: row %d: %w", idx, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// unbracket strips one outer bracket pair and returns the trimmed body.
func unbracket(text, what string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", fmt.Errorf("%s: empty input: %w", what, ErrInvalidSyntax)
	}
	if !strings.HasPrefix(t, "[") || !strings.HasSuffix(t, "]") {
		return "", fmt.Errorf("%s: %q must start with '[' and end with ']': %w", what, t, ErrInvalidSyntax)
	}

	return strings.TrimSpace(t[1 : len(t)-1]), nil
}

// splitTop splits s on commas at bracket/paren depth zero.
func splitTop(s string) []string {
	var (
		fields []string
		start  int
		parens int
		bracks int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			bracks++
		case ']':
			bracks--
		case ',':
			if parens == 0 && bracks == 0 {
				fields = append(fields, s[start:i])
				start = i + 1
			}
		}
	}
	fields = append(fields, s[start:])

	return fields
}
