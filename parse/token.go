// SPDX-License-Identifier: MIT
// Package parse: tokenizer over the restricted symbol set.
// Supported tokens: numbers (with optional fraction part and exponent),
// the sqrt keyword, parentheses, '/', '^' and unary '-'. Anything else
// fails with ErrInvalidSyntax naming the character and its position.

package parse

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokSqrt
	tokLParen
	tokRParen
	tokSlash
	tokCaret
	tokMinus
)

// token is one lexical unit with its byte position in the input,
// kept for error messages.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// name renders a token for diagnostics.
func (t token) name() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return fmt.Sprintf("number %q", t.text)
	case tokSqrt:
		return "sqrt"
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// lex converts the input into a token sequence terminated by tokEOF.
// Whitespace is skipped between tokens; it can never occur inside one
// because each token is scanned as a single contiguous run.
func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		ch := input[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case isDigit(ch):
			j, err := scanNumber(input, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokNumber, text: input[i:j], pos: i})
			i = j
		case ch == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case ch == '/':
			toks = append(toks, token{kind: tokSlash, text: "/", pos: i})
			i++
		case ch == '^':
			toks = append(toks, token{kind: tokCaret, text: "^", pos: i})
			i++
		case ch == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case strings.HasPrefix(input[i:], "sqrt"):
			toks = append(toks, token{kind: tokSqrt, text: "sqrt", pos: i})
			i += len("sqrt")
		default:
			return nil, fmt.Errorf("lex: disallowed character %q at position %d: %w", ch, i, ErrInvalidSyntax)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})

	return toks, nil
}

// scanNumber consumes a numeric token starting at input[start] (a digit)
// and returns the index one past its end.
//
// Shape: digits [ '.' digits ] [ ('e'|'E') [sign] digits ].
// A dot must be followed by a digit, and an exponent marker must be
// followed by (signed) digits; otherwise the token is malformed.
func scanNumber(input string, start int) (int, error) {
	i := start
	for i < len(input) && isDigit(input[i]) {
		i++
	}

	// Optional fraction part.
	if i < len(input) && input[i] == '.' {
		if i+1 >= len(input) || !isDigit(input[i+1]) {
			return 0, fmt.Errorf("lex: malformed number %q at position %d: digit required after '.': %w",
				input[start:i+1], start, ErrInvalidSyntax)
		}
		i++
		for i < len(input) && isDigit(input[i]) {
			i++
		}
	}

	// Optional exponent part.
	if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
		j := i + 1
		if j < len(input) && (input[j] == '+' || input[j] == '-') {
			j++
		}
		if j >= len(input) || !isDigit(input[j]) {
			return 0, fmt.Errorf("lex: malformed exponent in %q at position %d: %w",
				input[start:min(j, len(input))], start, ErrInvalidSyntax)
		}
		i = j
		for i < len(input) && isDigit(input[i]) {
			i++
		}
	}

	return i, nil
}
