// SPDX-License-Identifier: MIT
// Package parse: recursive-descent parser and evaluator.
//
// Grammar (fixed, intentionally restrictive):
//
//	expr    := frac
//	frac    := power ( '/' power )*
//	power   := unary ( '^' power )?        right-associative
//	unary   := '-' unary | primary
//	primary := NUMBER | 'sqrt' '(' expr ')' | '(' expr ')'
//
// Evaluation happens during descent; there is no AST and no general
// evaluator behind it. Type rules mirror the exact/real split:
// operations over exact operands stay exact, any real operand makes the
// result real, and reals re-acquire an exact reading from their shortest
// decimal text.

package parse

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxExponent bounds integer exponents so that an adversarial literal
// like 2^(10^9) cannot allocate unbounded big.Int digits.
const maxExponent = 1 << 16

// Scalar parses one scalar expression into a native Literal.
//
// Stage 1 (Validate): reject empty input.
// Stage 2 (Lex + Parse): tokenize and descend the grammar, evaluating.
// Stage 3 (Finalize): require full consumption, else the trailing
// fragment is reported with ErrInvalidSyntax.
func Scalar(text string) (Literal, error) {
	if strings.TrimSpace(text) == "" {
		return Literal{}, fmt.Errorf("Scalar: empty input: %w", ErrInvalidSyntax)
	}
	toks, err := lex(text)
	if err != nil {
		return Literal{}, err
	}
	p := &parser{toks: toks}
	lit, err := p.expr()
	if err != nil {
		return Literal{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return Literal{}, fmt.Errorf("Scalar: trailing %s at position %d: %w", t.name(), t.pos, ErrInvalidSyntax)
	}

	return lit, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) eat(k tokenKind) (token, error) {
	t := p.peek()
	if t.kind != k {
		return token{}, fmt.Errorf("parse: unexpected %s at position %d: %w", t.name(), t.pos, ErrInvalidSyntax)
	}
	p.pos++

	return t, nil
}

// expr := frac
func (p *parser) expr() (Literal, error) {
	return p.frac()
}

// frac := power ( '/' power )*
func (p *parser) frac() (Literal, error) {
	left, err := p.power()
	if err != nil {
		return Literal{}, err
	}
	for p.peek().kind == tokSlash {
		slash, _ := p.eat(tokSlash)
		right, err := p.power()
		if err != nil {
			return Literal{}, err
		}
		left, err = divide(left, right, slash.pos)
		if err != nil {
			return Literal{}, err
		}
	}

	return left, nil
}

// power := unary ( '^' power )?
func (p *parser) power() (Literal, error) {
	base, err := p.unary()
	if err != nil {
		return Literal{}, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	caret, _ := p.eat(tokCaret)
	exp, err := p.power() // right associativity
	if err != nil {
		return Literal{}, err
	}

	return raise(base, exp, caret.pos)
}

// unary := '-' unary | primary
func (p *parser) unary() (Literal, error) {
	if p.peek().kind == tokMinus {
		p.pos++
		inner, err := p.unary()
		if err != nil {
			return Literal{}, err
		}

		return inner.neg(), nil
	}

	return p.primary()
}

// primary := NUMBER | 'sqrt' '(' expr ')' | '(' expr ')'
func (p *parser) primary() (Literal, error) {
	switch t := p.peek(); t.kind {
	case tokNumber:
		p.pos++

		return numberLiteral(t)
	case tokSqrt:
		p.pos++
		if _, err := p.eat(tokLParen); err != nil {
			return Literal{}, err
		}
		arg, err := p.expr()
		if err != nil {
			return Literal{}, err
		}
		if _, err = p.eat(tokRParen); err != nil {
			return Literal{}, err
		}

		return squareRoot(arg, t.pos)
	case tokLParen:
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return Literal{}, err
		}
		if _, err = p.eat(tokRParen); err != nil {
			return Literal{}, err
		}

		return inner, nil
	default:
		return Literal{}, fmt.Errorf("parse: unexpected %s at position %d: %w", t.name(), t.pos, ErrInvalidSyntax)
	}
}

// numberLiteral turns a NUMBER token into a Literal. Digits-only text is
// an integer; a dot or exponent makes it real. The exact reading is
// always reconstructed from the token text itself, never from float bits.
func numberLiteral(t token) (Literal, error) {
	isReal := strings.ContainsAny(t.text, ".eE")
	r, ok := new(big.Rat).SetString(t.text)
	if !ok {
		return Literal{}, fmt.Errorf("parse: malformed number %q at position %d: %w", t.text, t.pos, ErrInvalidSyntax)
	}
	if !isReal {
		return Literal{kind: KindInt, rat: r, f: ratFloat(r)}, nil
	}
	f, err := strconv.ParseFloat(t.text, 64)
	if err != nil || math.IsInf(f, 0) {
		return Literal{}, fmt.Errorf("parse: number %q at position %d exceeds the floating range: %w",
			t.text, t.pos, ErrInvalidSyntax)
	}

	return Literal{kind: KindReal, rat: r, f: f}, nil
}

// divide applies the '/' rule: any real operand turns the quotient real;
// two exact operands stay an exact fraction. A zero divisor is a
// DivisionByZero regardless of representation.
func divide(a, b Literal, pos int) (Literal, error) {
	if b.rat.Sign() == 0 {
		return Literal{}, fmt.Errorf("parse: zero denominator at position %d: %w", pos, ErrDivisionByZero)
	}
	if a.kind == KindReal || b.kind == KindReal {
		q := a.f / b.f

		return finiteReal(q, "quotient", pos)
	}
	r := new(big.Rat).Quo(a.rat, b.rat)

	return Literal{kind: KindFraction, rat: r, f: ratFloat(r)}, nil
}

// raise applies the '^' rule. Integer exponents keep exact bases exact;
// everything else goes through floating math.Pow. A fractional exponent
// over a negative base would leave the reals and is rejected.
func raise(base, exp Literal, pos int) (Literal, error) {
	if exp.IsInt() {
		return raiseInt(base, exp, pos)
	}
	if base.rat.Sign() < 0 {
		return Literal{}, fmt.Errorf("parse: fractional exponent over negative base %s at position %d: %w",
			base, pos, ErrInvalidSyntax)
	}
	r := math.Pow(base.f, exp.f)

	return finiteReal(r, "power", pos)
}

// raiseInt raises base to an integer exponent.
func raiseInt(base, exp Literal, pos int) (Literal, error) {
	if !exp.rat.Num().IsInt64() || abs64(exp.rat.Num().Int64()) > maxExponent {
		return Literal{}, fmt.Errorf("parse: exponent %s at position %d is too large: %w", exp, pos, ErrInvalidSyntax)
	}
	e := exp.rat.Num().Int64()

	if base.kind == KindReal {
		r := math.Pow(base.f, float64(e))

		return finiteReal(r, "power", pos)
	}

	if e < 0 && base.rat.Sign() == 0 {
		return Literal{}, fmt.Errorf("parse: zero base with negative exponent at position %d: %w", pos, ErrDivisionByZero)
	}
	r := ratPow(base.rat, e)
	kind := KindFraction
	if base.kind == KindInt && e >= 0 {
		kind = KindInt
	}

	return Literal{kind: kind, rat: r, f: ratFloat(r)}, nil
}

// squareRoot applies sqrt(expr). Negative arguments are rejected; the
// result is always real (exact square roots are not recognized).
func squareRoot(arg Literal, pos int) (Literal, error) {
	if arg.rat.Sign() < 0 {
		return Literal{}, fmt.Errorf("parse: sqrt of negative value %s at position %d: %w", arg, pos, ErrInvalidSyntax)
	}
	r := math.Sqrt(arg.f)

	return finiteReal(r, "sqrt", pos)
}

// finiteReal wraps a computed float into a real Literal, rejecting
// overflow to ±Inf (and NaN, which none of the callers can produce for
// accepted inputs).
func finiteReal(v float64, op string, pos int) (Literal, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Literal{}, fmt.Errorf("parse: %s at position %d exceeds the floating range: %w", op, pos, ErrInvalidSyntax)
	}

	return Literal{kind: KindReal, rat: ratFromFloat(v), f: v}, nil
}

// ratPow computes r**e for integer e (|e| bounded by maxExponent).
func ratPow(r *big.Rat, e int64) *big.Rat {
	neg := e < 0
	if neg {
		e = -e
	}
	exp := big.NewInt(e)
	num := new(big.Int).Exp(r.Num(), exp, nil)
	den := new(big.Int).Exp(r.Denom(), exp, nil)
	if neg {
		num, den = den, num
	}

	return new(big.Rat).SetFrac(num, den)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
