// Package parse converts user-entered text into native numeric literals —
// scalars, vectors and matrices — using an intentionally restricted grammar.
//
// 🚀 What does parse accept?
//
//	Exactly this, and nothing more:
//	  • signed decimal literals with optional exponent: 3, -2.5, 1e-3
//	  • simple fractions: a/b (nesting allowed: (1/2)/(3/4))
//	  • exponentiation: base^exp, right-associative: 2^3^2 = 2^(3^2)
//	  • square roots: sqrt(expr)
//	  • parenthesized grouping and unary minus
//
//	Explicitly unsupported: binary + and - inside one field, variables,
//	and arbitrary function calls. The restriction is a safety property:
//	the grammar is enumerable, so no general evaluator is ever invoked.
//
// ✨ Key properties:
//   - Mode-independent: results are Literal values carrying both an exact
//     rational reading (reconstructed from decimal text, never from binary
//     float bits) and a float64 reading; the numeric package picks one.
//   - Fail-fast: anything outside the grammar returns ErrInvalidSyntax
//     with the offending fragment; a literal zero denominator returns
//     ErrDivisionByZero, which is a distinct condition, not a syntax error.
//   - Whitespace is insignificant but can never split a token.
//
// ⚙️ Usage:
//
//	lit, err := parse.Scalar("(3/2)^(2)") // 9/4
//	vec, err := parse.Vector("[1/2, -3, 0.25]")
//	mat, err := parse.Matrix("[[1,2],[3,4]]")
//
// Vector and Matrix split on level-0 commas (bracket- and paren-aware) and
// parse each field with Scalar. Matrix rows need not share a length here;
// rectangularity is the validate package's concern.
package parse
