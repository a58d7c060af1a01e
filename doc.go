// Package numkit is the numeric heart of a linear-algebra teaching tool:
// it turns user-entered text into dimensionally-correct, precision-consistent
// values and back into readable strings.
//
// 🚀 What is numkit?
//
//	A small library that brings together:
//		• Restricted expression parsing: fractions, decimals, sqrt, powers —
//		  and nothing else (no variables, no arbitrary calls)
//		• A unified number policy: exact rationals or tolerance-aware floats,
//		  never silently mixed
//		• Fail-fast shape validation: rectangular, square, multipliable,
//		  augmented — checked before any algorithm runs
//		• Pure matrix primitives: constructors, augmentation, elementary
//		  row operations, pivot search
//		• Readable formatting: finite decimals when possible, reduced
//		  fractions otherwise
//		• Optional step tracing for pedagogical walk-throughs
//
// ✨ Why choose numkit?
//
//   - Safe by restriction – the grammar is enumerable; no general evaluator
//   - Exact when you want it – math/big rationals, reduced by construction
//   - Tolerant when you need it – floats with explicit equality tolerance
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under small, single-purpose subpackages:
//
//	parse/    — text → native literals (scalar, vector, matrix)
//	numeric/  — Number union, Mode, Policy (convert + compare)
//	validate/ — shape and range preconditions, fail-fast
//	matrix/   — pure matrix construction and row operations
//	format/   — numbers and matrices → display strings
//	steps/    — optional ordered trace of an operation
//	algebra/  — end-to-end services built on the core
//
// Quick pipeline:
//
//	text ─▶ parse ─▶ numeric.Policy ─▶ validate ─▶ matrix ─▶ format
//	                              (steps may observe any stage)
//
// Dive into the package docs and example tests for full usage.
//
//	go get github.com/kiwisolve/numkit
package numkit
