// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

// Package numeric instantiates quadrope's generic operations over
// float64, demonstrating the kind of dense-matrix arithmetic the
// library is meant to support: elementwise combinators that exploit
// Sparse constant regions instead of materializing them, and a handful
// of structured-matrix constructors built by quadrant recursion.
package numeric

import "github.com/quadrope/quadrope"

func eqFloat(a, b float64) bool { return a == b }

// Sum totals every element of r.
func Sum(r *quadrope.Rope[float64]) float64 {
	return quadrope.Reduce(func(a, b float64) float64 { return a + b }, 0, r)
}

// Pointwise combines a and b elementwise via f (a two-operand
// combinator that callers use for multiplication-like f, where 0 is
// absorbing and 1 is the identity). When a or b is itself a Sparse node
// equal to 0 or 1, the call short-circuits before ever touching the
// other operand's tree — a Sparse-zero scalar zipped against an
// arbitrarily large rope returns in O(1) rather than visiting every
// leaf, and a Sparse-one scalar returns the other operand unchanged.
func Pointwise(f func(a, b float64) float64, a, b *quadrope.Rope[float64]) (*quadrope.Rope[float64], error) {
	if quadrope.Rows(a) != quadrope.Rows(b) || quadrope.Cols(a) != quadrope.Cols(b) {
		// Zip reports the shape mismatch.
		return quadrope.Zip(f, a, b)
	}
	if v, ok := quadrope.SparseValue(a); ok {
		if v == 0 {
			return quadrope.Create(quadrope.Rows(b), quadrope.Cols(b), f(0, 0)), nil
		}
		if v == 1 {
			return b, nil
		}
	}
	if v, ok := quadrope.SparseValue(b); ok {
		if v == 0 {
			return quadrope.Create(quadrope.Rows(a), quadrope.Cols(a), f(0, 0)), nil
		}
		if v == 1 {
			return a, nil
		}
	}
	return quadrope.Zip(f, a, b)
}

// Prod is the scalar product of every element of r (spec.md §4.8, §6):
// it folds multiplication over r in reading order, short-circuiting to
// 0 as soon as a cat's left subtree's product is 0 — in particular a
// Sparse(_, _, 0) region anywhere along the left spine — without ever
// evaluating the right subtree. Scenario S2 is exactly this: a Sparse
// zero block concatenated to an arbitrarily large right operand yields
// 0 without visiting that operand.
func Prod(r *quadrope.Rope[float64]) float64 {
	return quadrope.ReduceAbsorbing(func(a, b float64) float64 { return a * b }, 1, 0, r)
}

// Identity returns the n x n identity matrix, built by quadrant
// recursion so the off-diagonal blocks are Sparse zero rather than
// materialized.
func Identity(n int) *quadrope.Rope[float64] {
	if n <= 0 {
		return quadrope.Empty[float64]()
	}
	if n == 1 {
		return quadrope.Singleton(1.0)
	}
	top := n / 2
	bottom := n - top

	topRow, err := quadrope.HcatEq(identityQuadrant(top), quadrope.Create(top, bottom, 0.0), eqFloat)
	if err != nil {
		panic(err)
	}
	bottomRow, err := quadrope.HcatEq(quadrope.Create(bottom, top, 0.0), identityQuadrant(bottom), eqFloat)
	if err != nil {
		panic(err)
	}
	out, err := quadrope.VcatEq(topRow, bottomRow, eqFloat)
	if err != nil {
		panic(err)
	}
	return out
}

func identityQuadrant(n int) *quadrope.Rope[float64] {
	return Identity(n)
}

// UpperDiagonal returns the n x n matrix with v on and above the main
// diagonal and 0 elsewhere, built by quadrant recursion: the upper-right
// quadrant is entirely above the diagonal (Sparse v) and the
// lower-left quadrant entirely below it (Sparse 0).
func UpperDiagonal(n int, v float64) *quadrope.Rope[float64] {
	if n <= 0 {
		return quadrope.Empty[float64]()
	}
	if n == 1 {
		return quadrope.Singleton(v)
	}
	top := n / 2
	bottom := n - top

	topRow, err := quadrope.HcatEq(UpperDiagonal(top, v), quadrope.Create(top, bottom, v), eqFloat)
	if err != nil {
		panic(err)
	}
	bottomRow, err := quadrope.HcatEq(quadrope.Create(bottom, top, 0.0), UpperDiagonal(bottom, v), eqFloat)
	if err != nil {
		panic(err)
	}
	out, err := quadrope.VcatEq(topRow, bottomRow, eqFloat)
	if err != nil {
		panic(err)
	}
	return out
}

// LowerDiagonal is the mirror of UpperDiagonal: v on and below the main
// diagonal, 0 above it.
func LowerDiagonal(n int, v float64) *quadrope.Rope[float64] {
	if n <= 0 {
		return quadrope.Empty[float64]()
	}
	if n == 1 {
		return quadrope.Singleton(v)
	}
	top := n / 2
	bottom := n - top

	topRow, err := quadrope.HcatEq(LowerDiagonal(top, v), quadrope.Create(top, bottom, 0.0), eqFloat)
	if err != nil {
		panic(err)
	}
	bottomRow, err := quadrope.HcatEq(quadrope.Create(bottom, top, v), LowerDiagonal(bottom, v), eqFloat)
	if err != nil {
		panic(err)
	}
	out, err := quadrope.VcatEq(topRow, bottomRow, eqFloat)
	if err != nil {
		panic(err)
	}
	return out
}
