// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

// Package quadrope implements a persistent, immutable two-dimensional
// sequence — a quad rope — addressed by (row, column), supporting whole-
// matrix bulk operations (map, zip, reduce, scan, reverse, transpose,
// concatenation, slicing, filtering) in time proportional to the work
// done rather than to the size of the underlying rectangle.
//
// A rope is a tree whose internal nodes describe horizontal or vertical
// adjacency of two rectangular children, whose leaves hold small dense
// tiles, and whose sparse nodes represent large rectangular regions of a
// single repeated value without materializing them. The tree is kept
// within logarithmic depth by a Fibonacci-based balancing rule applied
// on every concatenation.
//
// Ropes are value-like and persistent: every operation returns a new
// rope sharing structure with its inputs. The only mutable state during
// an operation is a private scratch buffer (see the internal/target
// package) exclusive to that one in-flight call.
package quadrope

import (
	"fmt"

	"github.com/quadrope/quadrope/internal/tile"
)

// kind tags the six cases of the quad rope variant.
type kind uint8

const (
	kEmpty kind = iota
	kLeaf
	kHCat
	kVCat
	kSlice
	kSparse
)

// sMax bounds a leaf's edge length. Release builds use 32; this module
// carries a single build (no debug/release split), so sMax is a package
// variable rather than a compile-time constant, settable by tests that
// want the small debug value (4) to exercise deep trees cheaply.
var sMax = 32

// Rope is a persistent two-dimensional sequence of values of type T. The
// zero value is not a valid Rope; use Empty, Singleton, Create, Init, or
// one of the From* constructors.
//
// Rope is a tagged variant (see kind); pseudo-constructors in ctor.go are
// the only way to build HCat/VCat/Slice/Sparse nodes, enforcing the
// invariants of spec.md §3.
type Rope[T any] struct {
	kind   kind
	rows   int
	cols   int
	depth  int
	sparse bool // true if this node or any descendant is Sparse

	leaf Lvalue[T] // valid iff kind == kLeaf

	a, b *Rope[T] // valid iff kind == kHCat || kind == kVCat

	i, j  int      // valid iff kind == kSlice: offset into inner
	inner *Rope[T] // valid iff kind == kSlice

	val T // valid iff kind == kSparse
}

// Lvalue aliases the tile type so callers of this package never need to
// import internal/tile directly.
type Lvalue[T any] = tile.Tile[T]

// Rows reports the number of rows of r.
func Rows[T any](r *Rope[T]) int { return r.rows }

// Cols reports the number of columns of r.
func Cols[T any](r *Rope[T]) int { return r.cols }

// Depth reports the tree depth of r (0 for Empty, Leaf, and Sparse).
func Depth[T any](r *Rope[T]) int { return r.depth }

// IsEmpty reports whether r has zero area.
func IsEmpty[T any](r *Rope[T]) bool { return r.kind == kEmpty }

// IsSingleton reports whether r is exactly a 1x1 rope.
func IsSingleton[T any](r *Rope[T]) bool { return r.rows == 1 && r.cols == 1 }

// IsSparse reports whether r is a Sparse node or any descendant is.
func IsSparse[T any](r *Rope[T]) bool { return r.sparse }

// SparseValue reports (v, true) when r is itself a Sparse node (not
// merely containing one as a descendant); callers like the numeric
// package use this to short-circuit on a known constant operand without
// descending into the rest of the tree.
func SparseValue[T any](r *Rope[T]) (T, bool) {
	if r.kind == kSparse {
		return r.val, true
	}
	var zero T
	return zero, false
}

// shape is a small value used by error messages and Equal/Zip fast
// paths to compare rectangles without repeating Rows/Cols calls.
type shape struct{ rows, cols int }

func shapeOf[T any](r *Rope[T]) shape { return shape{r.rows, r.cols} }

func (s shape) String() string {
	return fmt.Sprintf("%dx%d", s.rows, s.cols)
}
