// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import "github.com/quadrope/quadrope/internal/tile"

// empty returns the canonical Empty rope.
func empty[T any]() *Rope[T] {
	return &Rope[T]{kind: kEmpty}
}

// leafCtor is the first pseudo-constructor: it returns Empty if s has zero
// area, otherwise a Leaf wrapping s.
func leafCtor[T any](s Lvalue[T]) *Rope[T] {
	if s.Rows() == 0 || s.Cols() == 0 {
		return empty[T]()
	}
	return &Rope[T]{kind: kLeaf, rows: s.Rows(), cols: s.Cols(), leaf: s}
}

// sparseCtor builds a Sparse node, collapsing to Empty on zero area.
func sparseCtor[T any](h, w int, v T) *Rope[T] {
	if h <= 0 || w <= 0 {
		return empty[T]()
	}
	return &Rope[T]{kind: kSparse, rows: h, cols: w, sparse: true, val: v}
}

// hnode is the pseudo-constructor for horizontal adjacency: if either
// side is Empty it returns the other, otherwise it builds an HCat node
// after checking that row counts agree.
func hnode[T any](a, b *Rope[T]) (*Rope[T], error) {
	if a.kind == kEmpty {
		return b, nil
	}
	if b.kind == kEmpty {
		return a, nil
	}
	if a.rows != b.rows {
		return nil, opError("hcat", ErrShapeMismatch, shapeOf(a).String()+" vs "+shapeOf(b).String())
	}
	d := a.depth
	if b.depth > d {
		d = b.depth
	}
	return &Rope[T]{
		kind:   kHCat,
		rows:   a.rows,
		cols:   a.cols + b.cols,
		depth:  d + 1,
		sparse: a.sparse || b.sparse,
		a:      a,
		b:      b,
	}, nil
}

// vnode is the vertical counterpart of hnode.
func vnode[T any](a, b *Rope[T]) (*Rope[T], error) {
	if a.kind == kEmpty {
		return b, nil
	}
	if b.kind == kEmpty {
		return a, nil
	}
	if a.cols != b.cols {
		return nil, opError("vcat", ErrShapeMismatch, shapeOf(a).String()+" vs "+shapeOf(b).String())
	}
	d := a.depth
	if b.depth > d {
		d = b.depth
	}
	return &Rope[T]{
		kind:   kVCat,
		rows:   a.rows + b.rows,
		cols:   a.cols,
		depth:  d + 1,
		sparse: a.sparse || b.sparse,
		a:      a,
		b:      b,
	}, nil
}

func clampDim(start, length, limit int) (int, int) {
	if start < 0 {
		length += start
		start = 0
	}
	if length < 0 {
		length = 0
	}
	if start > limit {
		start = limit
		length = 0
	}
	if start+length > limit {
		length = limit - start
	}
	if length < 0 {
		length = 0
	}
	return start, length
}

// sliceCtor is the fourth pseudo-constructor: it clamps (i, j, h, w)
// against r's shape and either collapses to Empty/r itself, fuses with
// an existing Slice by offset addition, reshapes a Sparse directly,
// delegates to the tile layer for a Leaf, or emits a Slice node.
func sliceCtor[T any](i, j, h, w int, r *Rope[T]) *Rope[T] {
	i, h = clampDim(i, h, r.rows)
	j, w = clampDim(j, w, r.cols)

	if h == 0 || w == 0 {
		return empty[T]()
	}
	if i == 0 && j == 0 && h == r.rows && w == r.cols {
		return r
	}

	switch r.kind {
	case kSlice:
		return sliceCtor(r.i+i, r.j+j, h, w, r.inner)
	case kSparse:
		return sparseCtor(h, w, r.val)
	case kLeaf:
		return leafCtor[T](r.leaf.Slice(i, j, h, w))
	default:
		return &Rope[T]{kind: kSlice, rows: h, cols: w, depth: r.depth, sparse: r.sparse, i: i, j: j, inner: r}
	}
}

// Hcat concatenates a and b horizontally (spec.md §4.1): it requires
// rows(a) == rows(b), attempts small-leaf merges, and always
// rebalances the result exactly once. It never merges two Sparse
// nodes; HcatEq does that.
func Hcat[T any](a, b *Rope[T]) (*Rope[T], error) {
	return hcatWith(a, b, nil)
}

// Vcat concatenates a and b vertically. Like Hcat, it never merges two
// Sparse nodes; VcatEq does that.
func Vcat[T any](a, b *Rope[T]) (*Rope[T], error) {
	return vcatWith(a, b, nil)
}

// HcatEq is Hcat with an explicit equality predicate enabling the
// Sparse/Sparse merge fast path of spec.md §4.1 ("two Sparse with the
// same value and shared edge merge into a single Sparse"), which plain
// Hcat cannot perform for an unconstrained T. The numeric submodule
// uses this with float64 equality.
func HcatEq[T any](a, b *Rope[T], eq func(T, T) bool) (*Rope[T], error) {
	return hcatWith(a, b, eq)
}

// VcatEq is the vertical counterpart of HcatEq.
func VcatEq[T any](a, b *Rope[T], eq func(T, T) bool) (*Rope[T], error) {
	return vcatWith(a, b, eq)
}

// eqFunc compares two T values; used only by the merge fast paths of
// Hcat/Vcat to collapse adjacent Sparse nodes of equal value. Nil means
// "never merge Sparse siblings", which is always safe, just misses an
// optimization.
type eqFunc[T any] func(T, T) bool

func hcatWith[T any](a, b *Rope[T], eq eqFunc[T]) (*Rope[T], error) {
	if a.kind == kEmpty {
		return b, nil
	}
	if b.kind == kEmpty {
		return a, nil
	}
	if a.rows != b.rows {
		return nil, opError("hcat", ErrShapeMismatch, shapeOf(a).String()+" vs "+shapeOf(b).String())
	}

	if a.kind == kLeaf && b.kind == kLeaf && a.cols+b.cols <= sMax {
		return leafCtor[T](tile.HCat(a.leaf, b.leaf)), nil
	}
	if a.kind == kHCat && a.b.kind == kLeaf && b.kind == kLeaf && a.b.cols+b.cols <= sMax {
		fused := leafCtor[T](tile.HCat(a.b.leaf, b.leaf))
		merged, err := hnode(a.a, fused)
		if err != nil {
			return nil, err
		}
		return hbalance(merged), nil
	}
	if eq != nil && a.kind == kSparse && b.kind == kSparse && eq(a.val, b.val) {
		return sparseCtor(a.rows, a.cols+b.cols, a.val), nil
	}

	n, err := hnode(a, b)
	if err != nil {
		return nil, err
	}
	return hbalance(n), nil
}

func vcatWith[T any](a, b *Rope[T], eq eqFunc[T]) (*Rope[T], error) {
	if a.kind == kEmpty {
		return b, nil
	}
	if b.kind == kEmpty {
		return a, nil
	}
	if a.cols != b.cols {
		return nil, opError("vcat", ErrShapeMismatch, shapeOf(a).String()+" vs "+shapeOf(b).String())
	}

	if a.kind == kLeaf && b.kind == kLeaf && a.rows+b.rows <= sMax {
		return leafCtor[T](tile.VCat(a.leaf, b.leaf)), nil
	}
	if a.kind == kVCat && a.b.kind == kLeaf && b.kind == kLeaf && a.b.rows+b.rows <= sMax {
		fused := leafCtor[T](tile.VCat(a.b.leaf, b.leaf))
		merged, err := vnode(a.a, fused)
		if err != nil {
			return nil, err
		}
		return vbalance(merged), nil
	}
	if eq != nil && a.kind == kSparse && b.kind == kSparse && eq(a.val, b.val) {
		return sparseCtor(a.rows+b.rows, a.cols, a.val), nil
	}

	n, err := vnode(a, b)
	if err != nil {
		return nil, err
	}
	return vbalance(n), nil
}
