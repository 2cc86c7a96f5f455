// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import "github.com/quadrope/quadrope/internal/tile"

// Scan computes the two-dimensional summed-area recurrence
//
//	out[i,j] = minus(plus(plus(r[i,j], out[i-1,j]), out[i,j-1]), out[i-1,j-1])
//
// over r, using plus/minus as the scan's commutative group operation
// (e.g. addition/subtraction). init supplies the boundary values outside
// r: init(k) for k >= 0 is the conceptual prefix at row/column -1 of row
// or column k, and init(-1) is the corner above-left of (0,0).
func Scan[T any](plus, minus func(T, T) T, init func(idx int) T, r *Rope[T]) *Rope[T] {
	top := func(j int) T { return init(j) }
	left := func(i int) T { return init(i) }
	corner := init(-1)
	return scanRec(plus, minus, r, top, left, corner)
}

func scanRec[T any](plus, minus func(T, T) T, r *Rope[T], top, left func(int) T, corner T) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSlice:
		return scanRec(plus, minus, materialize(r), top, left, corner)
	case kLeaf:
		return leafCtor[T](r.leaf.Scan(plus, minus, top, left, corner))
	case kSparse:
		src := tile.New(r.rows, r.cols, r.val)
		return leafCtor[T](src.Scan(plus, minus, top, left, corner))
	case kHCat:
		aOut := scanRec(plus, minus, r.a, top, left, corner)
		aEdge := r.a.cols - 1
		rightTop := func(j int) T { return top(j + r.a.cols) }
		rightLeft := func(i int) T { return get(aOut, i, aEdge) }
		rightCorner := top(aEdge)
		bOut := scanRec(plus, minus, r.b, rightTop, rightLeft, rightCorner)
		n, err := hnode(aOut, bOut)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		aEdge := r.a.rows - 1
		topOut := scanRec(plus, minus, r.a, top, left, corner)
		bottomTop := func(j int) T { return get(topOut, aEdge, j) }
		bottomLeft := func(i int) T { return left(i + r.a.rows) }
		bottomCorner := left(aEdge)
		bottomOut := scanRec(plus, minus, r.b, bottomTop, bottomLeft, bottomCorner)
		n, err := vnode(topOut, bottomOut)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// Hscan computes the row-wise prefix of r using plus, each row seeded by
// left(row). Unlike Scan, rows are independent: no vertical dependency.
func Hscan[T any](plus func(T, T) T, left func(row int) T, r *Rope[T]) *Rope[T] {
	return hscanRec(plus, r, left)
}

func hscanRec[T any](plus func(T, T) T, r *Rope[T], left func(int) T) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSlice:
		return hscanRec(plus, materialize(r), left)
	case kLeaf:
		return leafCtor[T](r.leaf.HScan(plus, left))
	case kSparse:
		return leafCtor[T](tile.New(r.rows, r.cols, r.val).HScan(plus, left))
	case kHCat:
		aOut := hscanRec(plus, r.a, left)
		aEdge := r.a.cols - 1
		rightLeft := func(i int) T { return get(aOut, i, aEdge) }
		bOut := hscanRec(plus, r.b, rightLeft)
		n, err := hnode(aOut, bOut)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		bottomLeft := func(i int) T { return left(i + r.a.rows) }
		aOut := hscanRec(plus, r.a, left)
		bOut := hscanRec(plus, r.b, bottomLeft)
		n, err := vnode(aOut, bOut)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// Vscan computes the column-wise prefix of r using plus, each column
// seeded by top(col).
func Vscan[T any](plus func(T, T) T, top func(col int) T, r *Rope[T]) *Rope[T] {
	return vscanRec(plus, r, top)
}

func vscanRec[T any](plus func(T, T) T, r *Rope[T], top func(int) T) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSlice:
		return vscanRec(plus, materialize(r), top)
	case kLeaf:
		return leafCtor[T](r.leaf.VScan(plus, top))
	case kSparse:
		return leafCtor[T](tile.New(r.rows, r.cols, r.val).VScan(plus, top))
	case kHCat:
		rightTop := func(j int) T { return top(j + r.a.cols) }
		aOut := vscanRec(plus, r.a, top)
		bOut := vscanRec(plus, r.b, rightTop)
		n, err := hnode(aOut, bOut)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		aOut := vscanRec(plus, r.a, top)
		aEdge := r.a.rows - 1
		bottomTop := func(j int) T { return get(aOut, aEdge, j) }
		bOut := vscanRec(plus, r.b, bottomTop)
		n, err := vnode(aOut, bOut)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}
