// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

// Hfilter keeps the columns of r (which must be a single row) for which
// p holds, preserving order. r must have exactly one row.
func Hfilter[T any](p func(T) bool, r *Rope[T]) (*Rope[T], error) {
	if r.rows != 1 {
		return nil, opError("hfilter", ErrShapeMismatch, shapeOf(r).String())
	}
	return hfilterRec(p, r), nil
}

func hfilterRec[T any](p func(T) bool, r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSlice:
		return hfilterRec(p, materialize(r))
	case kSparse:
		if p(r.val) {
			return r
		}
		return empty[T]()
	case kLeaf:
		return leafCtor[T](r.leaf.HFilter(p))
	case kHCat:
		a := hfilterRec(p, r.a)
		b := hfilterRec(p, r.b)
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// Vfilter keeps the rows of r (which must be a single column) for which
// p holds, preserving order. r must have exactly one column.
func Vfilter[T any](p func(T) bool, r *Rope[T]) (*Rope[T], error) {
	if r.cols != 1 {
		return nil, opError("vfilter", ErrShapeMismatch, shapeOf(r).String())
	}
	return vfilterRec(p, r), nil
}

func vfilterRec[T any](p func(T) bool, r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSlice:
		return vfilterRec(p, materialize(r))
	case kSparse:
		if p(r.val) {
			return r
		}
		return empty[T]()
	case kLeaf:
		return leafCtor[T](r.leaf.VFilter(p))
	case kVCat:
		a := vfilterRec(p, r.a)
		b := vfilterRec(p, r.b)
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// Forall reports whether p holds for every element of r, short-circuiting
// on the first failure.
func Forall[T any](p func(T) bool, r *Rope[T]) bool {
	switch r.kind {
	case kEmpty:
		return true
	case kSlice:
		return Forall(p, materialize(r))
	case kSparse:
		return p(r.val)
	case kLeaf:
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				if !p(r.leaf.At(i, j)) {
					return false
				}
			}
		}
		return true
	case kHCat, kVCat:
		return Forall(p, r.a) && Forall(p, r.b)
	default:
		return true
	}
}

// Exists reports whether p holds for some element of r, short-circuiting
// on the first success.
func Exists[T any](p func(T) bool, r *Rope[T]) bool {
	switch r.kind {
	case kEmpty:
		return false
	case kSlice:
		return Exists(p, materialize(r))
	case kSparse:
		return p(r.val)
	case kLeaf:
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				if p(r.leaf.At(i, j)) {
					return true
				}
			}
		}
		return false
	case kHCat, kVCat:
		return Exists(p, r.a) || Exists(p, r.b)
	default:
		return false
	}
}
