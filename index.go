// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import "github.com/quadrope/quadrope/internal/tile"

// Get returns the value at (i, j), bounds-checked against r's shape.
func Get[T any](r *Rope[T], i, j int) (T, error) {
	var zero T
	if i < 0 || j < 0 || i >= r.rows || j >= r.cols {
		return zero, opError("get", ErrOutOfBounds, shapeOf(r).String())
	}
	return get(r, i, j), nil
}

func get[T any](r *Rope[T], i, j int) T {
	switch r.kind {
	case kLeaf:
		return r.leaf.At(i, j)
	case kSparse:
		return r.val
	case kSlice:
		return get(r.inner, r.i+i, r.j+j)
	case kHCat:
		if j < r.a.cols {
			return get(r.a, i, j)
		}
		return get(r.b, i, j-r.a.cols)
	case kVCat:
		if i < r.a.rows {
			return get(r.a, i, j)
		}
		return get(r.b, i-r.a.rows, j)
	default:
		var zero T
		return zero
	}
}

// Set returns a new rope equal to r except at (i, j), which becomes v.
// Only the affected leaf (or sparse block, which must materialize since
// the update breaks uniformity) is copied; everything else is shared.
func Set[T any](r *Rope[T], i, j int, v T) (*Rope[T], error) {
	if i < 0 || j < 0 || i >= r.rows || j >= r.cols {
		return nil, opError("set", ErrOutOfBounds, shapeOf(r).String())
	}
	return set(r, i, j, v), nil
}

func set[T any](r *Rope[T], i, j int, v T) *Rope[T] {
	switch r.kind {
	case kLeaf:
		return leafCtor[T](r.leaf.Set(i, j, v))
	case kSparse:
		buf := make([]T, r.rows*r.cols)
		for k := range buf {
			buf[k] = r.val
		}
		buf[i*r.cols+j] = v
		return leafCtor[T](tile.FromRowMajor(buf, r.rows, r.cols))
	case kSlice:
		updatedInner := set(r.inner, r.i+i, r.j+j, v)
		return sliceCtor(r.i, r.j, r.rows, r.cols, updatedInner)
	case kHCat:
		if j < r.a.cols {
			na := set(r.a, i, j, v)
			n, _ := hnode(na, r.b)
			return n
		}
		nb := set(r.b, i, j-r.a.cols, v)
		n, _ := hnode(r.a, nb)
		return n
	case kVCat:
		if i < r.a.rows {
			na := set(r.a, i, j, v)
			n, _ := vnode(na, r.b)
			return n
		}
		nb := set(r.b, i-r.a.rows, j, v)
		n, _ := vnode(r.a, nb)
		return n
	default:
		return r
	}
}
