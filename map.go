// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"github.com/quadrope/quadrope/internal/target"
	"github.com/quadrope/quadrope/internal/tile"
)

// Map applies f to every element of r, returning a new rope of the same
// shape. A Sparse node maps to a single f call regardless of its area;
// a fully-sparse rope is mapped structurally and allocates no scratch
// buffer at all. Any other shape lazily gets one dense target buffer
// sized to r, shared by every leaf so adjacent sub-results land in
// adjacent memory.
func Map[T any](f func(T) T, r *Rope[T]) *Rope[T] {
	if r.rows == 0 || r.cols == 0 {
		return empty[T]()
	}
	if isFullySparse(r) {
		return mapSparse(f, r)
	}
	buf := target.New[T](r.rows, r.cols)
	return mapDense(f, r, buf.Root())
}

func isFullySparse[T any](r *Rope[T]) bool {
	switch r.kind {
	case kEmpty, kSparse:
		return true
	case kSlice:
		return isFullySparse(r.inner)
	case kHCat, kVCat:
		return isFullySparse(r.a) && isFullySparse(r.b)
	default:
		return false
	}
}

func mapSparse[T any](f func(T) T, r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSparse:
		return sparseCtor(r.rows, r.cols, f(r.val))
	case kSlice:
		return mapSparse(f, materialize(r))
	case kHCat:
		n, err := hnode(mapSparse(f, r.a), mapSparse(f, r.b))
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		n, err := vnode(mapSparse(f, r.a), mapSparse(f, r.b))
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

func mapDense[T any](f func(T) T, r *Rope[T], win target.Window[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSparse:
		// A Sparse child of an otherwise-dense rope stays Sparse: the
		// window carved out for it by the parent HCat/VCat case is
		// purely positional (sized off r.a.cols/r.a.rows), so leaving
		// it unwritten costs nothing and keeps the O(1) representation
		// per spec.md §4.6 instead of materializing h*w cells.
		return sparseCtor(r.rows, r.cols, f(r.val))
	case kLeaf:
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				win.Set(i, j, f(r.leaf.At(i, j)))
			}
		}
		return leafCtor[T](win.Freeze())
	case kSlice:
		return mapDense(f, materialize(r), win)
	case kHCat:
		a := mapDense(f, r.a, win.Sub(0, 0, r.rows, r.a.cols))
		b := mapDense(f, r.b, win.Right(r.a.cols))
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		a := mapDense(f, r.a, win.Sub(0, 0, r.a.rows, r.cols))
		b := mapDense(f, r.b, win.Below(r.a.rows))
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// Hmap applies g to each row of r (presented as a 1 x cols rope) and
// stacks the results vertically. Hreduce and Hmapreduce are built from
// this, instantiating R to T or to the reduction's result type.
func Hmap[T any](g func(*Rope[T]) *Rope[T], r *Rope[T]) *Rope[T] {
	return HmapG(g, r)
}

// HmapG is Hmap generalized to a row function that may change the
// element type.
func HmapG[T, R any](g func(*Rope[T]) *Rope[R], r *Rope[T]) *Rope[R] {
	return hmapRange(g, r, 0, r.rows)
}

func hmapRange[T, R any](g func(*Rope[T]) *Rope[R], r *Rope[T], lo, hi int) *Rope[R] {
	if lo >= hi {
		return empty[R]()
	}
	if hi-lo == 1 {
		return g(Vslice(r, lo, 1))
	}
	mid := (lo + hi) / 2
	top := hmapRange(g, r, lo, mid)
	bottom := hmapRange(g, r, mid, hi)
	n, err := vnode(top, bottom)
	if err != nil {
		panic(err)
	}
	return vbalance(n)
}

// Vmap applies g to each column of r (presented as a rows x 1 rope) and
// stacks the results horizontally.
func Vmap[T any](g func(*Rope[T]) *Rope[T], r *Rope[T]) *Rope[T] {
	return VmapG(g, r)
}

// VmapG is Vmap generalized to a column function that may change the
// element type.
func VmapG[T, R any](g func(*Rope[T]) *Rope[R], r *Rope[T]) *Rope[R] {
	return vmapRange(g, r, 0, r.cols)
}

func vmapRange[T, R any](g func(*Rope[T]) *Rope[R], r *Rope[T], lo, hi int) *Rope[R] {
	if lo >= hi {
		return empty[R]()
	}
	if hi-lo == 1 {
		return g(Hslice(r, lo, 1))
	}
	mid := (lo + hi) / 2
	left := vmapRange(g, r, lo, mid)
	right := vmapRange(g, r, mid, hi)
	n, err := hnode(left, right)
	if err != nil {
		panic(err)
	}
	return hbalance(n)
}

// MapUntil applies f to every element of r in reading order, stopping as
// soon as cond holds for a mapped value: everything up to and including
// that element carries the mapped value, everything after is returned
// unchanged. Reading order is a-before-b for both HCat and VCat.
func MapUntil[T any](cond func(T) bool, f func(T) T, r *Rope[T]) *Rope[T] {
	stopped := false
	var rec func(*Rope[T]) *Rope[T]
	rec = func(r *Rope[T]) *Rope[T] {
		if stopped {
			return r
		}
		switch r.kind {
		case kEmpty:
			return r
		case kSparse:
			v := f(r.val)
			if cond(v) {
				stopped = true
			}
			return sparseCtor(r.rows, r.cols, v)
		case kLeaf:
			vals := make([]T, r.rows*r.cols)
			k := 0
			for i := 0; i < r.rows; i++ {
				for j := 0; j < r.cols; j++ {
					if stopped {
						vals[k] = r.leaf.At(i, j)
					} else {
						v := f(r.leaf.At(i, j))
						vals[k] = v
						if cond(v) {
							stopped = true
						}
					}
					k++
				}
			}
			return leafCtor[T](tile.FromRowMajor(vals, r.rows, r.cols))
		case kSlice:
			return rec(materialize(r))
		case kHCat:
			a := rec(r.a)
			b := rec(r.b)
			n, err := hnode(a, b)
			if err != nil {
				panic(err)
			}
			return n
		case kVCat:
			a := rec(r.a)
			b := rec(r.b)
			n, err := vnode(a, b)
			if err != nil {
				panic(err)
			}
			return n
		default:
			return r
		}
	}
	return rec(r)
}
