// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"github.com/quadrope/quadrope/internal/fork"
	"github.com/quadrope/quadrope/internal/target"
	"github.com/quadrope/quadrope/internal/tile"
)

// par2 evaluates f and g concurrently and returns both results.
func par2[A, B any](f func() A, g func() B) (A, B) {
	var a A
	var b B
	fork.Two(func() { a = f() }, func() { b = g() })
	return a, b
}

// par4 evaluates f, g, h, k concurrently and returns all four results.
func par4[A, B, C, D any](f func() A, g func() B, h func() C, k func() D) (A, B, C, D) {
	var a A
	var b B
	var c C
	var d D
	fork.Four(func() { a = f() }, func() { b = g() }, func() { c = h() }, func() { d = k() })
	return a, b, c, d
}

// PInit is the parallel counterpart of Init.
func PInit[T any](h, w int, f func(i, j int) T) *Rope[T] {
	if h <= 0 || w <= 0 {
		return empty[T]()
	}
	buf := target.New[T](h, w)
	return pfillInto(f, buf.Root(), 0, 0)
}

func pfillInto[T any](f func(i, j int) T, win target.Window[T], rowOff, colOff int) *Rope[T] {
	h, w := win.Rows(), win.Cols()
	if h <= sMax && w <= sMax {
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				win.Set(i, j, f(rowOff+i, colOff+j))
			}
		}
		return leafCtor[T](win.Freeze())
	}
	if h >= w {
		mid := h / 2
		top, bottom := par2(
			func() *Rope[T] { return pfillInto(f, win.Sub(0, 0, mid, w), rowOff, colOff) },
			func() *Rope[T] { return pfillInto(f, win.Below(mid), rowOff+mid, colOff) },
		)
		n, err := vnode(top, bottom)
		if err != nil {
			panic(err)
		}
		return vbalance(n)
	}
	mid := w / 2
	left, right := par2(
		func() *Rope[T] { return pfillInto(f, win.Sub(0, 0, h, mid), rowOff, colOff) },
		func() *Rope[T] { return pfillInto(f, win.Right(mid), rowOff, colOff+mid) },
	)
	n, err := hnode(left, right)
	if err != nil {
		panic(err)
	}
	return hbalance(n)
}

// PMap is the parallel counterpart of Map.
func PMap[T any](f func(T) T, r *Rope[T]) *Rope[T] {
	if r.rows == 0 || r.cols == 0 {
		return empty[T]()
	}
	if isFullySparse(r) {
		return mapSparse(f, r)
	}
	buf := target.New[T](r.rows, r.cols)
	return pmapDense(f, r, buf.Root())
}

func pmapDense[T any](f func(T) T, r *Rope[T], win target.Window[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSparse:
		// See mapDense's kSparse case: the carved-out window is purely
		// positional, so a Sparse child stays Sparse instead of being
		// materialized into win.
		return sparseCtor(r.rows, r.cols, f(r.val))
	case kLeaf:
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				win.Set(i, j, f(r.leaf.At(i, j)))
			}
		}
		return leafCtor[T](win.Freeze())
	case kSlice:
		return pmapDense(f, materialize(r), win)
	case kHCat:
		a, b := par2(
			func() *Rope[T] { return pmapDense(f, r.a, win.Sub(0, 0, r.rows, r.a.cols)) },
			func() *Rope[T] { return pmapDense(f, r.b, win.Right(r.a.cols)) },
		)
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		a, b := par2(
			func() *Rope[T] { return pmapDense(f, r.a, win.Sub(0, 0, r.a.rows, r.cols)) },
			func() *Rope[T] { return pmapDense(f, r.b, win.Below(r.a.rows)) },
		)
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// PZip is the parallel counterpart of Zip.
func PZip[T any](f func(T, T) T, a, b *Rope[T]) (*Rope[T], error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, opError("pzip", ErrShapeMismatch, shapeOf(a).String()+" vs "+shapeOf(b).String())
	}
	return pzipRec(f, a, b), nil
}

func pzipRec[T any](f func(T, T) T, a, b *Rope[T]) *Rope[T] {
	if a.kind == kEmpty || b.kind == kEmpty {
		return empty[T]()
	}
	if a.kind == kSlice {
		a = materialize(a)
	}
	if b.kind == kSlice {
		b = materialize(b)
	}
	if a.kind == kSparse && b.kind == kSparse {
		return sparseCtor(a.rows, a.cols, f(a.val, b.val))
	}
	if a.kind == kSparse {
		av := a.val
		return PMap(func(v T) T { return f(av, v) }, b)
	}
	if b.kind == kSparse {
		bv := b.val
		return PMap(func(v T) T { return f(v, bv) }, a)
	}
	if a.kind == kLeaf && b.kind == kLeaf {
		return leafCtor[T](tile.Map2(a.leaf, b.leaf, f))
	}

	if a.kind == kHCat && b.kind == kHCat && a.a.cols == b.a.cols {
		left, right := par2(
			func() *Rope[T] { return pzipRec(f, a.a, b.a) },
			func() *Rope[T] { return pzipRec(f, a.b, b.b) },
		)
		n, err := hnode(left, right)
		if err != nil {
			panic(err)
		}
		return n
	}
	if a.kind == kVCat && b.kind == kVCat && a.a.rows == b.a.rows {
		top, bottom := par2(
			func() *Rope[T] { return pzipRec(f, a.a, b.a) },
			func() *Rope[T] { return pzipRec(f, a.b, b.b) },
		)
		n, err := vnode(top, bottom)
		if err != nil {
			panic(err)
		}
		return n
	}

	if a.kind == kHCat {
		bl, br := Hsplit2(b, a.a.cols)
		left, right := par2(
			func() *Rope[T] { return pzipRec(f, a.a, bl) },
			func() *Rope[T] { return pzipRec(f, a.b, br) },
		)
		n, err := hnode(left, right)
		if err != nil {
			panic(err)
		}
		return n
	}
	if a.kind == kVCat {
		bt, bb := Vsplit2(b, a.a.rows)
		top, bottom := par2(
			func() *Rope[T] { return pzipRec(f, a.a, bt) },
			func() *Rope[T] { return pzipRec(f, a.b, bb) },
		)
		n, err := vnode(top, bottom)
		if err != nil {
			panic(err)
		}
		return n
	}
	if b.kind == kHCat {
		al, ar := Hsplit2(a, b.a.cols)
		left, right := par2(
			func() *Rope[T] { return pzipRec(f, al, b.a) },
			func() *Rope[T] { return pzipRec(f, ar, b.b) },
		)
		n, err := hnode(left, right)
		if err != nil {
			panic(err)
		}
		return n
	}
	if b.kind == kVCat {
		at, ab := Vsplit2(a, b.a.rows)
		top, bottom := par2(
			func() *Rope[T] { return pzipRec(f, at, b.a) },
			func() *Rope[T] { return pzipRec(f, ab, b.b) },
		)
		n, err := vnode(top, bottom)
		if err != nil {
			panic(err)
		}
		return n
	}

	return pzipRec(f, materialize(a), materialize(b))
}

// PReduce is the parallel counterpart of Reduce.
func PReduce[T any](f func(T, T) T, eps T, r *Rope[T]) T {
	switch r.kind {
	case kEmpty:
		return eps
	case kSparse:
		return power(f, r.val, r.rows*r.cols, eps)
	case kLeaf:
		return r.leaf.Reduce(f, eps)
	case kSlice:
		return PReduce(f, eps, materialize(r))
	case kHCat, kVCat:
		a, b := par2(
			func() T { return PReduce(f, eps, r.a) },
			func() T { return PReduce(f, eps, r.b) },
		)
		return f(a, b)
	default:
		return eps
	}
}

// PMapReduce is the parallel counterpart of MapReduce.
func PMapReduce[T, R any](f func(T) R, g func(R, R) R, eps R, r *Rope[T]) R {
	switch r.kind {
	case kEmpty:
		return eps
	case kSparse:
		return power(g, f(r.val), r.rows*r.cols, eps)
	case kLeaf:
		acc := eps
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				acc = g(acc, f(r.leaf.At(i, j)))
			}
		}
		return acc
	case kSlice:
		return PMapReduce(f, g, eps, materialize(r))
	case kHCat, kVCat:
		a, b := par2(
			func() R { return PMapReduce(f, g, eps, r.a) },
			func() R { return PMapReduce(f, g, eps, r.b) },
		)
		return g(a, b)
	default:
		return eps
	}
}

// pHmapRangeG is the parallel counterpart of hmapRange, forking the two
// row-range halves.
func pHmapRangeG[T, R any](g func(*Rope[T]) *Rope[R], r *Rope[T], lo, hi int) *Rope[R] {
	if lo >= hi {
		return empty[R]()
	}
	if hi-lo == 1 {
		return g(Vslice(r, lo, 1))
	}
	mid := (lo + hi) / 2
	top, bottom := par2(
		func() *Rope[R] { return pHmapRangeG(g, r, lo, mid) },
		func() *Rope[R] { return pHmapRangeG(g, r, mid, hi) },
	)
	n, err := vnode(top, bottom)
	if err != nil {
		panic(err)
	}
	return vbalance(n)
}

// pVmapRangeG is the parallel counterpart of vmapRange.
func pVmapRangeG[T, R any](g func(*Rope[T]) *Rope[R], r *Rope[T], lo, hi int) *Rope[R] {
	if lo >= hi {
		return empty[R]()
	}
	if hi-lo == 1 {
		return g(Hslice(r, lo, 1))
	}
	mid := (lo + hi) / 2
	left, right := par2(
		func() *Rope[R] { return pVmapRangeG(g, r, lo, mid) },
		func() *Rope[R] { return pVmapRangeG(g, r, mid, hi) },
	)
	n, err := hnode(left, right)
	if err != nil {
		panic(err)
	}
	return hbalance(n)
}

// PHreduce is the parallel counterpart of Hreduce.
func PHreduce[T any](f func(T, T) T, eps T, r *Rope[T]) *Rope[T] {
	return pHmapRangeG(func(row *Rope[T]) *Rope[T] {
		return Singleton(PReduce(f, eps, row))
	}, r, 0, r.rows)
}

// PVreduce is the parallel counterpart of Vreduce.
func PVreduce[T any](f func(T, T) T, eps T, r *Rope[T]) *Rope[T] {
	return pVmapRangeG(func(col *Rope[T]) *Rope[T] {
		return Singleton(PReduce(f, eps, col))
	}, r, 0, r.cols)
}

// PHmapreduce is the parallel counterpart of Hmapreduce.
func PHmapreduce[T, R any](f func(T) R, g func(R, R) R, eps R, r *Rope[T]) *Rope[R] {
	return pHmapRangeG(func(row *Rope[T]) *Rope[R] {
		return Singleton(PMapReduce(f, g, eps, row))
	}, r, 0, r.rows)
}

// PVmapreduce is the parallel counterpart of Vmapreduce.
func PVmapreduce[T, R any](f func(T) R, g func(R, R) R, eps R, r *Rope[T]) *Rope[R] {
	return pVmapRangeG(func(col *Rope[T]) *Rope[R] {
		return Singleton(PMapReduce(f, g, eps, col))
	}, r, 0, r.cols)
}

// PHfilter is the parallel counterpart of Hfilter.
func PHfilter[T any](p func(T) bool, r *Rope[T]) (*Rope[T], error) {
	if r.rows != 1 {
		return nil, opError("phfilter", ErrShapeMismatch, shapeOf(r).String())
	}
	return phfilterRec(p, r), nil
}

func phfilterRec[T any](p func(T) bool, r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSlice:
		return phfilterRec(p, materialize(r))
	case kSparse:
		if p(r.val) {
			return r
		}
		return empty[T]()
	case kLeaf:
		return leafCtor[T](r.leaf.HFilter(p))
	case kHCat:
		a, b := par2(
			func() *Rope[T] { return phfilterRec(p, r.a) },
			func() *Rope[T] { return phfilterRec(p, r.b) },
		)
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// PVfilter is the parallel counterpart of Vfilter.
func PVfilter[T any](p func(T) bool, r *Rope[T]) (*Rope[T], error) {
	if r.cols != 1 {
		return nil, opError("pvfilter", ErrShapeMismatch, shapeOf(r).String())
	}
	return pvfilterRec(p, r), nil
}

func pvfilterRec[T any](p func(T) bool, r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSlice:
		return pvfilterRec(p, materialize(r))
	case kSparse:
		if p(r.val) {
			return r
		}
		return empty[T]()
	case kLeaf:
		return leafCtor[T](r.leaf.VFilter(p))
	case kVCat:
		a, b := par2(
			func() *Rope[T] { return pvfilterRec(p, r.a) },
			func() *Rope[T] { return pvfilterRec(p, r.b) },
		)
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// PHrev is the parallel counterpart of Hrev.
func PHrev[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty, kSparse:
		return r
	case kLeaf:
		return leafCtor[T](r.leaf.HRev())
	case kSlice:
		return PHrev(materialize(r))
	case kHCat:
		b, a := par2(
			func() *Rope[T] { return PHrev(r.b) },
			func() *Rope[T] { return PHrev(r.a) },
		)
		n, err := hnode(b, a)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		a, b := par2(
			func() *Rope[T] { return PHrev(r.a) },
			func() *Rope[T] { return PHrev(r.b) },
		)
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// PVrev is the parallel counterpart of Vrev.
func PVrev[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty, kSparse:
		return r
	case kLeaf:
		return leafCtor[T](r.leaf.VRev())
	case kSlice:
		return PVrev(materialize(r))
	case kHCat:
		a, b := par2(
			func() *Rope[T] { return PVrev(r.a) },
			func() *Rope[T] { return PVrev(r.b) },
		)
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		b, a := par2(
			func() *Rope[T] { return PVrev(r.b) },
			func() *Rope[T] { return PVrev(r.a) },
		)
		n, err := vnode(b, a)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// PTranspose is the parallel counterpart of Transpose.
func PTranspose[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSparse:
		return sparseCtor(r.cols, r.rows, r.val)
	case kLeaf:
		return leafCtor[T](r.leaf.Transpose())
	case kSlice:
		return PTranspose(materialize(r))
	case kHCat:
		a, b := par2(
			func() *Rope[T] { return PTranspose(r.a) },
			func() *Rope[T] { return PTranspose(r.b) },
		)
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		a, b := par2(
			func() *Rope[T] { return PTranspose(r.a) },
			func() *Rope[T] { return PTranspose(r.b) },
		)
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// PMapUntil is the parallel counterpart of MapUntil. Siblings run
// concurrently and share a single Stopped latch. The stop takes effect
// at node granularity rather than per element: a leaf is always mapped
// in full, and if cond holds for any of its mapped values the latch
// trips, so nodes entered afterwards are returned unchanged. Which
// siblings were already mapped when the latch trips depends on
// scheduling.
func PMapUntil[T any](cond func(T) bool, f func(T) T, r *Rope[T]) *Rope[T] {
	latch := fork.NewStopped()
	return pMapUntilRec(cond, f, r, latch)
}

func pMapUntilRec[T any](cond func(T) bool, f func(T) T, r *Rope[T], latch *fork.Stopped) *Rope[T] {
	if latch.Check() {
		return r
	}
	switch r.kind {
	case kEmpty:
		return r
	case kSparse:
		v := f(r.val)
		if cond(v) {
			latch.Stop()
		}
		return sparseCtor(r.rows, r.cols, v)
	case kLeaf:
		vals := make([]T, r.rows*r.cols)
		tripped := false
		k := 0
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				v := f(r.leaf.At(i, j))
				vals[k] = v
				if !tripped && cond(v) {
					tripped = true
				}
				k++
			}
		}
		if tripped {
			latch.Stop()
		}
		return leafCtor[T](tile.FromRowMajor(vals, r.rows, r.cols))
	case kSlice:
		return pMapUntilRec(cond, f, materialize(r), latch)
	case kHCat:
		a, b := par2(
			func() *Rope[T] { return pMapUntilRec(cond, f, r.a, latch) },
			func() *Rope[T] { return pMapUntilRec(cond, f, r.b, latch) },
		)
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		a, b := par2(
			func() *Rope[T] { return pMapUntilRec(cond, f, r.a, latch) },
			func() *Rope[T] { return pMapUntilRec(cond, f, r.b, latch) },
		)
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}
