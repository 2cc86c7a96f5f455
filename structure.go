// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import "github.com/quadrope/quadrope/internal/target"

// Slice returns the sub-rectangle of r starting at (i, j) with size
// h x w, clamped to r's bounds.
func Slice[T any](r *Rope[T], i, j, h, w int) *Rope[T] {
	return sliceCtor(i, j, h, w, r)
}

// Hslice returns the columns [j, j+w) of r, all rows.
func Hslice[T any](r *Rope[T], j, w int) *Rope[T] {
	return sliceCtor(0, j, r.rows, w, r)
}

// Vslice returns the rows [i, i+h) of r, all columns.
func Vslice[T any](r *Rope[T], i, h int) *Rope[T] {
	return sliceCtor(i, 0, h, r.cols, r)
}

// Hsplit2 splits r into two ropes at column at: [0, at) and [at, cols).
func Hsplit2[T any](r *Rope[T], at int) (*Rope[T], *Rope[T]) {
	return sliceCtor(0, 0, r.rows, at, r), sliceCtor(0, at, r.rows, r.cols-at, r)
}

// Vsplit2 splits r into two ropes at row at: [0, at) and [at, rows).
func Vsplit2[T any](r *Rope[T], at int) (*Rope[T], *Rope[T]) {
	return sliceCtor(0, 0, at, r.cols, r), sliceCtor(at, 0, r.rows-at, r.cols, r)
}

// Split4 splits r into its four quadrant positions around (atRow,
// atCol): northwest, northeast, southwest, southeast.
func Split4[T any](r *Rope[T], atRow, atCol int) (nw, ne, sw, se *Rope[T]) {
	top, bottom := Vsplit2(r, atRow)
	nw, ne = Hsplit2(top, atCol)
	sw, se = Hsplit2(bottom, atCol)
	return
}

// Materialize resolves every Slice frame in r (outermost and nested)
// into proper, non-sliced leaves while preserving r's internal HCat/
// VCat structure. No new element buffers are allocated beyond what
// slicing a Leaf or Sparse requires.
func Materialize[T any](r *Rope[T]) *Rope[T] {
	return materialize(r)
}

func materialize[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kSlice:
		return materializeSlice(r.i, r.j, r.rows, r.cols, r.inner)
	case kHCat:
		a := materialize(r.a)
		b := materialize(r.b)
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		a := materialize(r.a)
		b := materialize(r.b)
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

func materializeSlice[T any](i, j, h, w int, inner *Rope[T]) *Rope[T] {
	if h <= 0 || w <= 0 || inner.kind == kEmpty {
		return empty[T]()
	}
	if i == 0 && j == 0 && h == inner.rows && w == inner.cols {
		return materialize(inner)
	}
	switch inner.kind {
	case kLeaf:
		return leafCtor[T](inner.leaf.Slice(i, j, h, w))
	case kSparse:
		return sparseCtor(h, w, inner.val)
	case kSlice:
		return materializeSlice(inner.i+i, inner.j+j, h, w, inner.inner)
	case kHCat:
		var left, right *Rope[T]
		if j < inner.a.cols {
			lw := w
			if j+lw > inner.a.cols {
				lw = inner.a.cols - j
			}
			left = materializeSlice(i, j, h, lw, inner.a)
			if rw := j + w - inner.a.cols; rw > 0 {
				right = materializeSlice(i, 0, h, rw, inner.b)
			}
		} else {
			right = materializeSlice(i, j-inner.a.cols, h, w, inner.b)
		}
		return joinOrEmpty(left, right, hnode[T])
	case kVCat:
		var top, bottom *Rope[T]
		if i < inner.a.rows {
			th := h
			if i+th > inner.a.rows {
				th = inner.a.rows - i
			}
			top = materializeSlice(i, j, th, w, inner.a)
			if bh := i + h - inner.a.rows; bh > 0 {
				bottom = materializeSlice(0, j, bh, w, inner.b)
			}
		} else {
			bottom = materializeSlice(i-inner.a.rows, j, h, w, inner.b)
		}
		return joinOrEmpty(top, bottom, vnode[T])
	default:
		return empty[T]()
	}
}

func joinOrEmpty[T any](a, b *Rope[T], join func(*Rope[T], *Rope[T]) (*Rope[T], error)) *Rope[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	n, err := join(a, b)
	if err != nil {
		panic(err)
	}
	return n
}

// Reallocate flattens r into a single dense leaf rope backed by one
// fresh buffer, materializing every slice and cat in the process.
// Useful before a burst of random-access Get calls on a deeply sliced
// or fragmented rope.
func Reallocate[T any](r *Rope[T]) *Rope[T] {
	if r.rows == 0 || r.cols == 0 {
		return empty[T]()
	}
	buf := target.New[T](r.rows, r.cols)
	win := buf.Root()
	writeInto(r, win)
	return leafCtor[T](win.Freeze())
}

func writeInto[T any](r *Rope[T], win target.Window[T]) {
	switch r.kind {
	case kEmpty:
		return
	case kLeaf:
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				win.Set(i, j, r.leaf.At(i, j))
			}
		}
	case kSparse:
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				win.Set(i, j, r.val)
			}
		}
	case kSlice:
		writeInto(materialize(r), win)
	case kHCat:
		writeInto(r.a, win.Sub(0, 0, r.rows, r.a.cols))
		writeInto(r.b, win.Right(r.a.cols))
	case kVCat:
		writeInto(r.a, win.Sub(0, 0, r.a.rows, r.cols))
		writeInto(r.b, win.Below(r.a.rows))
	}
}

// Compress scans r for leaves and cats whose contents are a single
// repeated value and rewrites them as Sparse nodes. Every operation
// commutes with Compress: compressing before or after an operation
// yields element-wise identical ropes (spec.md §8 property 8).
func Compress[T comparable](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kLeaf:
		if r.rows == 0 || r.cols == 0 {
			return r
		}
		first := r.leaf.At(0, 0)
		for i := 0; i < r.rows; i++ {
			for j := 0; j < r.cols; j++ {
				if r.leaf.At(i, j) != first {
					return r
				}
			}
		}
		return sparseCtor(r.rows, r.cols, first)
	case kHCat:
		a := Compress(r.a)
		b := Compress(r.b)
		if a.kind == kSparse && b.kind == kSparse && a.val == b.val {
			return sparseCtor(a.rows, a.cols+b.cols, a.val)
		}
		n, err := hnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		a := Compress(r.a)
		b := Compress(r.b)
		if a.kind == kSparse && b.kind == kSparse && a.val == b.val {
			return sparseCtor(a.rows+b.rows, a.cols, a.val)
		}
		n, err := vnode(a, b)
		if err != nil {
			panic(err)
		}
		return n
	case kSlice:
		return Compress(materialize(r))
	default:
		return r
	}
}
