// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

// Package tile implements the dense rectangular leaf storage used by the
// quadrope engine: an owned row-major buffer plus an origin-and-size view
// onto it, the array slice of the design.
package tile

import "iter"

// Tile is a rectangular view (i0, j0, h, w) onto an owned row-major buffer.
// Multiple tiles may share the same buffer; the buffer is never mutated
// once a Tile has been handed to a caller outside this package, except
// through the target package's scratch-buffer freeze.
type Tile[T any] struct {
	buf     []T // row-major, length == stride*bufRows
	stride  int // buffer width, i.e. elements per buffer row
	i0, j0  int
	h, w    int
}

// New allocates a fresh h x w tile filled with v.
func New[T any](h, w int, v T) Tile[T] {
	if h <= 0 || w <= 0 {
		return Tile[T]{}
	}
	buf := make([]T, h*w)
	for i := range buf {
		buf[i] = v
	}
	return Tile[T]{buf: buf, stride: w, h: h, w: w}
}

// FromRowMajor wraps vals (length h*w, row-major) as a tile. vals is taken
// as the tile's owned buffer; callers must not retain it.
func FromRowMajor[T any](vals []T, h, w int) Tile[T] {
	if h <= 0 || w <= 0 {
		return Tile[T]{}
	}
	return Tile[T]{buf: vals, stride: w, h: h, w: w}
}

// FromStridedBuffer wraps a window (i0, j0, h, w) of a larger row-major
// buffer of the given stride as a tile, sharing the buffer rather than
// copying it. Used by the target package to freeze a scratch window
// without a final copy.
func FromStridedBuffer[T any](buf []T, stride, i0, j0, h, w int) Tile[T] {
	if h <= 0 || w <= 0 {
		return Tile[T]{}
	}
	return Tile[T]{buf: buf, stride: stride, i0: i0, j0: j0, h: h, w: w}
}

// Rows reports the tile's height.
func (t Tile[T]) Rows() int { return t.h }

// Cols reports the tile's width.
func (t Tile[T]) Cols() int { return t.w }

// IsZero reports whether t has zero area.
func (t Tile[T]) IsZero() bool { return t.h == 0 || t.w == 0 }

func (t Tile[T]) index(i, j int) int {
	return (t.i0+i)*t.stride + (t.j0 + j)
}

// At returns the element at local coordinates (i, j).
func (t Tile[T]) At(i, j int) T {
	return t.buf[t.index(i, j)]
}

// Set returns a new tile, copy-on-write, equal to t except at (i, j).
func (t Tile[T]) Set(i, j int, v T) Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.w, h: t.h, w: t.w}
	for r := 0; r < t.h; r++ {
		for c := 0; c < t.w; c++ {
			buf[out.index(r, c)] = t.At(r, c)
		}
	}
	buf[out.index(i, j)] = v
	return out
}

// Slice returns a view of t's sub-rectangle starting at (i, j) with size
// h x w; it shares t's buffer. Caller is responsible for bounds.
func (t Tile[T]) Slice(i, j, h, w int) Tile[T] {
	if h <= 0 || w <= 0 {
		return Tile[T]{}
	}
	return Tile[T]{buf: t.buf, stride: t.stride, i0: t.i0 + i, j0: t.j0 + j, h: h, w: w}
}

// HCat concatenates a and b horizontally into one freshly allocated
// tile. Both must have equal height.
func HCat[T any](a, b Tile[T]) Tile[T] {
	h := a.h
	w := a.w + b.w
	buf := make([]T, h*w)
	out := Tile[T]{buf: buf, stride: w, h: h, w: w}
	for i := 0; i < h; i++ {
		for j := 0; j < a.w; j++ {
			buf[out.index(i, j)] = a.At(i, j)
		}
		for j := 0; j < b.w; j++ {
			buf[out.index(i, a.w+j)] = b.At(i, j)
		}
	}
	return out
}

// VCat concatenates a and b vertically into one freshly allocated tile.
// Both must have equal width.
func VCat[T any](a, b Tile[T]) Tile[T] {
	h := a.h + b.h
	w := a.w
	buf := make([]T, h*w)
	out := Tile[T]{buf: buf, stride: w, h: h, w: w}
	for i := 0; i < a.h; i++ {
		for j := 0; j < w; j++ {
			buf[out.index(i, j)] = a.At(i, j)
		}
	}
	for i := 0; i < b.h; i++ {
		for j := 0; j < w; j++ {
			buf[out.index(a.h+i, j)] = b.At(i, j)
		}
	}
	return out
}

// HRev reverses t along its column axis (mirrors left-right).
func (t Tile[T]) HRev() Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.w, h: t.h, w: t.w}
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			buf[out.index(i, j)] = t.At(i, t.w-1-j)
		}
	}
	return out
}

// VRev reverses t along its row axis (mirrors top-bottom).
func (t Tile[T]) VRev() Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.w, h: t.h, w: t.w}
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			buf[out.index(i, j)] = t.At(t.h-1-i, j)
		}
	}
	return out
}

// Transpose returns the w x h transpose of t.
func (t Tile[T]) Transpose() Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.h, h: t.w, w: t.h}
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			buf[out.index(j, i)] = t.At(i, j)
		}
	}
	return out
}

// Map applies f to every element, returning a freshly allocated tile.
func (t Tile[T]) Map(f func(T) T) Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.w, h: t.h, w: t.w}
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			buf[out.index(i, j)] = f(t.At(i, j))
		}
	}
	return out
}

// Map2 applies f pairwise across two equally-shaped tiles.
func Map2[T any](a, b Tile[T], f func(T, T) T) Tile[T] {
	buf := make([]T, a.h*a.w)
	out := Tile[T]{buf: buf, stride: a.w, h: a.h, w: a.w}
	for i := 0; i < a.h; i++ {
		for j := 0; j < a.w; j++ {
			buf[out.index(i, j)] = f(a.At(i, j), b.At(i, j))
		}
	}
	return out
}

// Reduce folds f over every element of t in reading order, starting from
// seed.
func (t Tile[T]) Reduce(f func(T, T) T, seed T) T {
	acc := seed
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			acc = f(acc, t.At(i, j))
		}
	}
	return acc
}

// HScan computes the row-wise prefix sum of t using plus, seeded per row
// by left(row).
func (t Tile[T]) HScan(plus func(T, T) T, left func(row int) T) Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.w, h: t.h, w: t.w}
	for i := 0; i < t.h; i++ {
		acc := left(i)
		for j := 0; j < t.w; j++ {
			acc = plus(acc, t.At(i, j))
			buf[out.index(i, j)] = acc
		}
	}
	return out
}

// VScan computes the column-wise prefix sum of t using plus, seeded per
// column by top(col).
func (t Tile[T]) VScan(plus func(T, T) T, top func(col int) T) Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.w, h: t.h, w: t.w}
	for j := 0; j < t.w; j++ {
		acc := top(j)
		for i := 0; i < t.h; i++ {
			acc = plus(acc, t.At(i, j))
			buf[out.index(i, j)] = acc
		}
	}
	return out
}

// Scan computes the 2-D summed-area recurrence over t, with topLeft(j)
// giving the prefix for the (conceptual) row above row 0 and leftOf(i)
// giving the prefix for the column left of column 0.
func (t Tile[T]) Scan(plus func(T, T) T, minus func(T, T) T, topLeft func(j int) T, leftOf func(i int) T, cornerAbove T) Tile[T] {
	buf := make([]T, t.h*t.w)
	out := Tile[T]{buf: buf, stride: t.w, h: t.h, w: t.w}
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			var up, left, upleft T
			if i == 0 {
				up = topLeft(j)
			} else {
				up = out.At(i-1, j)
			}
			if j == 0 {
				left = leftOf(i)
			} else {
				left = out.At(i, j-1)
			}
			if i == 0 && j == 0 {
				upleft = cornerAbove
			} else if i == 0 {
				upleft = topLeft(j - 1)
			} else if j == 0 {
				upleft = leftOf(i - 1)
			} else {
				upleft = out.At(i-1, j-1)
			}
			buf[out.index(i, j)] = minus(plus(plus(t.At(i, j), up), left), upleft)
		}
	}
	return out
}

// HFilter keeps only the columns of a single-row tile for which p holds.
func (t Tile[T]) HFilter(p func(T) bool) Tile[T] {
	kept := make([]T, 0, t.w)
	for j := 0; j < t.w; j++ {
		if v := t.At(0, j); p(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return Tile[T]{}
	}
	return FromRowMajor(kept, 1, len(kept))
}

// VFilter keeps only the rows of a single-column tile for which p holds.
func (t Tile[T]) VFilter(p func(T) bool) Tile[T] {
	kept := make([]T, 0, t.h)
	for i := 0; i < t.h; i++ {
		if v := t.At(i, 0); p(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return Tile[T]{}
	}
	return FromRowMajor(kept, len(kept), 1)
}

// All iterates every cell of t in reading order.
func (t Tile[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for i := 0; i < t.h; i++ {
			for j := 0; j < t.w; j++ {
				if !yield([2]int{i, j}, t.At(i, j)) {
					return
				}
			}
		}
	}
}

// ToRowMajor copies t's contents into a flat row-major slice.
func (t Tile[T]) ToRowMajor() []T {
	out := make([]T, t.h*t.w)
	k := 0
	for i := 0; i < t.h; i++ {
		for j := 0; j < t.w; j++ {
			out[k] = t.At(i, j)
			k++
		}
	}
	return out
}

// Equal reports whether a and b have the same shape and, per eq, the
// same contents.
func Equal[T any](a, b Tile[T], eq func(T, T) bool) bool {
	if a.h != b.h || a.w != b.w {
		return false
	}
	for i := 0; i < a.h; i++ {
		for j := 0; j < a.w; j++ {
			if !eq(a.At(i, j), b.At(i, j)) {
				return false
			}
		}
	}
	return true
}
