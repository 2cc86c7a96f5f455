// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

// Package target implements the mutable scratch rectangle threaded
// through bulk operations so sibling sub-results write into disjoint
// regions of a single fresh buffer, per the quadrope target-buffer
// design. A Buffer is exclusive to one in-flight operation: it must not
// escape past the call that created it. Once the operation is done, the
// buffer is frozen into tiles via Window.Freeze.
package target

import "github.com/quadrope/quadrope/internal/tile"

// Buffer is the single writable backing array for one bulk operation.
type Buffer[T any] struct {
	data   []T
	stride int
	rows   int
}

// New allocates a fresh h x w scratch buffer.
func New[T any](h, w int) *Buffer[T] {
	if h <= 0 || w <= 0 {
		return nil
	}
	return &Buffer[T]{data: make([]T, h*w), stride: w, rows: h}
}

// Window is a cursor into a Buffer: the rectangle a recursive call is
// responsible for filling.
type Window[T any] struct {
	buf        *Buffer[T]
	i, j, h, w int
}

// Root returns the window covering the whole buffer.
func (b *Buffer[T]) Root() Window[T] {
	return Window[T]{buf: b, h: b.rows, w: b.stride}
}

// Rows and Cols report the window's shape.
func (w Window[T]) Rows() int { return w.h }
func (w Window[T]) Cols() int { return w.w }

// Sub returns the sub-window at local offset (i, j) with size (h, w).
func (w Window[T]) Sub(i, j, h, w2 int) Window[T] {
	return Window[T]{buf: w.buf, i: w.i + i, j: w.j + j, h: h, w: w2}
}

// Right returns the window to the right of a sub-window of width
// leftCols: used when advancing the cursor past the left child of an
// HCat.
func (w Window[T]) Right(leftCols int) Window[T] {
	return Window[T]{buf: w.buf, i: w.i, j: w.j + leftCols, h: w.h, w: w.w - leftCols}
}

// Below returns the window below a sub-window of height topRows: used
// when advancing the cursor past the top child of a VCat.
func (w Window[T]) Below(topRows int) Window[T] {
	return Window[T]{buf: w.buf, i: w.i + topRows, j: w.j, h: w.h - topRows, w: w.w}
}

func (w Window[T]) index(i, j int) int {
	return (w.i+i)*w.buf.stride + (w.j + j)
}

// Set writes v at local coordinates (i, j) of the window.
func (w Window[T]) Set(i, j int, v T) {
	w.buf.data[w.index(i, j)] = v
}

// At reads back the value at local coordinates (i, j); useful for
// imperative sparse-fill during scan.
func (w Window[T]) At(i, j int) T {
	return w.buf.data[w.index(i, j)]
}

// Freeze wraps the window as a tile sharing the (now-immutable-by-
// convention) buffer. Call only after all writers for the buffer have
// finished.
func (w Window[T]) Freeze() tile.Tile[T] {
	return tile.FromStridedBuffer(w.buf.data, w.buf.stride, w.i, w.j, w.h, w.w)
}
