// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"github.com/quadrope/quadrope/internal/target"
	"github.com/quadrope/quadrope/internal/tile"
)

// Empty returns the canonical zero-area rope.
func Empty[T any]() *Rope[T] {
	return empty[T]()
}

// Singleton returns a 1x1 rope holding v.
func Singleton[T any](v T) *Rope[T] {
	return leafCtor[T](tile.FromRowMajor([]T{v}, 1, 1))
}

// Create returns an h x w rope of the single repeated value v,
// represented without materializing any buffer.
func Create[T any](h, w int, v T) *Rope[T] {
	return sparseCtor(h, w, v)
}

// Init builds an h x w rope whose cell (i, j) holds f(i, j). The result
// is built bottom-up from sMax-bounded leaves sharing one scratch buffer,
// so a naive single oversized leaf never violates the leaf-size
// invariant.
func Init[T any](h, w int, f func(i, j int) T) *Rope[T] {
	return buildDense(h, w, f)
}

func buildDense[T any](h, w int, f func(i, j int) T) *Rope[T] {
	if h <= 0 || w <= 0 {
		return empty[T]()
	}
	buf := target.New[T](h, w)
	return fillInto(f, buf.Root(), 0, 0)
}

func fillInto[T any](f func(i, j int) T, win target.Window[T], rowOff, colOff int) *Rope[T] {
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
		top := fillInto(f, win.Sub(0, 0, mid, w), rowOff, colOff)
		bottom := fillInto(f, win.Below(mid), rowOff+mid, colOff)
		n, err := vnode(top, bottom)
		if err != nil {
			panic(err)
		}
		return vbalance(n)
	}
	mid := w / 2
	left := fillInto(f, win.Sub(0, 0, h, mid), rowOff, colOff)
	right := fillInto(f, win.Right(mid), rowOff, colOff+mid)
	n, err := hnode(left, right)
	if err != nil {
		panic(err)
	}
	return hbalance(n)
}

// FromArray2D builds a rope from a rectangular slice of slices. Every
// row must have the same length or ErrInvalidArgument is returned.
func FromArray2D[T any](vs [][]T) (*Rope[T], error) {
	if len(vs) == 0 {
		return empty[T](), nil
	}
	w := len(vs[0])
	for _, row := range vs {
		if len(row) != w {
			return nil, opError("fromarray2d", ErrInvalidArgument, "ragged rows")
		}
	}
	return buildDense(len(vs), w, func(i, j int) T { return vs[i][j] }), nil
}

// FromFlatArray builds an h x w rope, h = len(vs)/w, from vs read in
// row-major order. w must divide len(vs) evenly; w <= 0 with a non-empty
// vs is an error.
func FromFlatArray[T any](vs []T, w int) (*Rope[T], error) {
	if len(vs) == 0 {
		return empty[T](), nil
	}
	if w <= 0 {
		return nil, opError("fromflatarray", ErrInvalidArgument, "width must be positive")
	}
	if len(vs)%w != 0 {
		return nil, opError("fromflatarray", ErrInvalidArgument, "length not a multiple of width")
	}
	h := len(vs) / w
	return buildDense(h, w, func(i, j int) T { return vs[i*w+j] }), nil
}

// Row returns row i of r as a 1 x cols rope.
func Row[T any](r *Rope[T], i int) *Rope[T] {
	return Vslice(r, i, 1)
}

// Col returns column j of r as a rows x 1 rope.
func Col[T any](r *Rope[T], j int) *Rope[T] {
	return Hslice(r, j, 1)
}

// ToRows splits r into its rows.
func ToRows[T any](r *Rope[T]) []*Rope[T] {
	rows := make([]*Rope[T], r.rows)
	for i := range rows {
		rows[i] = Row(r, i)
	}
	return rows
}

// ToCols splits r into its columns.
func ToCols[T any](r *Rope[T]) []*Rope[T] {
	cols := make([]*Rope[T], r.cols)
	for j := range cols {
		cols[j] = Col(r, j)
	}
	return cols
}

// ToArray2D flattens r into a slice of rows.
func ToArray2D[T any](r *Rope[T]) [][]T {
	if r.rows == 0 || r.cols == 0 {
		return nil
	}
	buf := target.New[T](r.rows, r.cols)
	win := buf.Root()
	writeInto(r, win)
	flat := win.Freeze().ToRowMajor()
	out := make([][]T, r.rows)
	for i := range out {
		out[i] = flat[i*r.cols : (i+1)*r.cols]
	}
	return out
}

// ToFlatArray flattens r into a single row-major slice.
func ToFlatArray[T any](r *Rope[T]) []T {
	if r.rows == 0 || r.cols == 0 {
		return nil
	}
	buf := target.New[T](r.rows, r.cols)
	win := buf.Root()
	writeInto(r, win)
	return win.Freeze().ToRowMajor()
}
