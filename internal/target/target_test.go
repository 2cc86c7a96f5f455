// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowSetAtFreeze(t *testing.T) {
	t.Parallel()

	buf := New[int](3, 3)
	win := buf.Root()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			win.Set(i, j, i*3+j)
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, i*3+j, win.At(i, j))
		}
	}

	tl := win.Freeze()
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, tl.ToRowMajor())
}

func TestSubRightBelowWriteDisjointRegions(t *testing.T) {
	t.Parallel()

	buf := New[int](2, 4)
	root := buf.Root()

	left := root.Sub(0, 0, 2, 2)
	right := root.Right(2)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			left.Set(i, j, 1)
			right.Set(i, j, 2)
		}
	}

	tl := root.Freeze()
	require.Equal(t, []int{1, 1, 2, 2, 1, 1, 2, 2}, tl.ToRowMajor())
}

func TestBelowWritesLowerRows(t *testing.T) {
	t.Parallel()

	buf := New[int](4, 2)
	root := buf.Root()

	top := root.Sub(0, 0, 2, 2)
	bottom := root.Below(2)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			top.Set(i, j, 9)
			bottom.Set(i, j, 1)
		}
	}

	tl := root.Freeze()
	require.Equal(t, []int{9, 9, 9, 9, 1, 1, 1, 1}, tl.ToRowMajor())
}

func TestNewZeroDimIsNil(t *testing.T) {
	t.Parallel()

	require.Nil(t, New[int](0, 5))
	require.Nil(t, New[int](5, 0))
}
