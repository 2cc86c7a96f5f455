// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndAt(t *testing.T) {
	t.Parallel()

	tl := New(2, 3, 7)
	require.Equal(t, 2, tl.Rows())
	require.Equal(t, 3, tl.Cols())
	require.Equal(t, 7, tl.At(1, 2))
}

func TestSetIsCopyOnWrite(t *testing.T) {
	t.Parallel()

	tl := FromRowMajor([]int{1, 2, 3, 4}, 2, 2)
	updated := tl.Set(0, 1, 99)
	require.Equal(t, 2, tl.At(0, 1), "original tile must not be mutated")
	require.Equal(t, 99, updated.At(0, 1))
}

func TestSliceSharesBuffer(t *testing.T) {
	t.Parallel()

	tl := FromRowMajor([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	s := tl.Slice(0, 1, 2, 2)
	require.Equal(t, 2, s.At(0, 0))
	require.Equal(t, 5, s.At(1, 0))
}

func TestHCatVCat(t *testing.T) {
	t.Parallel()

	a := FromRowMajor([]int{1, 2}, 1, 2)
	b := FromRowMajor([]int{3, 4}, 1, 2)
	h := HCat(a, b)
	require.Equal(t, 1, h.Rows())
	require.Equal(t, 4, h.Cols())
	require.Equal(t, []int{1, 2, 3, 4}, h.ToRowMajor())

	c := FromRowMajor([]int{1, 2}, 1, 2)
	d := FromRowMajor([]int{3, 4}, 1, 2)
	v := VCat(c, d)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, []int{1, 2, 3, 4}, v.ToRowMajor())
}

func TestHRevVRevTranspose(t *testing.T) {
	t.Parallel()

	tl := FromRowMajor([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.Equal(t, []int{3, 2, 1, 6, 5, 4}, tl.HRev().ToRowMajor())
	require.Equal(t, []int{4, 5, 6, 1, 2, 3}, tl.VRev().ToRowMajor())

	tr := tl.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.ToRowMajor())
}

func TestScan(t *testing.T) {
	t.Parallel()

	tl := FromRowMajor([]int{1, 2, 3, 4}, 2, 2)
	out := tl.Scan(
		func(a, b int) int { return a + b },
		func(a, b int) int { return a - b },
		func(int) int { return 0 },
		func(int) int { return 0 },
		0,
	)
	require.Equal(t, []int{1, 3, 4, 10}, out.ToRowMajor())
}

func TestHFilterVFilter(t *testing.T) {
	t.Parallel()

	row := FromRowMajor([]int{1, 2, 3, 4, 5}, 1, 5)
	kept := row.HFilter(func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{2, 4}, kept.ToRowMajor())

	col := FromRowMajor([]int{1, 2, 3, 4, 5}, 5, 1)
	keptCol := col.VFilter(func(v int) bool { return v > 3 })
	require.Equal(t, []int{4, 5}, keptCol.ToRowMajor())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := FromRowMajor([]int{1, 2, 3, 4}, 2, 2)
	b := FromRowMajor([]int{1, 2, 3, 4}, 2, 2)
	c := FromRowMajor([]int{1, 2, 3, 5}, 2, 2)
	eq := func(x, y int) bool { return x == y }
	require.True(t, Equal(a, b, eq))
	require.False(t, Equal(a, c, eq))
}

func TestFromStridedBufferShares(t *testing.T) {
	t.Parallel()

	buf := make([]int, 9)
	for i := range buf {
		buf[i] = i
	}
	tl := FromStridedBuffer(buf, 3, 1, 1, 2, 2)
	require.Equal(t, 4, tl.At(0, 0))
	require.Equal(t, 8, tl.At(1, 1))
}
