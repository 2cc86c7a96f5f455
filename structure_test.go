// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func flatOf(t *testing.T, r *Rope[int]) [][]int {
	t.Helper()
	return ToArray2D(r)
}

func TestSliceMatchesBruteForce(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, 4)
	require.NoError(t, err)

	s := Slice(r, 1, 1, 2, 2)
	require.Equal(t, [][]int{{5, 6}, {9, 10}}, flatOf(t, s))
}

func TestSplit4Covers(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3)
	require.NoError(t, err)

	nw, ne, sw, se := Split4(r, 1, 2)
	require.Equal(t, [][]int{{1, 2}}, flatOf(t, nw))
	require.Equal(t, [][]int{{3}}, flatOf(t, ne))
	require.Equal(t, [][]int{{4, 5}, {7, 8}}, flatOf(t, sw))
	require.Equal(t, [][]int{{6}, {9}}, flatOf(t, se))
}

func TestMaterializeAndReallocatePreserveContents(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 4)
	require.NoError(t, err)
	sliced := Slice(r, 1, 1, 2, 2)

	mat := Materialize(sliced)
	require.Equal(t, flatOf(t, sliced), flatOf(t, mat))
	require.NotEqual(t, kSlice, mat.kind)

	realloc := Reallocate(sliced)
	require.Equal(t, flatOf(t, sliced), flatOf(t, realloc))
	require.Equal(t, kLeaf, realloc.kind)
}

func TestCompressCollapsesUniformRegions(t *testing.T) {
	t.Parallel()

	r, err := FromArray2D([][]int{
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	c := Compress(r)
	require.True(t, IsSparse(c))
	require.Equal(t, flatOf(t, r), flatOf(t, c))
}

func TestCompressMergesAdjacentEqualSparse(t *testing.T) {
	t.Parallel()

	a := Create(2, 2, 5)
	b := Create(2, 2, 5)
	n, err := hnode(a, b)
	require.NoError(t, err)

	c := Compress(n)
	require.Equal(t, kSparse, c.kind)
	require.Equal(t, 4, c.cols)
}
