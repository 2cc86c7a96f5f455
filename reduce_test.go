// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceSum(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	sum := Reduce(func(a, b int) int { return a + b }, 0, r)
	require.Equal(t, 21, sum)
}

func TestReduceOverLargeSparseBlock(t *testing.T) {
	t.Parallel()

	r := Create(1000, 1000, 7)
	sum := Reduce(func(a, b int) int { return a + b }, 0, r)
	require.Equal(t, 7_000_000, sum)

	count := MapReduce(func(int) int { return 1 }, func(a, b int) int { return a + b }, 0, r)
	require.Equal(t, 1_000_000, count)
}

func TestPowerMatchesRepeatedFold(t *testing.T) {
	t.Parallel()

	add := func(a, b int) int { return a + b }
	for _, n := range []int{0, 1, 2, 3, 7, 16, 37} {
		want := 0
		for i := 0; i < n; i++ {
			want += 5
		}
		require.Equal(t, want, power(add, 5, n, 0), "n=%d", n)
	}
}

func TestReduceEmptyReturnsIdentity(t *testing.T) {
	t.Parallel()

	require.Equal(t, 42, Reduce(func(a, b int) int { return a + b }, 42, Empty[int]()))
}

func TestMapReduceMatchesMapThenReduce(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	fused := MapReduce(func(v int) int { return v * v }, func(a, b int) int { return a + b }, 0, r)
	staged := Reduce(func(a, b int) int { return a + b }, 0, Map(func(v int) int { return v * v }, r))
	require.Equal(t, staged, fused)
}

func TestHreduceVreduce(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	rowSums := Hreduce(func(a, b int) int { return a + b }, 0, r)
	require.Equal(t, [][]int{{6}, {15}}, ToArray2D(rowSums))

	colSums := Vreduce(func(a, b int) int { return a + b }, 0, r)
	require.Equal(t, [][]int{{5, 7, 9}}, ToArray2D(colSums))
}

func TestHmapreduceVmapreduceChangeType(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	rowLens := Hmapreduce(
		func(v int) string { return "x" },
		func(a, b string) string { return a + b },
		"",
		r,
	)
	require.Equal(t, 2, Rows(rowLens))
	v, err := Get(rowLens, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "xxx", v)

	colLens := Vmapreduce(
		func(v int) string { return "y" },
		func(a, b string) string { return a + b },
		"",
		r,
	)
	require.Equal(t, 3, Cols(colLens))
	v, err = Get(colLens, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "yy", v)
}
