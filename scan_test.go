// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bruteSummedArea(vs [][]int) [][]int {
	h := len(vs)
	w := len(vs[0])
	out := make([][]int, h)
	for i := range out {
		out[i] = make([]int, w)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			total := 0
			for a := 0; a <= i; a++ {
				for b := 0; b <= j; b++ {
					total += vs[a][b]
				}
			}
			out[i][j] = total
		}
	}
	return out
}

func TestScanMatchesSummedAreaBruteForce(t *testing.T) {
	t.Parallel()

	vs := [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	r, err := FromArray2D(vs)
	require.NoError(t, err)

	scanned := Scan(
		func(a, b int) int { return a + b },
		func(a, b int) int { return a - b },
		func(int) int { return 0 },
		r,
	)
	require.Equal(t, bruteSummedArea(vs), ToArray2D(scanned))
}

func TestScanAcrossCatBoundary(t *testing.T) {
	t.Parallel()

	vs := [][]int{
		{1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10},
		{11, 12, 13, 14, 15},
	}
	r, err := FromArray2D(vs)
	require.NoError(t, err)

	left, right := Hsplit2(r, 2)
	// Use the raw pseudo-constructor rather than Hcat so the two small
	// leaves are NOT fused back into one, exercising scanRec's HCat
	// boundary-reindexing path rather than the single-leaf fast path.
	cat, err := hnode(left, right)
	require.NoError(t, err)

	scanned := Scan(
		func(a, b int) int { return a + b },
		func(a, b int) int { return a - b },
		func(int) int { return 0 },
		cat,
	)
	require.Equal(t, bruteSummedArea(vs), ToArray2D(scanned))
}

func TestHscanIsRowWisePrefixSum(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	out := Hscan(func(a, b int) int { return a + b }, func(int) int { return 0 }, r)
	require.Equal(t, [][]int{{1, 3, 6}, {4, 9, 15}}, ToArray2D(out))
}

func TestVscanIsColWisePrefixSum(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	out := Vscan(func(a, b int) int { return a + b }, func(int) int { return 0 }, r)
	require.Equal(t, [][]int{{1, 2, 3}, {5, 7, 9}}, ToArray2D(out))
}
