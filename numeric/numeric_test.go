// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package numeric

import (
	"testing"

	"github.com/quadrope/quadrope"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	t.Parallel()

	r, err := quadrope.FromFlatArray([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	require.Equal(t, 10.0, Sum(r))
}

func TestProdShortCircuitsOnSparseZeroLeftOperand(t *testing.T) {
	t.Parallel()

	// Scenario S2: prod(hcat(create(2,3,0), create(2,5,9))) = 0 without
	// evaluating the right operand. huge is large enough that actually
	// visiting every element (instead of short-circuiting on the left
	// Sparse-0 child) would be the dominant cost of this test.
	zeros := quadrope.Create(500, 500, 0.0)
	huge := quadrope.Init(500, 500, func(i, j int) float64 { return float64(i*j + 1) })
	r, err := quadrope.Hcat(zeros, huge)
	require.NoError(t, err)

	require.Equal(t, 0.0, Prod(r))
}

func TestProdOverDenseRope(t *testing.T) {
	t.Parallel()

	r, err := quadrope.FromFlatArray([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	require.Equal(t, 24.0, Prod(r))
}

func TestProdOverEmptyIsOne(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, Prod(quadrope.Empty[float64]()))
}

func TestPointwiseMultipliesElementwise(t *testing.T) {
	t.Parallel()

	a, err := quadrope.FromFlatArray([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	b, err := quadrope.FromFlatArray([]float64{5, 6, 7, 8}, 2)
	require.NoError(t, err)

	out, err := Pointwise(func(x, y float64) float64 { return x * y }, a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 12}, {21, 32}}, quadrope.ToArray2D(out))
}

func TestPointwiseIdentityOnSparseOne(t *testing.T) {
	t.Parallel()

	ones := quadrope.Create(3, 3, 1.0)
	r, err := quadrope.FromFlatArray([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3)
	require.NoError(t, err)

	out, err := Pointwise(func(a, b float64) float64 { return a * b }, ones, r)
	require.NoError(t, err)
	require.Equal(t, quadrope.ToArray2D(r), quadrope.ToArray2D(out))

	out2, err := Pointwise(func(a, b float64) float64 { return a * b }, r, ones)
	require.NoError(t, err)
	require.Equal(t, quadrope.ToArray2D(r), quadrope.ToArray2D(out2))
}

func TestPointwiseAbsorbingOnSparseZero(t *testing.T) {
	t.Parallel()

	huge := quadrope.Init(200, 200, func(i, j int) float64 { return float64(i*j + 1) })
	zeros := quadrope.Create(200, 200, 0.0)

	out, err := Pointwise(func(a, b float64) float64 { return a * b }, zeros, huge)
	require.NoError(t, err)
	require.True(t, quadrope.IsSparse(out))
	v, ok := quadrope.SparseValue(out)
	require.True(t, ok)
	require.Equal(t, 0.0, v)
}

func TestIdentityIsDiagonalOnes(t *testing.T) {
	t.Parallel()

	id := Identity(5)
	got := quadrope.ToArray2D(id)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, got[i][j], "identity[%d][%d]", i, j)
		}
	}
}

func TestUpperLowerDiagonal(t *testing.T) {
	t.Parallel()

	upper := quadrope.ToArray2D(UpperDiagonal(4, 9))
	lower := quadrope.ToArray2D(LowerDiagonal(4, 9))
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if j >= i {
				require.Equal(t, 9.0, upper[i][j])
			} else {
				require.Equal(t, 0.0, upper[i][j])
			}
			if j <= i {
				require.Equal(t, 9.0, lower[i][j])
			} else {
				require.Equal(t, 0.0, lower[i][j])
			}
		}
	}
}
