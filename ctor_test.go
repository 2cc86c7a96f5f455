// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHcatEmptyElimination(t *testing.T) {
	t.Parallel()

	a := Create(2, 3, 1)
	n, err := Hcat(Empty[int](), a)
	require.NoError(t, err)
	require.Same(t, a, n)

	n, err = Hcat(a, Empty[int]())
	require.NoError(t, err)
	require.Same(t, a, n)
}

func TestHcatShapeMismatch(t *testing.T) {
	t.Parallel()

	a := Create(2, 3, 1)
	b := Create(3, 3, 1)
	_, err := Hcat(a, b)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestHcatFusesSmallLeaves(t *testing.T) {
	t.Parallel()

	a, err := FromFlatArray([]int{1, 2}, 2)
	require.NoError(t, err)
	b, err := FromFlatArray([]int{3, 4}, 2)
	require.NoError(t, err)

	n, err := Hcat(a, b)
	require.NoError(t, err)
	require.Equal(t, kLeaf, n.kind, "combined edge %d <= sMax should fuse into one leaf", n.cols)
	got, err := Get(n, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestHcatEqMergesSparse(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }
	a := Create(2, 3, 9)
	b := Create(2, 4, 9)
	n, err := HcatEq(a, b, eq)
	require.NoError(t, err)
	require.Equal(t, kSparse, n.kind)
	require.Equal(t, 7, n.cols)

	other := Create(2, 4, 1)
	n2, err := HcatEq(a, other, eq)
	require.NoError(t, err)
	require.NotEqual(t, kSparse, n2.kind)
}

func TestSliceCtorCollapsesAndFuses(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	whole := sliceCtor(0, 0, 2, 3, r)
	require.Same(t, r, whole, "an exact-cover slice should collapse to r itself")

	zero := sliceCtor(0, 0, 0, 3, r)
	require.True(t, IsEmpty(zero))

	// Slicing a Leaf happens at the tile layer, so a Slice node needs a
	// cat underneath.
	cat, err := hnode(r, r)
	require.NoError(t, err)
	s1 := sliceCtor(0, 1, 2, 2, cat)
	require.Equal(t, kSlice, s1.kind)
	s2 := sliceCtor(1, 1, 1, 1, s1)
	require.Equal(t, s1.i+1, s2.i, "slice-of-slice should fuse offsets by addition")
	require.Equal(t, s1.j+1, s2.j)

	sp := Create(4, 4, 42)
	ss := sliceCtor(1, 1, 2, 2, sp)
	require.Equal(t, kSparse, ss.kind)
	require.Equal(t, 42, ss.val)
}

func TestSliceCtorClampsOutOfBounds(t *testing.T) {
	t.Parallel()

	r := Create(3, 3, 1)
	s := sliceCtor(-2, -2, 4, 4, r)
	require.Equal(t, 2, s.rows)
	require.Equal(t, 2, s.cols)
}
