// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSetRoundTrip(t *testing.T) {
	t.Parallel()

	r, err := FromFlatArray([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, 3)
	require.NoError(t, err)

	updated, err := Set(r, 1, 1, 99)
	require.NoError(t, err)

	got, err := Get(updated, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 99, got)

	orig, err := Get(r, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, orig, "Set must not mutate the original rope")

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == 1 && j == 1 {
				continue
			}
			v, err := Get(updated, i, j)
			require.NoError(t, err)
			want, _ := Get(r, i, j)
			require.Equal(t, want, v)
		}
	}
}

func TestGetSetOutOfBounds(t *testing.T) {
	t.Parallel()

	r := Create(2, 2, 1)
	_, err := Get(r, 5, 0)
	require.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = Set(r, -1, 0, 2)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestSetOnSparseMaterializesSingleCell(t *testing.T) {
	t.Parallel()

	r := Create(4, 4, 7)
	updated, err := Set(r, 2, 2, 0)
	require.NoError(t, err)
	require.Equal(t, kLeaf, updated.kind)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := Get(updated, i, j)
			require.NoError(t, err)
			if i == 2 && j == 2 {
				require.Equal(t, 0, v)
			} else {
				require.Equal(t, 7, v)
			}
		}
	}
}

func FuzzGetSetRoundTrip(f *testing.F) {
	f.Add(4, 4, 2, 1, 9)
	f.Fuzz(func(t *testing.T, h, w, i, j, v int) {
		if h <= 0 || w <= 0 || h > 64 || w > 64 {
			t.Skip()
		}
		i = ((i % h) + h) % h
		j = ((j % w) + w) % w

		r := Init(h, w, func(a, b int) int { return a*w + b })
		updated, err := Set(r, i, j, v)
		if err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := Get(updated, i, j)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != v {
			t.Fatalf("round trip: got %d, want %d", got, v)
		}
	})
}
