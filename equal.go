// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import "github.com/quadrope/quadrope/internal/tile"

// Equal reports whether a and b have the same shape and, element-wise,
// the same values. Structure need not match: a Sparse 2x3 rope equals an
// HCat of three Sparse 2x1 ropes of the same value.
func Equal[T comparable](a, b *Rope[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	return equalRec(a, b)
}

func equalRec[T comparable](a, b *Rope[T]) bool {
	if a.kind == kEmpty && b.kind == kEmpty {
		return true
	}
	if a.kind == kSparse && b.kind == kSparse {
		return a.val == b.val
	}
	if a.kind == kSlice {
		a = materialize(a)
	}
	if b.kind == kSlice {
		b = materialize(b)
	}
	if a.kind == kLeaf && b.kind == kLeaf {
		return tile.Equal(a.leaf, b.leaf, func(x, y T) bool { return x == y })
	}

	if a.kind == kHCat && b.kind == kHCat && a.a.cols == b.a.cols {
		return equalRec(a.a, b.a) && equalRec(a.b, b.b)
	}
	if a.kind == kVCat && b.kind == kVCat && a.a.rows == b.a.rows {
		return equalRec(a.a, b.a) && equalRec(a.b, b.b)
	}

	if a.kind == kHCat {
		bl, br := Hsplit2(b, a.a.cols)
		return equalRec(a.a, bl) && equalRec(a.b, br)
	}
	if a.kind == kVCat {
		bt, bb := Vsplit2(b, a.a.rows)
		return equalRec(a.a, bt) && equalRec(a.b, bb)
	}
	if b.kind == kHCat {
		al, ar := Hsplit2(a, b.a.cols)
		return equalRec(al, b.a) && equalRec(ar, b.b)
	}
	if b.kind == kVCat {
		at, ab := Vsplit2(a, b.a.rows)
		return equalRec(at, b.a) && equalRec(ab, b.b)
	}

	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if get(a, i, j) != get(b, i, j) {
				return false
			}
		}
	}
	return true
}
