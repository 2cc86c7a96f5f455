// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import "github.com/quadrope/quadrope/internal/tile"

// Zip combines a and b elementwise via f, which must have identical
// shape or ErrShapeMismatch is returned. A fast path matches identical
// structure (equal cats with equally-shaped children, two Sparse nodes,
// a Sparse degenerating to a Map of f with the constant fixed, matching
// leaves); a general path splits the other side to align with whichever
// rope is a cat when the structures differ.
func Zip[T any](f func(T, T) T, a, b *Rope[T]) (*Rope[T], error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, opError("zip", ErrShapeMismatch, shapeOf(a).String()+" vs "+shapeOf(b).String())
	}
	return zipRec(f, a, b), nil
}

func zipRec[T any](f func(T, T) T, a, b *Rope[T]) *Rope[T] {
	if a.kind == kEmpty || b.kind == kEmpty {
		return empty[T]()
	}
	if a.kind == kSlice {
		a = materialize(a)
	}
	if b.kind == kSlice {
		b = materialize(b)
	}

	if a.kind == kSparse && b.kind == kSparse {
		return sparseCtor(a.rows, a.cols, f(a.val, b.val))
	}
	if a.kind == kSparse {
		av := a.val
		return Map(func(v T) T { return f(av, v) }, b)
	}
	if b.kind == kSparse {
		bv := b.val
		return Map(func(v T) T { return f(v, bv) }, a)
	}
	if a.kind == kLeaf && b.kind == kLeaf {
		return leafCtor[T](tile.Map2(a.leaf, b.leaf, f))
	}

	// Fast path: identically-shaped cats recurse pairwise.
	if a.kind == kHCat && b.kind == kHCat && a.a.cols == b.a.cols {
		n, err := hnode(zipRec(f, a.a, b.a), zipRec(f, a.b, b.b))
		if err != nil {
			panic(err)
		}
		return n
	}
	if a.kind == kVCat && b.kind == kVCat && a.a.rows == b.a.rows {
		n, err := vnode(zipRec(f, a.a, b.a), zipRec(f, a.b, b.b))
		if err != nil {
			panic(err)
		}
		return n
	}

	// General path: split whichever side is a cat to align with the
	// other's decomposition.
	if a.kind == kHCat {
		bl, br := Hsplit2(b, a.a.cols)
		n, err := hnode(zipRec(f, a.a, bl), zipRec(f, a.b, br))
		if err != nil {
			panic(err)
		}
		return n
	}
	if a.kind == kVCat {
		bt, bb := Vsplit2(b, a.a.rows)
		n, err := vnode(zipRec(f, a.a, bt), zipRec(f, a.b, bb))
		if err != nil {
			panic(err)
		}
		return n
	}
	if b.kind == kHCat {
		al, ar := Hsplit2(a, b.a.cols)
		n, err := hnode(zipRec(f, al, b.a), zipRec(f, ar, b.b))
		if err != nil {
			panic(err)
		}
		return n
	}
	if b.kind == kVCat {
		at, ab := Vsplit2(a, b.a.rows)
		n, err := vnode(zipRec(f, at, b.a), zipRec(f, ab, b.b))
		if err != nil {
			panic(err)
		}
		return n
	}

	return zipRec(f, materialize(a), materialize(b))
}
