// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

// Hrev mirrors r left-right.
func Hrev[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty, kSparse:
		return r
	case kLeaf:
		return leafCtor[T](r.leaf.HRev())
	case kSlice:
		return Hrev(materialize(r))
	case kHCat:
		n, err := hnode(Hrev(r.b), Hrev(r.a))
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		n, err := vnode(Hrev(r.a), Hrev(r.b))
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// Vrev mirrors r top-bottom.
func Vrev[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty, kSparse:
		return r
	case kLeaf:
		return leafCtor[T](r.leaf.VRev())
	case kSlice:
		return Vrev(materialize(r))
	case kHCat:
		n, err := hnode(Vrev(r.a), Vrev(r.b))
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		n, err := vnode(Vrev(r.b), Vrev(r.a))
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}

// Transpose swaps rows and columns of r: HCat/VCat nodes exchange role,
// leaves transpose at the tile layer, and a Sparse(h, w, v) becomes
// Sparse(w, h, v).
func Transpose[T any](r *Rope[T]) *Rope[T] {
	switch r.kind {
	case kEmpty:
		return r
	case kSparse:
		return sparseCtor(r.cols, r.rows, r.val)
	case kLeaf:
		return leafCtor[T](r.leaf.Transpose())
	case kSlice:
		return Transpose(materialize(r))
	case kHCat:
		n, err := vnode(Transpose(r.a), Transpose(r.b))
		if err != nil {
			panic(err)
		}
		return n
	case kVCat:
		n, err := hnode(Transpose(r.a), Transpose(r.b))
		if err != nil {
			panic(err)
		}
		return n
	default:
		return r
	}
}
