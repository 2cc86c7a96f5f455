// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import "github.com/quadrope/quadrope/internal/fib"

// hbalance rebalances r along the horizontal axis per spec.md §4.3: if r
// already satisfies the Fibonacci rule it is returned unchanged;
// otherwise the horizontally-adjacent spine is collected bottom-up
// (recursively vbalancing any VCat encountered), then folded pairwise
// left-to-right, halving the piece count each pass, until one rope of
// depth ceil(log2(n)) remains.
func hbalance[T any](r *Rope[T]) *Rope[T] {
	if fib.Balanced(r.depth, r.cols) {
		return r
	}
	return pairUpH(collectHSpine(r))
}

// vbalance is the vertical counterpart of hbalance.
func vbalance[T any](r *Rope[T]) *Rope[T] {
	if fib.Balanced(r.depth, r.rows) {
		return r
	}
	return pairUpV(collectVSpine(r))
}

func collectHSpine[T any](r *Rope[T]) []*Rope[T] {
	switch r.kind {
	case kHCat:
		return append(collectHSpine(r.a), collectHSpine(r.b)...)
	case kVCat:
		return []*Rope[T]{vbalance(r)}
	default:
		return []*Rope[T]{r}
	}
}

func collectVSpine[T any](r *Rope[T]) []*Rope[T] {
	switch r.kind {
	case kVCat:
		return append(collectVSpine(r.a), collectVSpine(r.b)...)
	case kHCat:
		return []*Rope[T]{hbalance(r)}
	default:
		return []*Rope[T]{r}
	}
}

func pairUpH[T any](pieces []*Rope[T]) *Rope[T] {
	for len(pieces) > 1 {
		next := make([]*Rope[T], 0, (len(pieces)+1)/2)
		for i := 0; i < len(pieces); i += 2 {
			if i+1 < len(pieces) {
				n, err := hnode(pieces[i], pieces[i+1])
				if err != nil {
					// Pieces of one original spine always share row
					// count; this would indicate a broken invariant
					// upstream, not a user-facing condition.
					panic(err)
				}
				next = append(next, n)
			} else {
				next = append(next, pieces[i])
			}
		}
		pieces = next
	}
	if len(pieces) == 0 {
		return empty[T]()
	}
	return pieces[0]
}

func pairUpV[T any](pieces []*Rope[T]) *Rope[T] {
	for len(pieces) > 1 {
		next := make([]*Rope[T], 0, (len(pieces)+1)/2)
		for i := 0; i < len(pieces); i += 2 {
			if i+1 < len(pieces) {
				n, err := vnode(pieces[i], pieces[i+1])
				if err != nil {
					panic(err)
				}
				next = append(next, n)
			} else {
				next = append(next, pieces[i])
			}
		}
		pieces = next
	}
	if len(pieces) == 0 {
		return empty[T]()
	}
	return pieces[0]
}
