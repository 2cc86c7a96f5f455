// Copyright (c) 2025 The quadrope authors
// SPDX-License-Identifier: MIT

package quadrope

import (
	"fmt"
	"strings"
)

// String returns a hierarchical tree diagram of r's node structure,
// one line per node, e.g.:
//
//	▼ 4x6
//	├─ HCat 4x4
//	│  ├─ Leaf 4x2
//	│  └─ Leaf 4x2
//	└─ Sparse 4x2 (0)
func (r *Rope[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "▼ %s\n", shapeOf(r).String())
	fprintRec(&b, r, "")
	return b.String()
}

func fprintRec[T any](b *strings.Builder, r *Rope[T], pad string) {
	children := nodeChildren(r)
	glyphe, spacer := "├─ ", "│  "
	for i, c := range children {
		if i == len(children)-1 {
			glyphe, spacer = "└─ ", "   "
		}
		fmt.Fprintf(b, "%s%s%s\n", pad, glyphe, describe(c))
		fprintRec(b, c, pad+spacer)
	}
}

func nodeChildren[T any](r *Rope[T]) []*Rope[T] {
	switch r.kind {
	case kHCat, kVCat:
		return []*Rope[T]{r.a, r.b}
	case kSlice:
		return []*Rope[T]{r.inner}
	default:
		return nil
	}
}

func describe[T any](r *Rope[T]) string {
	s := shapeOf(r).String()
	switch r.kind {
	case kEmpty:
		return "Empty"
	case kLeaf:
		return fmt.Sprintf("Leaf %s", s)
	case kHCat:
		return fmt.Sprintf("HCat %s", s)
	case kVCat:
		return fmt.Sprintf("VCat %s", s)
	case kSlice:
		return fmt.Sprintf("Slice %s @(%d,%d)", s, r.i, r.j)
	case kSparse:
		return fmt.Sprintf("Sparse %s (%v)", s, r.val)
	default:
		return fmt.Sprintf("? %s", s)
	}
}

// GoString renders a Go-syntax-like single-line description of r's node
// kind and shape, used by %#v formatting and debuggers.
func (r *Rope[T]) GoString() string {
	return fmt.Sprintf("quadrope.%s", describe(r))
}
