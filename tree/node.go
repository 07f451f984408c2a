// Package tree holds the plumbing shared by the binary tree
// implementations in this module: the node type, key ordering,
// rotations, and the recursive insert/remove/search routines.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Each node exclusively owns its two
// subtrees; there is no parent link.
// X is extra per-node bookkeeping, for example the cached height
// in an AVL tree. Trees that need nothing use struct{}.
type Node[T, X any] struct {
	Key         T
	Extra       X
	Left, Right *Node[T, X]
}

func NodeOf[T, X any](k T, x X) *Node[T, X] {
	return &Node[T, X]{
		Key:   k,
		Extra: x,
	}
}

func BasicNodeOf[T any](k T) *Node[T, struct{}] {
	return &Node[T, struct{}]{
		Key: k,
	}
}

// IsLeaf returns true if n has no children.
func (n *Node[_, _]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Comparator orders two keys. It must describe a strict weak ordering
// that stays fixed for as long as the keys are in a tree.
//
// Instead of constraints.Ordered everywhere, trees also accept a
// Comparator, so keys can be structs ordered by one field.
// Keys must not be mutated in a way that changes their order while
// they are in a tree. That includes pointer-typed keys whose
// pointee is compared.
type Comparator[T any] func(l, r T) Order

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// FromLess builds a Comparator out of a strict less-than function.
// Two keys are Equal when neither is less than the other.
func FromLess[T any](less func(l, r T) bool) Comparator[T] {
	return func(l, r T) Order {
		if less(l, r) {
			return Less
		} else if less(r, l) {
			return Greater
		} else {
			return Equal
		}
	}
}
