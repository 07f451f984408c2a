package tree

import "math/bits"

// Height returns the height of the subtree rooted at n.
// A nil subtree has height -1 and a leaf has height 0.
// It walks the whole subtree; trees that cache heights
// should read them instead.
func Height[T, X any](n *Node[T, X]) int {
	if n == nil {
		return -1
	}

	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Balanced returns true if, at every node below n, the heights of
// the left and right subtrees differ by at most 1.
func Balanced[T, X any](n *Node[T, X]) bool {
	return balancedHeight(n) != unbalanced
}

const unbalanced = -2

func balancedHeight[T, X any](n *Node[T, X]) int {
	if n == nil {
		return -1
	}

	l := balancedHeight(n.Left)
	if l == unbalanced {
		return unbalanced
	}
	r := balancedHeight(n.Right)
	if r == unbalanced {
		return unbalanced
	}

	switch d := l - r; {
	case d > 1 || d < -1:
		return unbalanced
	case d > 0:
		return l + 1
	default:
		return r + 1
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func Count[T, X any](n *Node[T, X]) int {
	if n == nil {
		return 0
	}
	return 1 + Count(n.Left) + Count(n.Right)
}

// IdealHeight returns the height of a tree with n nodes when every
// level but the last is full, which is floor(log2(n)).
// It returns -1 for n <= 0.
func IdealHeight(n int) int {
	if n <= 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}
