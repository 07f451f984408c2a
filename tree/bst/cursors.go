package bst

import (
	"go.lepak.sg/bintree/tree"
	"go.lepak.sg/bintree/tree/iterator"
)

// Cursors are invalidated by Insert and Remove*.

func (t *Tree[T]) BeginInOrder() *iterator.InOrder[T, struct{}] {
	return iterator.NewInOrder(t.root)
}

func (t *Tree[T]) EndInOrder() *iterator.InOrder[T, struct{}] {
	return iterator.NewInOrder[T, struct{}](nil)
}

func (t *Tree[T]) BeginPreOrder() *iterator.PreOrder[T, struct{}] {
	return iterator.NewPreOrder(t.root)
}

func (t *Tree[T]) EndPreOrder() *iterator.PreOrder[T, struct{}] {
	return iterator.NewPreOrder[T, struct{}](nil)
}

func (t *Tree[T]) BeginPostOrder() *iterator.PostOrder[T, struct{}] {
	return iterator.NewPostOrder(t.root)
}

func (t *Tree[T]) EndPostOrder() *iterator.PostOrder[T, struct{}] {
	return iterator.NewPostOrder[T, struct{}](nil)
}

func (t *Tree[T]) BeginLevelOrder() *iterator.LevelOrder[T, struct{}] {
	return iterator.NewLevelOrder(t.root)
}

func (t *Tree[T]) EndLevelOrder() *iterator.LevelOrder[T, struct{}] {
	return iterator.NewLevelOrder[T, struct{}](nil)
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

// PreOrder applies f to each key in the tree in pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	for c := t.BeginPreOrder(); !c.Done(); c.Advance() {
		if !f(c.Item()) {
			return
		}
	}
}

// PostOrder applies f to each key in the tree in post-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PostOrder(f func(k T) bool) {
	for c := t.BeginPostOrder(); !c.Done(); c.Advance() {
		if !f(c.Item()) {
			return
		}
	}
}

// LevelOrder applies f to each key in the tree breadth-first.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) LevelOrder(f func(k T) bool) {
	for c := t.BeginLevelOrder(); !c.Done(); c.Advance() {
		if !f(c.Item()) {
			return
		}
	}
}

func visitInOrder[T any](n *tree.Node[T, struct{}], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	if !visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Key) {
		return false
	}

	return visitInOrder(n.Right, f)
}
