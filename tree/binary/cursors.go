package binary

import (
	"go.lepak.sg/bintree/tree/iterator"
)

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
	for c := t.BeginInOrder(); !c.Done(); c.Advance() {
		if !f(c.Item()) {
			return
		}
	}
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
