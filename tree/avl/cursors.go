package avl

import (
	"go.lepak.sg/bintree/tree/iterator"
)

// Cursor factories. BeginXxx returns a cursor positioned on the first
// key in that order, and EndXxx returns the matching end cursor, which
// is always Done. The CBeginXxx and CEndXxx variants are read-only.
//
// A cursor is only valid until the next Insert or Remove* on the tree.

func (t *Tree[T]) BeginInOrder() *iterator.InOrder[T, int] {
	return iterator.NewInOrder(t.root)
}

func (t *Tree[T]) EndInOrder() *iterator.InOrder[T, int] {
	return iterator.NewInOrder[T, int](nil)
}

func (t *Tree[T]) CBeginInOrder() iterator.Const[T, *iterator.InOrder[T, int]] {
	return iterator.MakeConst[T](t.BeginInOrder())
}

func (t *Tree[T]) CEndInOrder() iterator.Const[T, *iterator.InOrder[T, int]] {
	return iterator.MakeConst[T](t.EndInOrder())
}

func (t *Tree[T]) BeginPreOrder() *iterator.PreOrder[T, int] {
	return iterator.NewPreOrder(t.root)
}

func (t *Tree[T]) EndPreOrder() *iterator.PreOrder[T, int] {
	return iterator.NewPreOrder[T, int](nil)
}

func (t *Tree[T]) CBeginPreOrder() iterator.Const[T, *iterator.PreOrder[T, int]] {
	return iterator.MakeConst[T](t.BeginPreOrder())
}

func (t *Tree[T]) CEndPreOrder() iterator.Const[T, *iterator.PreOrder[T, int]] {
	return iterator.MakeConst[T](t.EndPreOrder())
}

func (t *Tree[T]) BeginPostOrder() *iterator.PostOrder[T, int] {
	return iterator.NewPostOrder(t.root)
}

func (t *Tree[T]) EndPostOrder() *iterator.PostOrder[T, int] {
	return iterator.NewPostOrder[T, int](nil)
}

func (t *Tree[T]) CBeginPostOrder() iterator.Const[T, *iterator.PostOrder[T, int]] {
	return iterator.MakeConst[T](t.BeginPostOrder())
}

func (t *Tree[T]) CEndPostOrder() iterator.Const[T, *iterator.PostOrder[T, int]] {
	return iterator.MakeConst[T](t.EndPostOrder())
}

func (t *Tree[T]) BeginLevelOrder() *iterator.LevelOrder[T, int] {
	return iterator.NewLevelOrder(t.root)
}

func (t *Tree[T]) EndLevelOrder() *iterator.LevelOrder[T, int] {
	return iterator.NewLevelOrder[T, int](nil)
}

func (t *Tree[T]) CBeginLevelOrder() iterator.Const[T, *iterator.LevelOrder[T, int]] {
	return iterator.MakeConst[T](t.BeginLevelOrder())
}

func (t *Tree[T]) CEndLevelOrder() iterator.Const[T, *iterator.LevelOrder[T, int]] {
	return iterator.MakeConst[T](t.EndLevelOrder())
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visit[T](t.BeginInOrder(), f)
}

// PreOrder applies f to each key in the tree in pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	visit[T](t.BeginPreOrder(), f)
}

// PostOrder applies f to each key in the tree in post-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PostOrder(f func(k T) bool) {
	visit[T](t.BeginPostOrder(), f)
}

// LevelOrder applies f to each key in the tree breadth-first.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) LevelOrder(f func(k T) bool) {
	visit[T](t.BeginLevelOrder(), f)
}

func visit[T any, C iterator.Reader[T, C]](c C, f func(k T) bool) {
	for ; !c.Done(); c.Advance() {
		if !f(c.Item()) {
			return
		}
	}
}
