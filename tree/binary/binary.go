// Package binary implements a plain binary tree that is kept complete
// by filling it in level order, and reconstruction of binary trees
// from their traversals.
package binary

import (
	"go.lepak.sg/bintree/queue"
	"go.lepak.sg/bintree/tree"
)

// Tree is a binary tree with no ordering between keys.
// Insert fills the tree level by level, left to right, so a tree
// built only with Insert and Remove is always complete.
// Searching visits nodes in level order and is O(n).
//
// The zero Tree may be used immediately.
type Tree[T comparable] struct {
	root  *tree.Node[T, struct{}]
	count int
}

// Insert places k in the first free child slot in level order.
func (t *Tree[T]) Insert(k T) {
	t.count++
	newnode := tree.BasicNodeOf(k)

	if t.root == nil {
		t.root = newnode
		return
	}

	q := queue.New[*tree.Node[T, struct{}]]()
	q.Enqueue(t.root)
	for {
		n, _ := q.Dequeue()

		if n.Left == nil {
			n.Left = newnode
			return
		}
		q.Enqueue(n.Left)

		if n.Right == nil {
			n.Right = newnode
			return
		}
		q.Enqueue(n.Right)
	}
}

// Contains searches for k in level order and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	found := false
	t.levelOrder(func(n, _ *tree.Node[T, struct{}]) bool {
		found = n.Key == k
		return !found
	})
	return found
}

// Remove removes the first node with key k found in level order.
// The deepest, rightmost node's key takes its place and that node is
// detached, which keeps a complete tree complete.
// It returns false if k was not found.
func (t *Tree[T]) Remove(k T) bool {
	var target, last, lastParent *tree.Node[T, struct{}]
	t.levelOrder(func(n, parent *tree.Node[T, struct{}]) bool {
		if target == nil && n.Key == k {
			target = n
		}
		last, lastParent = n, parent
		return true
	})

	if target == nil {
		return false
	}

	target.Key = last.Key
	switch {
	case lastParent == nil:
		t.root = nil
	case lastParent.Right == last:
		lastParent.Right = nil
	default:
		lastParent.Left = nil
	}

	t.count--
	return true
}

type frame[T any] struct {
	n, parent *tree.Node[T, struct{}]
}

// levelOrder calls f with every node and its parent in level order
// until f returns false.
func (t *Tree[T]) levelOrder(f func(n, parent *tree.Node[T, struct{}]) bool) {
	if t.root == nil {
		return
	}

	q := queue.New[frame[T]]()
	q.Enqueue(frame[T]{n: t.root})
	for !q.IsEmpty() {
		fr, _ := q.Dequeue()
		if !f(fr.n, fr.parent) {
			return
		}

		if fr.n.Left != nil {
			q.Enqueue(frame[T]{fr.n.Left, fr.n})
		}
		if fr.n.Right != nil {
			q.Enqueue(frame[T]{fr.n.Right, fr.n})
		}
	}
}

// Height returns the actual height of the tree and the height it
// would have if it were complete. Both are -1 for an empty tree.
func (t *Tree[T]) Height() (actual, ideal int) {
	return tree.Height(t.root), tree.IdealHeight(t.count)
}

// Balanced returns true if the left and right subtrees of every node
// differ in height by at most 1.
func (t *Tree[T]) Balanced() bool {
	return tree.Balanced(t.root)
}

func (t *Tree[_]) Len() int {
	return t.count
}

// String returns a string representation of the tree.
// See tree.Sprint for the format.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root)
}
