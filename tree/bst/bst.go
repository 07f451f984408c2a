// Package bst implements an unbalanced binary search tree.
package bst

import (
	"go.lepak.sg/bintree/chops"
	"go.lepak.sg/bintree/tree"
	"go.lepak.sg/bintree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, removing).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree is not self-balancing, so its height depends entirely on
// the insertion order.
//
// Invariants:
//  - At any node N in the tree, all node keys in the subtree rooted at N.Left
//    are less than N.Key
//  - At any node N in the tree, all node keys in the subtree rooted at N.Right
//    are not less than N.Key
type Tree[T constraints.Ordered] struct {
	// don't return nodes directly - client could mutate data or children!
	root  *tree.Node[T, struct{}]
	count int
}

// Insert inserts k into the tree. Duplicates are allowed and are
// placed to the right of keys equal to them.
func (t *Tree[T]) Insert(k T) {
	t.root = tree.Insert(t.root, k, struct{}{}, tree.Compare[T], nil)
	t.count++
}

// RemoveFirst removes one key equal to k, the first one found on the
// search path from the root.
func (t *Tree[T]) RemoveFirst(k T) (removed T, ok bool) {
	t.root, removed, ok = tree.Remove(t.root, k, tree.Compare[T], nil)
	if ok {
		t.count--
	}
	return
}

// RemoveMinimum removes and returns the smallest key.
func (t *Tree[T]) RemoveMinimum() (k T, ok bool) {
	if t.root == nil {
		return
	}

	t.root, k = tree.RemoveMin[T, struct{}](t.root, nil)
	t.count--
	return k, true
}

// RemoveMaximum removes and returns the largest key.
func (t *Tree[T]) RemoveMaximum() (k T, ok bool) {
	if t.root == nil {
		return
	}

	t.root, k = tree.RemoveMax[T, struct{}](t.root, nil)
	t.count--
	return k, true
}

// RemoveAll empties the tree and returns its keys in post-order.
func (t *Tree[T]) RemoveAll() []T {
	out := make([]T, 0, t.count)
	t.PostOrder(func(k T) bool {
		out = append(out, k)
		return true
	})

	t.root, t.count = nil, 0
	return out
}

// FindFirst returns the first key equal to k on the search path.
func (t *Tree[T]) FindFirst(k T) (found T, ok bool) {
	n, ok := tree.Find(t.root, k, tree.Compare[T])
	if !ok {
		return
	}
	return n.Key, true
}

func (t *Tree[T]) FindMinimum() (k T, ok bool) {
	n := tree.Min(t.root)
	if n == nil {
		return
	}
	return n.Key, true
}

func (t *Tree[T]) FindMaximum() (k T, ok bool) {
	n := tree.Max(t.root)
	if n == nil {
		return
	}
	return n.Key, true
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	_, ok := tree.Find(t.root, k, tree.Compare[T])
	return ok
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Every time the search goes right, the node it leaves behind
	// is less than k and larger than any such node seen before.
	n := t.root
	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Greater:
			p, ok = n.Key, true
			n = n.Right
		case tree.Less, tree.Equal:
			n = n.Left
		default:
			panic("unreachable")
		}
	}

	return
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

func (t *Tree[_]) IsEmpty() bool {
	return t.root == nil
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return chops.CoIterate[T](iterator.Iter[T](t.BeginInOrder()))
}

// String returns a string representation of the tree.
// See tree.Sprint for the format.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root)
}
