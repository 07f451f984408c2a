// Package avl implements a self-balancing binary search tree.
//
// After every insertion and removal, each node on the path back to the
// root is checked, and rotated if the heights of its two subtrees differ
// by more than one. This keeps the height of a tree of n nodes within
// about 1.44*log2(n), so Insert, Remove* and Find* are O(log n).
package avl

import (
	"go.lepak.sg/bintree/chops"
	"go.lepak.sg/bintree/tree"
	"go.lepak.sg/bintree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree. It is not safe for concurrent use;
// callers must serialize access themselves.
//
// Duplicate keys are allowed. A key comparing equal to one already
// in the tree is inserted to its right, so an in-order walk is always
// sorted.
//
// Use New or NewFunc to create a Tree.
type Tree[T any] struct {
	root  *tree.Node[T, int]
	count int
	cmp   tree.Comparator[T]
}

// Every node caches its own height in Extra: 0 for a leaf.
// A missing child has height -1.

// New returns an empty tree ordered by the < operator.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc[T](tree.Compare[T])
}

// NewFunc returns an empty tree ordered by cmp.
func NewFunc[T any](cmp tree.Comparator[T]) *Tree[T] {
	if cmp == nil {
		panic("avl: nil comparator")
	}
	return &Tree[T]{cmp: cmp}
}

// compare panics on a zero Tree, which has no ordering.
func (t *Tree[T]) compare() tree.Comparator[T] {
	if t.cmp == nil {
		panic("avl: use New or NewFunc")
	}
	return t.cmp
}

func height[T any](n *tree.Node[T, int]) int {
	if n == nil {
		return -1
	}
	return n.Extra
}

func fixHeight[T any](n *tree.Node[T, int]) {
	l, r := height(n.Left), height(n.Right)
	if l > r {
		n.Extra = l + 1
	} else {
		n.Extra = r + 1
	}
}

// balance is the height of the left subtree minus the right.
func balance[T any](n *tree.Node[T, int]) int {
	return height(n.Left) - height(n.Right)
}

func rotateLeft[T any](n *tree.Node[T, int]) *tree.Node[T, int] {
	p := n.RotateLeft()
	fixHeight(n)
	fixHeight(p)
	return p
}

func rotateRight[T any](n *tree.Node[T, int]) *tree.Node[T, int] {
	l := n.RotateRight()
	fixHeight(n)
	fixHeight(l)
	return l
}

// rebalance is the tree.Fixup for AVL trees. It refreshes n's cached
// height and rotates when n's subtrees differ in height by 2.
//
// Left-heavy (balance > 1): if the left child leans right, rotate it
// left first (the left-right case), then rotate n right.
// Right-heavy (balance < -1) is the mirror image.
func rebalance[T any](n *tree.Node[T, int]) *tree.Node[T, int] {
	fixHeight(n)

	switch b := balance(n); {
	case b > 1:
		if balance(n.Left) < 0 {
			n.Left = rotateLeft(n.Left)
		}
		return rotateRight(n)
	case b < -1:
		if balance(n.Right) > 0 {
			n.Right = rotateRight(n.Right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}

// Insert inserts k into the tree. It always succeeds.
func (t *Tree[T]) Insert(k T) {
	t.root = tree.Insert(t.root, k, 0, t.compare(), rebalance[T])
	t.count++
}

// RemoveFirst removes one key equal to k: the first one found
// searching down from the root. If there is none, ok is false
// and the tree is unchanged.
func (t *Tree[T]) RemoveFirst(k T) (removed T, ok bool) {
	t.root, removed, ok = tree.Remove(t.root, k, t.compare(), rebalance[T])
	if ok {
		t.count--
	}
	return
}

// RemoveMinimum removes and returns the smallest key.
// If the tree is empty, ok is false.
func (t *Tree[T]) RemoveMinimum() (k T, ok bool) {
	if t.root == nil {
		return
	}
	t.root, k = tree.RemoveMin(t.root, rebalance[T])
	t.count--
	return k, true
}

// RemoveMaximum removes and returns the largest key.
// If the tree is empty, ok is false.
func (t *Tree[T]) RemoveMaximum() (k T, ok bool) {
	if t.root == nil {
		return
	}
	t.root, k = tree.RemoveMax(t.root, rebalance[T])
	t.count--
	return k, true
}

// RemoveAll empties the tree and returns its keys in post-order,
// children before their parent.
func (t *Tree[T]) RemoveAll() []T {
	out := make([]T, 0, t.count)
	c := iterator.NewPostOrder(t.root)
	for ; !c.Done(); c.Advance() {
		out = append(out, c.Item())
	}

	t.root, t.count = nil, 0
	return out
}

// FindFirst returns the first key found equal to k, searching down
// from the root. If there is none, ok is false.
func (t *Tree[T]) FindFirst(k T) (found T, ok bool) {
	n, ok := tree.Find(t.root, k, t.compare())
	if !ok {
		return
	}
	return n.Key, true
}

// FindMinimum returns the smallest key.
// If the tree is empty, ok is false.
func (t *Tree[T]) FindMinimum() (k T, ok bool) {
	n := tree.Min(t.root)
	if n == nil {
		return
	}
	return n.Key, true
}

// FindMaximum returns the largest key.
// If the tree is empty, ok is false.
func (t *Tree[T]) FindMaximum() (k T, ok bool) {
	n := tree.Max(t.root)
	if n == nil {
		return
	}
	return n.Key, true
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	_, ok := t.FindFirst(k)
	return ok
}

// Height returns the height of the tree: -1 if it is empty,
// 0 if it only has a root.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Len returns the number of keys in the tree.
func (t *Tree[_]) Len() int {
	return t.count
}

// IsEmpty returns true if the tree has no keys.
func (t *Tree[_]) IsEmpty() bool {
	return t.root == nil
}

// Clone returns a deep copy of the tree with the same shape.
// Keys are copied by value.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:  tree.Clone(t.root),
		count: t.count,
		cmp:   t.cmp,
	}
}

// Move returns a new Tree holding all of t's nodes and leaves t empty.
// No nodes are copied.
func (t *Tree[T]) Move() *Tree[T] {
	moved := &Tree[T]{
		root:  t.root,
		count: t.count,
		cmp:   t.cmp,
	}
	t.root, t.count = nil, 0
	return moved
}

// String returns a string representation of the tree.
// See tree.Sprint for the format.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// See chops.CoIterate for the usage.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](iterator.Iter[T](t.BeginInOrder()))
}
