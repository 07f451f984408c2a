package iterator

import (
	"go.lepak.sg/bintree/stack"
	"go.lepak.sg/bintree/tree"
)

// InOrder is an in-order (left, node, right) cursor.
type InOrder[T, X any] struct {
	stack *stack.Stack[*tree.Node[T, X]]
}

// Recursive in-order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// Construction runs everything up to (1), all the way down to the
// leftmost node, pushing a frame for every node on the way.
// The top of the stack is the node for f(n).
// Advance pops it and resumes from (2), pushing the left spine of
// its right subtree.

// NewInOrder returns an in-order cursor over the tree rooted at root.
// Note: This is meant to be called by tree implementations.
func NewInOrder[T, X any](root *tree.Node[T, X]) *InOrder[T, X] {
	i := &InOrder[T, X]{
		stack: stack.New[*tree.Node[T, X]](),
	}
	i.pushLeft(root)
	return i
}

func (i *InOrder[T, X]) pushLeft(n *tree.Node[T, X]) {
	for n != nil {
		i.stack.Push(n)
		n = n.Left
	}
}

func (i *InOrder[T, X]) top() *tree.Node[T, X] {
	n, ok := i.stack.Peek()
	if !ok {
		panic(exhausted)
	}
	return n
}

// Done returns true once every node has been visited.
func (i *InOrder[_, _]) Done() bool {
	return i.stack.IsEmpty()
}

// Item returns the key at the cursor.
func (i *InOrder[T, _]) Item() T {
	return i.top().Key
}

// Ref returns a pointer to the key at the cursor.
func (i *InOrder[T, _]) Ref() *T {
	return &i.top().Key
}

// Advance moves to the in-order successor.
func (i *InOrder[T, X]) Advance() {
	n, ok := i.stack.Pop()
	if !ok {
		panic(exhausted)
	}
	i.pushLeft(n.Right)
}

// Equal returns true if both cursors have the same nodes left to visit.
func (i *InOrder[T, X]) Equal(o *InOrder[T, X]) bool {
	return stack.Equal(i.stack, o.stack)
}
