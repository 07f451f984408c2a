package iterator

import (
	"go.lepak.sg/bintree/stack"
	"go.lepak.sg/bintree/tree"
)

// PreOrder is a pre-order (node, left, right) cursor.
// The top of its stack is the current node; the rest are right
// subtrees still waiting for their turn.
type PreOrder[T, X any] struct {
	stack *stack.Stack[*tree.Node[T, X]]
}

// NewPreOrder returns a pre-order cursor over the tree rooted at root.
func NewPreOrder[T, X any](root *tree.Node[T, X]) *PreOrder[T, X] {
	i := &PreOrder[T, X]{
		stack: stack.New[*tree.Node[T, X]](),
	}
	if root != nil {
		i.stack.Push(root)
	}
	return i
}

func (i *PreOrder[T, X]) top() *tree.Node[T, X] {
	n, ok := i.stack.Peek()
	if !ok {
		panic(exhausted)
	}
	return n
}

func (i *PreOrder[_, _]) Done() bool {
	return i.stack.IsEmpty()
}

func (i *PreOrder[T, _]) Item() T {
	return i.top().Key
}

func (i *PreOrder[T, _]) Ref() *T {
	return &i.top().Key
}

// Advance pops the current node and pushes its children,
// right first so that the left child is visited next.
func (i *PreOrder[T, X]) Advance() {
	n, ok := i.stack.Pop()
	if !ok {
		panic(exhausted)
	}
	if n.Right != nil {
		i.stack.Push(n.Right)
	}
	if n.Left != nil {
		i.stack.Push(n.Left)
	}
}

func (i *PreOrder[T, X]) Equal(o *PreOrder[T, X]) bool {
	return stack.Equal(i.stack, o.stack)
}
