package iterator

import (
	"go.lepak.sg/bintree/stack"
	"go.lepak.sg/bintree/tree"
)

// PostOrder is a post-order (left, right, node) cursor.
// Unlike the other cursors, it does all of its work up front:
// construction pushes every node, so it costs O(n) memory for
// the lifetime of the cursor.
type PostOrder[T, X any] struct {
	stack *stack.Stack[*tree.Node[T, X]]
}

// NewPostOrder returns a post-order cursor over the tree rooted at root.
func NewPostOrder[T, X any](root *tree.Node[T, X]) *PostOrder[T, X] {
	i := &PostOrder[T, X]{
		stack: stack.New[*tree.Node[T, X]](),
	}
	if root == nil {
		return i
	}

	// Discovering nodes as node, right, left gives the reverse of
	// post-order. Pushing them in discovery order onto i.stack means
	// popping them yields post-order.
	pending := stack.New[*tree.Node[T, X]]()
	pending.Push(root)
	for !pending.IsEmpty() {
		n, _ := pending.Pop()
		i.stack.Push(n)
		if n.Left != nil {
			pending.Push(n.Left)
		}
		if n.Right != nil {
			pending.Push(n.Right)
		}
	}

	return i
}

func (i *PostOrder[T, X]) top() *tree.Node[T, X] {
	n, ok := i.stack.Peek()
	if !ok {
		panic(exhausted)
	}
	return n
}

func (i *PostOrder[_, _]) Done() bool {
	return i.stack.IsEmpty()
}

func (i *PostOrder[T, _]) Item() T {
	return i.top().Key
}

func (i *PostOrder[T, _]) Ref() *T {
	return &i.top().Key
}

func (i *PostOrder[_, _]) Advance() {
	if _, ok := i.stack.Pop(); !ok {
		panic(exhausted)
	}
}

func (i *PostOrder[T, X]) Equal(o *PostOrder[T, X]) bool {
	return stack.Equal(i.stack, o.stack)
}
