package iterator

import (
	"go.lepak.sg/bintree/queue"
	"go.lepak.sg/bintree/tree"
)

// LevelOrder is a breadth-first cursor: the root, then every node
// at depth 1 from left to right, then depth 2, and so on.
type LevelOrder[T, X any] struct {
	queue *queue.Queue[*tree.Node[T, X]]
}

// NewLevelOrder returns a level-order cursor over the tree rooted at root.
func NewLevelOrder[T, X any](root *tree.Node[T, X]) *LevelOrder[T, X] {
	i := &LevelOrder[T, X]{
		queue: queue.New[*tree.Node[T, X]](),
	}
	if root != nil {
		i.queue.Enqueue(root)
	}
	return i
}

func (i *LevelOrder[T, X]) front() *tree.Node[T, X] {
	n, ok := i.queue.Peek()
	if !ok {
		panic(exhausted)
	}
	return n
}

func (i *LevelOrder[_, _]) Done() bool {
	return i.queue.IsEmpty()
}

func (i *LevelOrder[T, _]) Item() T {
	return i.front().Key
}

func (i *LevelOrder[T, _]) Ref() *T {
	return &i.front().Key
}

// Advance dequeues the current node and enqueues its children.
func (i *LevelOrder[T, X]) Advance() {
	n, ok := i.queue.Dequeue()
	if !ok {
		panic(exhausted)
	}
	if n.Left != nil {
		i.queue.Enqueue(n.Left)
	}
	if n.Right != nil {
		i.queue.Enqueue(n.Right)
	}
}

func (i *LevelOrder[T, X]) Equal(o *LevelOrder[T, X]) bool {
	return queue.Equal(i.queue, o.queue)
}
