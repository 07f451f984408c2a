// Package iterator provides traversal cursors for use
// by tree implementations.
//
// A cursor sits on one node of a tree and knows which nodes
// are still to be visited. There is one cursor type per order:
// InOrder, PreOrder, PostOrder and LevelOrder. Each keeps its
// frontier in a stack (or, for LevelOrder, a queue) of node
// references and never touches the tree's links.
//
// The usual usage:
//	for c := t.BeginInOrder(); !c.Done(); c.Advance() {
//		k := c.Item()
//		... do stuff with k ...
//	}
//
// A cursor built from a nil root is the end cursor. Two cursors
// of the same type are Equal when their frontiers hold the same
// nodes in the same order, so a cursor that has run out compares
// Equal to the end cursor.
//
// Item, Ref and Advance panic on a cursor that is Done.
// The result of mutating a tree while a cursor is alive is undefined.
// Cursors can be abandoned at any time.
package iterator

import (
	"go.lepak.sg/bintree/chops"
)

// Reader is the read-only cursor protocol. C is the cursor type itself,
// so Equal only accepts a cursor of the same kind.
type Reader[T, C any] interface {
	Done() bool
	Item() T
	Advance()
	Equal(C) bool
}

// Writer is a cursor that can also hand out the key in place.
// Writing through Ref must not change the key's order relative to
// the other keys in the tree.
type Writer[T, C any] interface {
	Reader[T, C]
	Ref() *T
}

var (
	_ Writer[int, *InOrder[int, struct{}]]    = (*InOrder[int, struct{}])(nil)
	_ Writer[int, *PreOrder[int, struct{}]]   = (*PreOrder[int, struct{}])(nil)
	_ Writer[int, *PostOrder[int, struct{}]]  = (*PostOrder[int, struct{}])(nil)
	_ Writer[int, *LevelOrder[int, struct{}]] = (*LevelOrder[int, struct{}])(nil)

	_ Reader[int, Const[int, *InOrder[int, struct{}]]] = Const[int, *InOrder[int, struct{}]]{}

	_ chops.Iterator[int] = (*Seq[int, *InOrder[int, struct{}]])(nil)
)

const exhausted = "iterator: cursor is exhausted"
