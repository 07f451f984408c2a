// Package stack provides a LIFO stack backed by a linked list.
package stack

import "go.lepak.sg/bintree/list"

// Stack is a LIFO stack. The zero Stack is empty and ready to use.
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	l list.List[T]
}

// New returns a pointer to a new, empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.l.PushFront(v)
}

// Pop removes and returns the top of the stack.
// If the stack is empty, ok is false.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if s == nil {
		return
	}
	return s.l.PopFront()
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if s == nil {
		return
	}
	return s.l.Front()
}

// Len returns the number of elements on the stack.
// It is safe to call Len on a nil Stack.
func (s *Stack[_]) Len() int {
	if s == nil {
		return 0
	}
	return s.l.Len()
}

// IsEmpty returns true if the stack has no elements.
func (s *Stack[_]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes every element.
func (s *Stack[_]) Clear() {
	s.l.Clear()
}

// Iterator walks the stack from top to bottom.
func (s *Stack[T]) Iterator() *list.Iterator[T] {
	if s == nil {
		return (*list.List[T])(nil).Iterator()
	}
	return s.l.Iterator()
}

// Equal returns true if a and b hold the same elements in the same order.
// A nil Stack is equal to an empty one.
func Equal[T comparable](a, b *Stack[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for ia.Next() && ib.Next() {
		if ia.Item() != ib.Item() {
			return false
		}
	}
	return true
}
