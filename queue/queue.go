// Package queue provides a FIFO queue backed by a linked list.
package queue

import "go.lepak.sg/bintree/list"

// Queue is a FIFO queue. The zero Queue is empty and ready to use.
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	l list.List[T]
}

// New returns a pointer to a new, empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.l.PushBack(v)
}

// Dequeue removes and returns the front of the queue.
// If the queue is empty, ok is false.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q == nil {
		return
	}
	return q.l.PopFront()
}

// Peek returns the front of the queue without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q == nil {
		return
	}
	return q.l.Front()
}

// Len returns the number of queued elements.
// It is safe to call Len on a nil Queue.
func (q *Queue[_]) Len() int {
	if q == nil {
		return 0
	}
	return q.l.Len()
}

// IsEmpty returns true if nothing is queued.
func (q *Queue[_]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes every element.
func (q *Queue[_]) Clear() {
	q.l.Clear()
}

// Iterator walks the queue from front to back.
func (q *Queue[T]) Iterator() *list.Iterator[T] {
	if q == nil {
		return (*list.List[T])(nil).Iterator()
	}
	return q.l.Iterator()
}

// Equal returns true if a and b hold the same elements in the same order.
// A nil Queue is equal to an empty one.
func Equal[T comparable](a, b *Queue[T]) bool {
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
