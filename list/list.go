// Package list provides a generic doubly linked list.
// It is the building block for the stack and queue packages,
// which in turn back the tree traversal cursors.
package list

import "go.lepak.sg/bintree/chops"

var _ chops.Iterator[int] = (*Iterator[int])(nil)

// List is a doubly linked list.
// The zero List is empty and ready to use.
// List is not safe for concurrent use.
type List[T any] struct {
	head, tail *element[T]
	len        int
}

type element[T any] struct {
	v T

	prev, next *element[T]
}

// New returns a pointer to a new, empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
// It is safe to call Len on a nil List.
func (l *List[_]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// PushFront inserts v at the head of the list.
func (l *List[T]) PushFront(v T) {
	e := &element[T]{v: v, next: l.head}
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
}

// PushBack inserts v at the tail of the list.
func (l *List[T]) PushBack(v T) {
	e := &element[T]{v: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.len++
}

// PopFront removes and returns the element at the head of the list.
// If the list is empty, ok is false.
func (l *List[T]) PopFront() (v T, ok bool) {
	if l.Len() == 0 {
		return
	}
	e := l.head
	l.remove(e)
	return e.v, true
}

// PopBack removes and returns the element at the tail of the list.
// If the list is empty, ok is false.
func (l *List[T]) PopBack() (v T, ok bool) {
	if l.Len() == 0 {
		return
	}
	e := l.tail
	l.remove(e)
	return e.v, true
}

// Front returns the element at the head of the list without removing it.
func (l *List[T]) Front() (v T, ok bool) {
	if l.Len() == 0 {
		return
	}
	return l.head.v, true
}

// Back returns the element at the tail of the list without removing it.
func (l *List[T]) Back() (v T, ok bool) {
	if l.Len() == 0 {
		return
	}
	return l.tail.v, true
}

// Clear removes all elements from the list.
func (l *List[_]) Clear() {
	// unlink everything so that elements held by an abandoned
	// iterator don't keep the rest of the chain alive
	for e := l.head; e != nil; {
		next := e.next
		e.prev, e.next = nil, nil
		e = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

func (l *List[T]) remove(e *element[T]) {
	if e == nil {
		panic("nil element")
	}

	if l.head == nil || l.tail == nil {
		panic("nil head or tail")
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		if l.head != e {
			panic("element has no previous node but it is not the head")
		}
		l.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		if l.tail != e {
			panic("element has no next node but it is not the tail")
		}
		l.tail = e.prev
	}

	e.prev, e.next = nil, nil
	l.len--
}

// Check walks the list and reports whether the links are consistent:
// no cycles, prev pointers mirror next pointers, and the element count
// matches Len. It is meant for tests and debugging.
func (l *List[T]) Check() bool {
	if l.Len() == 0 {
		return l == nil || (l.head == nil && l.tail == nil)
	}

	tortoise, hare := l.head, l.head
	for hare != nil && hare.next != nil {
		tortoise = tortoise.next
		hare = hare.next.next
		if tortoise == hare {
			return false
		}
	}

	n := 0
	var prev *element[T]
	for e := l.head; e != nil; e = e.next {
		if e.prev != prev {
			return false
		}
		prev = e
		n++
	}

	return prev == l.tail && n == l.len
}

// Iterator returns an iterator that walks the list from head to tail.
// The result of mutating the list while iterating over it is undefined.
func (l *List[T]) Iterator() *Iterator[T] {
	i := &Iterator[T]{}
	if l != nil {
		i.next = l.head
	}
	return i
}

// Iterator walks a List from head to tail.
// The usual usage:
//	i := l.Iterator()
//	for i.Next() {
//		v := i.Item()
//		...
//	}
type Iterator[T any] struct {
	at, next *element[T]
}

// Next moves to the next element and returns true if there is one.
func (i *Iterator[T]) Next() bool {
	if i == nil || i.next == nil {
		return false
	}
	i.at, i.next = i.next, i.next.next
	return true
}

// Item returns the element at the current position.
func (i *Iterator[T]) Item() T {
	return i.at.v
}
