// Package chops adapts pull-style iterators to channels.
package chops

// Iterator describes a pull-style iterator over a data structure.
// Next must be called before each Item, including the first one.
// If Next returns false, Item must not be called.
// An Iterator must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel on which items are delivered.
// It is closed when the underlying iterator is exhausted
// or after Stop is called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It must not be called more than once.
// If Items has already been closed, Stop doesn't need to be called.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration:
//
//	co := CoIterate[int](iterator.Iter[int](t.BeginInOrder()))
//	for k := range co.Items() {
//		if done(k) {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine that exits when the iterator is
// exhausted or Stop is called, whichever happens first.
// Following the usage above, it never outlives the range loop.
// The iterator must not be used by anything else until then, and
// the structure it walks must not be mutated.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}
