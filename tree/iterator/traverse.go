package iterator

// Traverse calls visit with every key from start up to, but not
// including, the position where start becomes Equal to end.
// Passing the end cursor as end visits everything that is left.
// start is advanced in place.
func Traverse[T any, C Reader[T, C]](start, end C, visit func(T)) {
	for !start.Equal(end) {
		visit(start.Item())
		start.Advance()
	}
}

// TraverseMut is like Traverse, but visit gets a pointer to each key
// so that it can update it in place. The tree's shape is not touched,
// so visit must not change how keys order against each other.
func TraverseMut[T any, C Writer[T, C]](start, end C, visit func(*T)) {
	for !start.Equal(end) {
		visit(start.Ref())
		start.Advance()
	}
}

// Seq adapts a cursor to the Next/Item protocol of chops.Iterator,
// which is what chops.CoIterate consumes.
type Seq[T any, C Reader[T, C]] struct {
	c       C
	started bool
}

// Iter returns a Seq over the remaining keys of c. c is advanced
// by the Seq and should not be used directly afterwards.
func Iter[T any, C Reader[T, C]](c C) *Seq[T, C] {
	return &Seq[T, C]{c: c}
}

// Next returns true if there is a key to read with Item.
// Next must always be called before Item.
func (s *Seq[T, C]) Next() bool {
	if s == nil {
		return false
	}
	if !s.started {
		s.started = true
		return !s.c.Done()
	}
	if s.c.Done() {
		return false
	}
	s.c.Advance()
	return !s.c.Done()
}

// Item returns the current key.
func (s *Seq[T, _]) Item() T {
	return s.c.Item()
}
