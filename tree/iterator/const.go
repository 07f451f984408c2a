package iterator

// Const is a read-only view of a cursor: it has no Ref.
// Advancing a Const advances the cursor it wraps.
type Const[T any, C Reader[T, C]] struct {
	c C
}

// MakeConst wraps c in a read-only view.
func MakeConst[T any, C Reader[T, C]](c C) Const[T, C] {
	return Const[T, C]{c: c}
}

func (c Const[_, _]) Done() bool {
	return c.c.Done()
}

func (c Const[T, _]) Item() T {
	return c.c.Item()
}

func (c Const[_, _]) Advance() {
	c.c.Advance()
}

func (c Const[T, C]) Equal(o Const[T, C]) bool {
	return c.c.Equal(o.c)
}
