package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := New[int]()
	assert.True(t, s.IsEmpty())

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())

	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	var walked []int
	i := s.Iterator()
	for i.Next() {
		walked = append(walked, i.Item())
	}
	assert.Equal(t, []int{3, 2, 1}, walked)

	for _, want := range []int{3, 2, 1} {
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_Clear(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")
	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestEqual(t *testing.T) {
	x, y := new(int), new(int)

	tests := []struct {
		name string
		a, b []*int
		want bool
	}{
		{name: "both empty", want: true},
		{name: "same refs", a: []*int{x, y}, b: []*int{x, y}, want: true},
		{name: "different order", a: []*int{x, y}, b: []*int{y, x}},
		{name: "different length", a: []*int{x}, b: []*int{x, y}},
		{name: "equal values, different refs", a: []*int{x}, b: []*int{y}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa, sb := New[*int](), New[*int]()
			for _, v := range tt.a {
				sa.Push(v)
			}
			for _, v := range tt.b {
				sb.Push(v)
			}
			assert.Equal(t, tt.want, Equal(sa, sb))
			assert.Equal(t, tt.want, Equal(sb, sa))
		})
	}

	assert.True(t, Equal[int](nil, New[int]()))
}
