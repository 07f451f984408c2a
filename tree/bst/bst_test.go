package bst

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/bintree/testutils"
	"go.uber.org/goleak"
)

func build(keys ...int) *Tree[int] {
	tr := &Tree[int]{}
	for _, k := range keys {
		tr.Insert(k)
	}
	return tr
}

func inOrder(tr *Tree[int]) []int {
	var out []int
	tr.InOrder(func(k int) bool {
		out = append(out, k)
		return true
	})
	return out
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		post    func(t *testing.T, tr *Tree[int])
	}{
		{
			name: "empty",
			post: func(t *testing.T, tr *Tree[int]) {
				assert.Nil(t, tr.root)
				assert.True(t, tr.IsEmpty())
			},
		},
		{
			name:    "one",
			inserts: []int{1},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 1, tr.root.Key)
				assert.Nil(t, tr.root.Left)
				assert.Nil(t, tr.root.Right)
			},
		},
		{
			name:    "one duplicate",
			inserts: []int{1, 1},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 1, tr.root.Key)
				assert.Nil(t, tr.root.Left)
				assert.NotNil(t, tr.root.Right)
				assert.Equal(t, 1, tr.root.Right.Key)
			},
		},
		{
			name:    "left",
			inserts: []int{2, 1},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 2, tr.root.Key)
				assert.NotNil(t, tr.root.Left)
				assert.Nil(t, tr.root.Right)
				assert.Equal(t, 1, tr.root.Left.Key)
				assert.True(t, tr.root.Left.IsLeaf())
			},
		},
		{
			name:    "right",
			inserts: []int{1, 2},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.NotNil(t, tr.root)
				assert.Equal(t, 1, tr.root.Key)
				assert.Nil(t, tr.root.Left)
				assert.NotNil(t, tr.root.Right)
				assert.Equal(t, 2, tr.root.Right.Key)
				assert.True(t, tr.root.Right.IsLeaf())
			},
		},
		{
			name:    "no rebalancing",
			inserts: []int{1, 2, 3},
			post: func(t *testing.T, tr *Tree[int]) {
				assert.Equal(t, "1\n└─R─2\n    └─R─3\n", tr.String())
				actual, ideal := tr.Height()
				assert.Equal(t, 2, actual)
				assert.Equal(t, 1, ideal)
				assert.False(t, tr.Balanced())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Tree[int]{}

			for _, k := range tt.inserts {
				tr.Insert(k)
			}
			assert.Equal(t, len(tt.inserts), tr.Len())

			tt.post(t, &tr)
		})
	}
}

func TestLess(t *testing.T) {
	tr := build(4, 2, 6, 1, 3, 5, 7)

	tests := []struct {
		k  int
		p  int
		ok bool
	}{
		{k: 0},
		{k: 1},
		{k: 2, p: 1, ok: true},
		{k: 3, p: 2, ok: true},
		{k: 4, p: 3, ok: true},
		{k: 5, p: 4, ok: true},
		{k: 7, p: 6, ok: true},
		{k: 8, p: 7, ok: true},
		{k: 100, p: 7, ok: true},
	}
	for _, tt := range tests {
		p, ok := tr.Less(tt.k)
		assert.Equal(t, tt.ok, ok, "k=%d", tt.k)
		assert.Equal(t, tt.p, p, "k=%d", tt.k)
	}

	_, ok := (&Tree[int]{}).Less(1)
	assert.False(t, ok)

	dups := build(2, 2, 2)
	_, ok = dups.Less(2)
	assert.False(t, ok)
	p, ok := dups.Less(3)
	assert.True(t, ok)
	assert.Equal(t, 2, p)
}

func TestRemove(t *testing.T) {
	tr := build(4, 2, 6, 1, 3, 5, 7)

	removed, ok := tr.RemoveFirst(4)
	assert.True(t, ok)
	assert.Equal(t, 4, removed)
	assert.Equal(t, "5\n├─L─2\n│   ├─L─1\n│   └─R─3\n└─R─6\n    └─R─7\n", tr.String())

	_, ok = tr.RemoveFirst(4)
	assert.False(t, ok)
	assert.Equal(t, 6, tr.Len())

	min, ok := tr.RemoveMinimum()
	assert.True(t, ok)
	assert.Equal(t, 1, min)

	max, ok := tr.RemoveMaximum()
	assert.True(t, ok)
	assert.Equal(t, 7, max)

	assert.Equal(t, []int{2, 3, 5, 6}, inOrder(tr))
	assert.Equal(t, 4, tr.Len())

	assert.Equal(t, []int{3, 2, 6, 5}, tr.RemoveAll())
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Len())

	_, ok = tr.RemoveMinimum()
	assert.False(t, ok)
	_, ok = tr.RemoveMaximum()
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	tr := build(4, 2, 6, 1, 3, 5, 7)

	for k := 1; k <= 7; k++ {
		found, ok := tr.FindFirst(k)
		assert.True(t, ok)
		assert.Equal(t, k, found)
		assert.True(t, tr.Contains(k))
	}
	assert.False(t, tr.Contains(0))
	assert.False(t, tr.Contains(8))

	min, ok := tr.FindMinimum()
	assert.True(t, ok)
	assert.Equal(t, 1, min)
	max, ok := tr.FindMaximum()
	assert.True(t, ok)
	assert.Equal(t, 7, max)

	empty := &Tree[int]{}
	_, ok = empty.FindMinimum()
	assert.False(t, ok)
	_, ok = empty.FindMaximum()
	assert.False(t, ok)
	_, ok = empty.FindFirst(1)
	assert.False(t, ok)
}

func TestVisitors(t *testing.T) {
	tr := build(4, 2, 6, 1, 3, 5, 7)

	var pre, post []int
	tr.PreOrder(func(k int) bool {
		pre = append(pre, k)
		return true
	})
	tr.PostOrder(func(k int) bool {
		post = append(post, k)
		return true
	})
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, pre)
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, post)

	var first []int
	tr.InOrder(func(k int) bool {
		first = append(first, k)
		return k < 3
	})
	assert.Equal(t, []int{1, 2, 3}, first)

	var level []int
	for c := tr.BeginLevelOrder(); !c.Equal(tr.EndLevelOrder()); c.Advance() {
		level = append(level, c.Item())
	}
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, level)

	// the zero tree has nothing to visit
	(&Tree[int]{}).InOrder(func(int) bool {
		t.Error("visited a key in an empty tree")
		return true
	})
}

func TestInOrderCoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := build(4, 2, 6, 1, 3, 5, 7)
	co := tr.InOrderCoroutine()
	testutils.DrainBlocking(t, []int{1, 2, 3, 4, 5, 6, 7}, co.Items(), time.Second)
}

func TestBuildRandom(t *testing.T) {
	const size = 100

	tr := BuildRandom(size, 42)
	require.Equal(t, size, tr.Len())

	want := make([]int, size)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, inOrder(tr))

	// same seed, same tree
	assert.Equal(t, tr.String(), BuildRandom(size, 42).String())

	assert.True(t, (&Tree[int]{}).IsEmpty())
	assert.True(t, BuildRandom(0, 42).IsEmpty())
}

func TestBuildRandomBalanced(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		tr, attempts := BuildRandomBalanced(7, seed)
		assert.True(t, tr.Balanced(), "seed=%d", seed)
		assert.GreaterOrEqual(t, attempts, 1)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, inOrder(tr))

		actual, ideal := tr.Height()
		assert.Equal(t, 2, ideal)
		assert.LessOrEqual(t, actual, 3)
	}
}
