package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tree2Tall = `4
├─L─2
│   ├─L─1
│   └─R─3
└─R─6
    ├─L─5
    └─R─7
`

func TestHeight(t *testing.T) {
	tests := []struct {
		name     string
		root     *Node[int, struct{}]
		height   int
		balanced bool
		count    int
	}{
		{
			name:     "empty",
			height:   -1,
			balanced: true,
		},
		{
			name:     "leaf",
			root:     BasicNodeOf(1),
			height:   0,
			balanced: true,
			count:    1,
		},
		{
			name:     "complete",
			root:     newCompleteTree_2Tall(),
			height:   2,
			balanced: true,
			count:    7,
		},
		{
			name:   "chain",
			root:   build(1, 2, 3),
			height: 2,
			count:  3,
		},
		{
			name:     "lopsided but balanced",
			root:     build(3, 2, 4, 1),
			height:   2,
			balanced: true,
			count:    4,
		},
		{
			name:   "balanced root, unbalanced child",
			root:   build(4, 2, 6, 1, 7, 8, 9),
			height: 4,
			count:  7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.height, Height(tt.root))
			assert.Equal(t, tt.balanced, Balanced(tt.root))
			assert.Equal(t, tt.count, Count(tt.root))
		})
	}
}

func TestSprint(t *testing.T) {
	assert.Equal(t, "", Sprint[int, struct{}](nil))
	assert.Equal(t, "1\n", Sprint(BasicNodeOf(1)))
	assert.Equal(t, tree2Tall, Sprint(newCompleteTree_2Tall()))

	rightOnly := build(1, 2)
	assert.Equal(t, "1\n└─R─2\n", Sprint(rightOnly))
}

func TestIdealHeight(t *testing.T) {
	tests := map[int]int{
		-1: -1,
		0:  -1,
		1:  0,
		2:  1,
		3:  1,
		4:  2,
		7:  2,
		8:  3,
		9:  3,
	}
	for n, want := range tests {
		assert.Equal(t, want, IdealHeight(n), "n=%d", n)
	}
}
