package bst

import (
	"math/rand"
)

// BuildRandom builds a binary search tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	tr := &Tree[int]{}
	for _, n := range nodes {
		tr.Insert(n)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary search tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
//
// Balanced insertion orders get rare quickly as num grows, so this
// is only practical for small trees.
func BuildRandomBalanced(num int, seed int64) (*Tree[int], int) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = &Tree[int]{}
		for _, n := range nodes {
			tr.Insert(n)
		}
	}

	return tr, attempts
}
