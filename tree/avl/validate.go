package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/bintree/tree"
)

var (
	ErrUnordered  = errors.New("keys out of order")
	ErrHeight     = errors.New("cached height is stale")
	ErrUnbalanced = errors.New("node is unbalanced")
	ErrCount      = errors.New("node count mismatch")
)

// Validate walks the whole tree and checks its invariants:
// an in-order walk is sorted, every cached height is correct,
// no node's subtrees differ in height by more than one, and
// Len matches the number of nodes.
// The returned error wraps one of the Err* values above.
// Validate is O(n) and meant for tests and debugging.
func (t *Tree[T]) Validate() error {
	var (
		prev    T
		hasPrev bool
		count   int
	)

	var walk func(n *tree.Node[T, int]) (int, error)
	walk = func(n *tree.Node[T, int]) (int, error) {
		if n == nil {
			return -1, nil
		}

		lh, err := walk(n.Left)
		if err != nil {
			return 0, err
		}

		if hasPrev && t.compare()(n.Key, prev) == tree.Less {
			return 0, fmt.Errorf("%w: %v after %v", ErrUnordered, n.Key, prev)
		}
		prev, hasPrev = n.Key, true
		count++

		rh, err := walk(n.Right)
		if err != nil {
			return 0, err
		}

		h := lh + 1
		if rh > lh {
			h = rh + 1
		}
		if n.Extra != h {
			return 0, fmt.Errorf("%w: node %v has height %d, cached %d", ErrHeight, n.Key, h, n.Extra)
		}
		if d := lh - rh; d > 1 || d < -1 {
			return 0, fmt.Errorf("%w: node %v has balance %d", ErrUnbalanced, n.Key, d)
		}

		return h, nil
	}

	if _, err := walk(t.root); err != nil {
		return err
	}

	if count != t.count {
		return fmt.Errorf("%w: counted %d nodes, Len is %d", ErrCount, count, t.count)
	}

	return nil
}
