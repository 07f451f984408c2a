package binary

import (
	"errors"
	"fmt"

	"go.lepak.sg/bintree/tree"
	"golang.org/x/exp/slices"
)

var (
	ErrEmpty          = errors.New("nothing to build")
	ErrLengthMismatch = errors.New("pre- and in-order traversals have different lengths")
	ErrDuplicateKey   = errors.New("duplicated key")
	ErrMissingKey     = errors.New("pre-order key not found in in-order traversal")
	ErrInconsistent   = errors.New("traversals do not describe the same tree")
)

// indexTraversals checks that pre and in hold the same unique keys
// and returns the position of every key in the in-order traversal.
func indexTraversals[S ~[]T, T comparable](pre, in S) (map[T]int, error) {
	if len(in) == 0 {
		return nil, ErrEmpty
	}

	if len(in) != len(pre) {
		return nil, fmt.Errorf("%w: %d pre-order keys, %d in-order keys",
			ErrLengthMismatch, len(pre), len(in))
	}

	inOrderMap := make(map[T]int, len(in))
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, fmt.Errorf("%w in in-order traversal: %v", ErrDuplicateKey, v)
		}
		inOrderMap[v] = i
	}

	seen := make(map[T]struct{}, len(pre))
	for _, v := range pre {
		if _, ok := inOrderMap[v]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingKey, v)
		}
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("%w in pre-order traversal: %v", ErrDuplicateKey, v)
		}
		seen[v] = struct{}{}
	}

	return inOrderMap, nil
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal. Keys must be unique.
func BuildFromPreAndInOrderIter[S ~[]T, T comparable](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	inOrderMap, err := indexTraversals(pre, in)
	if err != nil {
		return nil, err
	}

	tr := &Tree[T]{root: tree.BasicNodeOf(pre[0]), count: len(pre)}

	for _, toInsert := range pre[1:] {
		// The idea: a key's position in the in-order traversal orders
		// it against every other key, so insert as if into a BST
		// keyed by that position.
		current, parent := tr.root, (*tree.Node[T, struct{}])(nil)
		toInsertIdx := inOrderMap[toInsert]

		var result tree.Order
		for current != nil {
			// not actually tree-related, this Compare function is just handy
			result = tree.Compare(toInsertIdx, inOrderMap[current.Key])
			switch result {
			case tree.Less:
				// toInsert is first - go left
				current, parent = current.Left, current
			case tree.Greater:
				// current node key is first - go right
				current, parent = current.Right, current
			default:
				panic("unreachable")
			}
		}

		newnode := tree.BasicNodeOf(toInsert)

		switch result {
		case tree.Less:
			parent.Left = newnode
		case tree.Greater:
			parent.Right = newnode
		default:
			panic("unreachable")
		}
	}

	// The in-order traversal holds by construction, the pre-order
	// one has to be checked.
	i := 0
	for c := tr.BeginPreOrder(); !c.Done(); c.Advance() {
		if c.Item() != pre[i] {
			return nil, fmt.Errorf("%w: pre-order key %d is %v, tree has %v",
				ErrInconsistent, i, pre[i], c.Item())
		}
		i++
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal. Keys must be unique.
func BuildFromPreAndInOrderRec[S ~[]T, T comparable](
	pre, in S) (*Tree[T], error) {
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if _, err := indexTraversals(pre, in); err != nil {
		return nil, err
	}

	root, err := buildFromPreAndInOrderRecVisit(pre, in)
	if err != nil {
		return nil, err
	}

	return &Tree[T]{root: root, count: len(pre)}, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T comparable](
	pre, in S) (*tree.Node[T, struct{}], error) {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, fmt.Errorf("%w: %v is not where the pre-order traversal puts it",
			ErrInconsistent, x)
	}

	inleft, inright := in[0:xi], in[xi+1:]

	preleft, preright := pre[1:xi+1], pre[xi+1:]

	var err error
	n := tree.BasicNodeOf(x)
	if n.Left, err = buildFromPreAndInOrderRecVisit(preleft, inleft); err != nil {
		return nil, err
	}
	if n.Right, err = buildFromPreAndInOrderRecVisit(preright, inright); err != nil {
		return nil, err
	}

	return n, nil
}
