package tree

// Fixup is applied bottom-up to every node on the unwind path of
// Insert and the Remove functions, after that node's subtree changed.
// It returns the node that must take n's place: n itself, or whichever
// node a rotation moved up.
// A nil Fixup leaves the shape alone, which gives a plain binary search tree.
type Fixup[T, X any] func(n *Node[T, X]) *Node[T, X]

func (f Fixup[T, X]) apply(n *Node[T, X]) *Node[T, X] {
	if f == nil {
		return n
	}
	return f(n)
}

// Insert inserts k below n and returns the new root of the subtree.
// New nodes are created with extra bookkeeping x.
// Keys comparing Equal to an existing key go to its right, so
// duplicates are kept in insertion order by an in-order walk.
func Insert[T, X any](n *Node[T, X], k T, x X, cmp Comparator[T], fix Fixup[T, X]) *Node[T, X] {
	if n == nil {
		return NodeOf(k, x)
	}

	if cmp(k, n.Key) == Less {
		n.Left = Insert(n.Left, k, x, cmp, fix)
	} else {
		n.Right = Insert(n.Right, k, x, cmp, fix)
	}

	return fix.apply(n)
}

// Remove removes the first node on the search path from n whose key
// compares Equal to k. It returns the new root of the subtree, the key
// that was removed, and whether anything was removed at all.
// A node with two children takes the key of its in-order successor,
// and the successor node is removed from the right subtree instead.
func Remove[T, X any](n *Node[T, X], k T, cmp Comparator[T], fix Fixup[T, X]) (root *Node[T, X], removed T, ok bool) {
	if n == nil {
		return nil, removed, false
	}

	switch cmp(k, n.Key) {
	case Less:
		n.Left, removed, ok = Remove(n.Left, k, cmp, fix)
	case Greater:
		n.Right, removed, ok = Remove(n.Right, k, cmp, fix)
	case Equal:
		removed, ok = n.Key, true
		switch {
		case n.Left == nil:
			return detach(n, n.Right), removed, true
		case n.Right == nil:
			return detach(n, n.Left), removed, true
		default:
			n.Right, n.Key = RemoveMin(n.Right, fix)
		}
	default:
		panic("unreachable")
	}

	if !ok {
		return n, removed, false
	}

	return fix.apply(n), removed, true
}

// RemoveMin removes the leftmost node below n, which must not be nil.
// It returns the new root of the subtree and the removed key.
func RemoveMin[T, X any](n *Node[T, X], fix Fixup[T, X]) (*Node[T, X], T) {
	if n == nil {
		panic("cannot RemoveMin on nil")
	}

	if n.Left == nil {
		k := n.Key
		return detach(n, n.Right), k
	}

	var k T
	n.Left, k = RemoveMin(n.Left, fix)
	return fix.apply(n), k
}

// RemoveMax removes the rightmost node below n, which must not be nil.
// It returns the new root of the subtree and the removed key.
func RemoveMax[T, X any](n *Node[T, X], fix Fixup[T, X]) (*Node[T, X], T) {
	if n == nil {
		panic("cannot RemoveMax on nil")
	}

	if n.Right == nil {
		k := n.Key
		return detach(n, n.Left), k
	}

	var k T
	n.Right, k = RemoveMax(n.Right, fix)
	return fix.apply(n), k
}

// detach unlinks n from its children and returns the child that
// takes its place.
func detach[T, X any](n, child *Node[T, X]) *Node[T, X] {
	n.Left, n.Right = nil, nil
	return child
}

// Find searches for k below n.
func Find[T, X any](n *Node[T, X], k T, cmp Comparator[T]) (*Node[T, X], bool) {
	for n != nil {
		switch cmp(k, n.Key) {
		case Less:
			n = n.Left
		case Greater:
			n = n.Right
		case Equal:
			return n, true
		default:
			panic("unreachable")
		}
	}

	return nil, false
}

// Min returns the leftmost node below n, or nil if n is nil.
func Min[T, X any](n *Node[T, X]) *Node[T, X] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node below n, or nil if n is nil.
func Max[T, X any](n *Node[T, X]) *Node[T, X] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Clone makes a deep copy of the subtree rooted at n, preserving its
// shape and the Extra of every node. Keys are copied by value.
func Clone[T, X any](n *Node[T, X]) *Node[T, X] {
	if n == nil {
		return nil
	}

	return &Node[T, X]{
		Key:   n.Key,
		Extra: n.Extra,
		Left:  Clone(n.Left),
		Right: Clone(n.Right),
	}
}
