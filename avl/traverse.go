package avl

import "golang.org/x/exp/constraints"

// Order selects the walk order used by (*Tree).Ordered.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
	BreadthFirst
)

// Ordered returns the tree's values in the requested order. If filter is
// given, only values for which it returns true are included; filtering
// never changes the relative order of the values that survive it.
func (t *Tree[T, S]) Ordered(order Order, filter ...func(T) bool) []T {
	var keep func(T) bool
	if len(filter) > 0 && filter[0] != nil {
		keep = filter[0]
	} else {
		keep = func(T) bool { return true }
	}
	out := make([]T, 0, t.size)
	switch order {
	case InOrder:
		inOrderWalk(t.root, keep, &out)
	case PreOrder:
		preOrderWalk(t.root, keep, &out)
	case PostOrder:
		postOrderWalk(t.root, keep, &out)
	case BreadthFirst:
		breadthFirstWalk(t.root, keep, &out)
	}
	return out
}

func inOrderWalk[T any, S constraints.Unsigned](n *node[T, S], keep func(T) bool, out *[]T) {
	if n == nil {
		return
	}
	inOrderWalk(n.left, keep, out)
	if keep(n.value) {
		*out = append(*out, n.value)
	}
	inOrderWalk(n.right, keep, out)
}

func preOrderWalk[T any, S constraints.Unsigned](n *node[T, S], keep func(T) bool, out *[]T) {
	if n == nil {
		return
	}
	if keep(n.value) {
		*out = append(*out, n.value)
	}
	preOrderWalk(n.left, keep, out)
	preOrderWalk(n.right, keep, out)
}

func postOrderWalk[T any, S constraints.Unsigned](n *node[T, S], keep func(T) bool, out *[]T) {
	if n == nil {
		return
	}
	postOrderWalk(n.left, keep, out)
	postOrderWalk(n.right, keep, out)
	if keep(n.value) {
		*out = append(*out, n.value)
	}
}

// breadthFirstWalk uses a plain FIFO slice-queue, per the design notes: the
// traversal never needs priority ordering or random access, so a slice with
// a read index is simpler than importing a queue package for four lines of
// logic.
func breadthFirstWalk[T any, S constraints.Unsigned](root *node[T, S], keep func(T) bool, out *[]T) {
	if root == nil {
		return
	}
	queue := []*node[T, S]{root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if keep(n.value) {
			*out = append(*out, n.value)
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}
