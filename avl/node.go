package avl

import "golang.org/x/exp/constraints"

// node is a single AVL node. left and right are owning handles; parent is
// a non-owning back-reference used to walk upward during rebalancing and
// during the BFS layer's spine descents. The zero value is not meaningful;
// nodes are always created through newLeaf or one of the BFS constructors.
type node[T any, S constraints.Unsigned] struct {
	value               T
	left, right, parent *node[T, S]
	height              S
	count               S
}

func newLeaf[T any, S constraints.Unsigned](v T) *node[T, S] {
	return &node[T, S]{value: v, height: 0, count: 1}
}

// height treats a missing child as having height -1, so a leaf (no
// children) computes to height 0, matching the node's stored field.
func height[T any, S constraints.Unsigned](n *node[T, S]) int {
	if n == nil {
		return -1
	}
	return int(n.height)
}

func count[T any, S constraints.Unsigned](n *node[T, S]) S {
	if n == nil {
		return 0
	}
	return n.count
}

// refresh recomputes n's height and count caches from its children. Must be
// called on every node whose children were mutated, innermost first.
func refresh[T any, S constraints.Unsigned](n *node[T, S]) {
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		n.height = S(hl + 1)
	} else {
		n.height = S(hr + 1)
	}
	n.count = count(n.left) + count(n.right) + 1
}

// balanceFactor is height(left) - height(right); a missing child counts as
// height -1.
func balanceFactor[T any, S constraints.Unsigned](n *node[T, S]) int {
	return height(n.left) - height(n.right)
}

func leftmost[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	for n.right != nil {
		n = n.right
	}
	return n
}
