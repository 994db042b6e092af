package avl

import "golang.org/x/exp/constraints"

// rotateLeft and rotateRight rewire n and its heavy child, refresh both
// nodes' caches, and return the new top of the subtree. They do not touch
// n's former parent: the caller is responsible for patching whichever slot
// held n (the containing Tree's root field, a parent's child pointer, or
// nothing at all when the subtree is a detached BFS node graph in flight -
// this is the "root update callback" described in the design: for a mutable
// Tree it is reattach/setRoot, for BFS node-graph construction it is the
// caller simply carrying the returned top forward).

func rotateLeft[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.left = n
	r.parent = n.parent
	n.parent = r
	refresh(n)
	refresh(r)
	return r
}

func rotateRight[T any, S constraints.Unsigned](n *node[T, S]) *node[T, S] {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.right = n
	l.parent = n.parent
	n.parent = l
	refresh(n)
	refresh(l)
	return l
}

// reattach patches whichever slot in newTop.parent used to hold oldTop with
// newTop. It is a no-op when newTop.parent is nil: the subtree has no
// containing node, either because it is the tree's root (the caller must
// separately redirect the Tree's root field) or because it is a detached
// BFS node graph with no containing structure at all.
func reattach[T any, S constraints.Unsigned](oldTop, newTop *node[T, S]) {
	p := newTop.parent
	if p == nil {
		return
	}
	if p.left == oldTop {
		p.left = newTop
	} else {
		p.right = newTop
	}
}

// rebalanceAt refreshes n's cached height/count and, if n violates the AVL
// balance invariant, performs the appropriate single or double rotation.
// onRootChange, if non-nil, is invoked with the new top whenever a rotation
// replaced n and n itself had no parent (i.e. n was the root of a mutable
// Tree); it is not invoked when no rotation happens. It is the "root
// update callback" from the design notes. Returns the node that now
// occupies the position n used to occupy.
func rebalanceAt[T any, S constraints.Unsigned](n *node[T, S], onRootChange func(*node[T, S])) *node[T, S] {
	refresh(n)
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			newLeft := rotateLeft(n.left)
			n.left = newLeft
			refresh(n)
		}
		top := rotateRight(n)
		reattach(n, top)
		if top.parent == nil && onRootChange != nil {
			onRootChange(top)
		}
		return top
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			newRight := rotateRight(n.right)
			n.right = newRight
			refresh(n)
		}
		top := rotateLeft(n)
		reattach(n, top)
		if top.parent == nil && onRootChange != nil {
			onRootChange(top)
		}
		return top
	default:
		return n
	}
}
