package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// This file implements the Blelloch-Ferizovic-Sun bulk set-algebra layer:
// split, join, join2, and the union/intersection/difference recurrences
// built on top of them. Everything below the public Union/Intersection/
// Difference/JoinTrees/SplitTree entry points operates directly on
// *node[T,S] graphs with no containing Tree - callers must not rely on any
// parent link above the node they hold until the graph is wrapped by one of
// the public entry points, which is where the published root's parent is
// nilled and the boundary cache is (re)computed.

// rawNode builds a plain (k, left, right) node with no rebalancing: it
// parents left/right to the new node and refreshes the new node's cached
// height/count. Used throughout the BFS layer wherever the recurrence calls
// for "Node(...)" rather than a rotation.
func rawNode[T any, S constraints.Unsigned](left *node[T, S], k T, right *node[T, S]) *node[T, S] {
	n := &node[T, S]{value: k, left: left, right: right}
	if left != nil {
		left.parent = n
	}
	if right != nil {
		right.parent = n
	}
	refresh(n)
	return n
}

// join builds a height-balanced node whose in-order sequence is
// (in-order of left) ++ [k] ++ (in-order of right), assuming every value in
// left sorts before k and every value in right sorts after it. left and
// right are consumed: their nodes may be reused and reparented.
func join[T any, S constraints.Unsigned](left *node[T, S], k T, right *node[T, S]) *node[T, S] {
	hl, hr := height(left), height(right)
	switch {
	case hl > hr+1:
		return joinRight(left, k, right)
	case hr > hl+1:
		return joinLeft(left, k, right)
	default:
		return rawNode(left, k, right)
	}
}

// joinRight handles height(left) > height(right)+1, per the BFS paper's
// joinRightAVL: expose left into (l, k', c), and either splice (k, c, right)
// in c's place (base case, c not much taller than right) or recurse into c
// (height(c) > height(right)+1). Either way, the result may end up right-
// heavy at the very top by at most 2, which needs a single rotateLeft - but
// in the base case the freshly built (k, c, right) node can itself be
// left-heavy, which a plain rotateLeft would not fix, so that case first
// rotateRights it (an RL double rotation overall).
func joinRight[T any, S constraints.Unsigned](left *node[T, S], k T, right *node[T, S]) *node[T, S] {
	l, kPrime, c := left.left, left.value, left.right

	if height(c) <= height(right)+1 {
		tPrime := rawNode(c, k, right)
		if height(tPrime) <= height(l)+1 {
			return rawNode(l, kPrime, tPrime)
		}
		tPrime = rotateRight(tPrime)
		top := rawNode(l, kPrime, tPrime)
		return rotateLeft(top)
	}

	tPrime := joinRight(c, k, right)
	top := rawNode(l, kPrime, tPrime)
	if height(tPrime) <= height(l)+1 {
		return top
	}
	return rotateLeft(top)
}

// joinLeft is the mirror of joinRight for height(right) > height(left)+1.
func joinLeft[T any, S constraints.Unsigned](left *node[T, S], k T, right *node[T, S]) *node[T, S] {
	r, kPrime, c := right.right, right.value, right.left

	if height(c) <= height(left)+1 {
		tPrime := rawNode(left, k, c)
		if height(tPrime) <= height(r)+1 {
			return rawNode(tPrime, kPrime, r)
		}
		tPrime = rotateLeft(tPrime)
		top := rawNode(tPrime, kPrime, r)
		return rotateRight(top)
	}

	tPrime := joinLeft(left, k, c)
	top := rawNode(tPrime, kPrime, r)
	if height(tPrime) <= height(r)+1 {
		return top
	}
	return rotateRight(top)
}

// split partitions node into two node graphs holding the values strictly
// less than and strictly greater than key, plus whether key itself was
// present. node's subtrees are consumed.
func split[T any, S constraints.Unsigned](n *node[T, S], key T, cmp Comparator[T]) (*node[T, S], bool, *node[T, S]) {
	if n == nil {
		return nil, false, nil
	}
	switch c := cmp(key, n.value); {
	case c == 0:
		detachParent(n.left)
		detachParent(n.right)
		return n.left, true, n.right
	case c < 0:
		l, present, r := split(n.left, key, cmp)
		return l, present, join(r, n.value, n.right)
	default:
		l, present, r := split(n.right, key, cmp)
		return join(n.left, n.value, l), present, r
	}
}

func detachParent[T any, S constraints.Unsigned](n *node[T, S]) {
	if n != nil {
		n.parent = nil
	}
}

// splitLast removes and returns the maximum value from n's graph, along
// with the remaining graph (possibly nil). n must be non-nil.
func splitLast[T any, S constraints.Unsigned](n *node[T, S]) (*node[T, S], T) {
	if n.right == nil {
		detachParent(n.left)
		return n.left, n.value
	}
	rest, k := splitLast(n.right)
	return join(n.left, n.value, rest), k
}

// join2 joins two node graphs with no middle key, assuming every value in
// left sorts before every value in right.
func join2[T any, S constraints.Unsigned](left, right *node[T, S]) *node[T, S] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	rest, k := splitLast(left)
	return join(rest, k, right)
}

func unionNodes[T any, S constraints.Unsigned](n1, n2 *node[T, S], cmp Comparator[T]) *node[T, S] {
	if n1 == nil {
		return n2
	}
	if n2 == nil {
		return n1
	}
	l1, _, r1 := split(n1, n2.value, cmp)
	left := unionNodes(l1, n2.left, cmp)
	right := unionNodes(r1, n2.right, cmp)
	return join(left, n2.value, right)
}

func intersectionNodes[T any, S constraints.Unsigned](n1, n2 *node[T, S], cmp Comparator[T]) *node[T, S] {
	if n1 == nil || n2 == nil {
		return nil
	}
	l1, present, r1 := split(n1, n2.value, cmp)
	left := intersectionNodes(l1, n2.left, cmp)
	right := intersectionNodes(r1, n2.right, cmp)
	if present {
		return join(left, n2.value, right)
	}
	return join2(left, right)
}

func differenceNodes[T any, S constraints.Unsigned](n1, n2 *node[T, S], cmp Comparator[T]) *node[T, S] {
	if n1 == nil {
		return nil
	}
	if n2 == nil {
		return n1
	}
	l1, _, r1 := split(n1, n2.value, cmp)
	left := differenceNodes(l1, n2.left, cmp)
	right := differenceNodes(r1, n2.right, cmp)
	return join2(left, right)
}

// wrap publishes a node graph as a fresh Tree: it nils the root's parent
// link (the graph may have been handed to us with a stale one from an
// intermediate join) and (re)derives the boundary cache by walking to the
// leftmost/rightmost live node, which is always available and cheap (spec
// §9 Open Question 3's "robust" alternative).
func wrap[T any, S constraints.Unsigned](root *node[T, S], cmp Comparator[T]) *Tree[T, S] {
	t := &Tree[T, S]{cmp: cmp, root: root}
	if root == nil {
		return t
	}
	root.parent = nil
	t.size = root.count
	lv := leftmost(root).value
	hv := rightmost(root).value
	t.lowest, t.highest = &lv, &hv
	return t
}

// Union returns a fresh Tree holding every value present in either a or b,
// using a's comparator. a and b are consumed: after the call their internal
// nodes may have been reparented into the result, and further use of either
// Tree produces undefined results.
func Union[T any, S constraints.Unsigned](a, b *Tree[T, S]) *Tree[T, S] {
	return wrap(unionNodes(a.root, b.root, a.cmp), a.cmp)
}

// Intersection returns a fresh Tree holding every value present in both a
// and b, using a's comparator. a and b are consumed.
func Intersection[T any, S constraints.Unsigned](a, b *Tree[T, S]) *Tree[T, S] {
	return wrap(intersectionNodes(a.root, b.root, a.cmp), a.cmp)
}

// Difference returns a fresh Tree holding every value of a not present in
// b, using a's comparator. a and b are consumed.
func Difference[T any, S constraints.Unsigned](a, b *Tree[T, S]) *Tree[T, S] {
	return wrap(differenceNodes(a.root, b.root, a.cmp), a.cmp)
}

// SplitTree partitions tree at key into two fresh trees holding the values
// strictly below and strictly above it, plus whether key itself was
// present. tree is consumed. On an empty tree, returns two empty trees and
// false.
func SplitTree[T any, S constraints.Unsigned](tree *Tree[T, S], key T) (left *Tree[T, S], isPresent bool, right *Tree[T, S]) {
	l, present, r := split(tree.root, key, tree.cmp)
	return wrap(l, tree.cmp), present, wrap(r, tree.cmp)
}

// OverlapError reports that JoinTrees was asked to join two trees, or a
// tree and a key, whose ranges overlap. Key is nil for a keyless join2.
type OverlapError struct {
	Key                    *string
	LowerBound, UpperBound string
}

func (e *OverlapError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("Cannot join 2 overlapping trees. The key \"%s\" must be greater than \"%s\" and lower than \"%s\" based on the comparator provided", *e.Key, e.LowerBound, e.UpperBound)
	}
	return fmt.Sprintf("Cannot join 2 overlapping trees. The lowerbound of \"%s\" must be less than the upperbound of \"%s\"", e.LowerBound, e.UpperBound)
}

// JoinTrees is the public entry point for join and join2. With a key, it
// requires lower.highest < key < upper.lowest (an empty side waives its
// half of the check); without one, it requires lower.highest <
// upper.lowest. Violations raise *OverlapError before any mutation; lower
// and upper are left untouched in that case. On success, both trees are
// consumed. The comparator used throughout is lower's; compatibility with
// upper's is the caller's responsibility.
func JoinTrees[T any, S constraints.Unsigned](lower *Tree[T, S], key *T, upper *Tree[T, S]) (*Tree[T, S], error) {
	cmp := lower.cmp
	if key != nil {
		if lower.highest != nil && cmp(*lower.highest, *key) >= 0 {
			return nil, overlapError(cmp, key, lower, upper)
		}
		if upper.lowest != nil && cmp(*key, *upper.lowest) >= 0 {
			return nil, overlapError(cmp, key, lower, upper)
		}
		return wrap(join(lower.root, *key, upper.root), cmp), nil
	}
	if lower.highest != nil && upper.lowest != nil && cmp(*lower.highest, *upper.lowest) >= 0 {
		return nil, overlapError(cmp, nil, lower, upper)
	}
	return wrap(join2(lower.root, upper.root), cmp), nil
}

func overlapError[T any, S constraints.Unsigned](cmp Comparator[T], key *T, lower, upper *Tree[T, S]) *OverlapError {
	e := &OverlapError{}
	if lower.highest != nil {
		e.LowerBound = fmt.Sprint(*lower.highest)
	}
	if upper.lowest != nil {
		e.UpperBound = fmt.Sprint(*upper.lowest)
	}
	if key != nil {
		s := fmt.Sprint(*key)
		e.Key = &s
	}
	return e
}
