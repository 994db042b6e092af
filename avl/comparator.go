// Package avl implements a generic, comparator-parameterized AVL tree
// together with the Blelloch-Ferizovic-Sun bulk set-algebra primitives
// (split, join, join2, union, intersection, difference) built on top of it.
package avl

import "cmp"

// Comparator is a three-way, BST-directing ordering over T: negative when
// a sorts before b, zero when they are logically equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// Unary is the predicate contract required by FirstWhere/RemoveFirstWhere.
// It must behave like a Comparator with the target fixed as its second
// argument: candidates for which u returns a positive value must all lie to
// the right of the match (if any) in the tree's order, so the descent goes
// left, and candidates for which u returns negative must all lie to the
// left, so the descent goes right. A general, non-BST-directing predicate will
// silently find nothing; use Ordered with a filter for that instead.
type Unary[T any] func(candidate T) int

// OrderedComparator derives a Comparator from any cmp.Ordered type, mirroring
// the teacher's split between primitive-ordered and user-comparator trees
// without needing two separate tree implementations.
func OrderedComparator[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}
