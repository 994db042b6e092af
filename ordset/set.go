// Package ordset gives the Sets.go lineage's Set/ExtendedSet surface an
// ordered backing, filling in the implementation the teacher's own package
// never carried: AVLSet wraps an avl.Tree, and ExtendedSet's Union/Intersect
// are thin wrappers over the avl package's BFS set algebra when both sides
// are AVLSets. Filter builds a new set by walking the elements in order.
package ordset

import "github.com/g-m-twostay/avlset/avl"

// Set is an ordered collection of unique values of type T.
type Set[T any] interface {
	Put(T) bool
	Has(T) bool
	Remove(T) bool
	Size() uint
	Take() T
	Range(func(T) bool)
}

// ExtendedSet layers bulk operations on top of Set, backed by avl's BFS
// layer.
type ExtendedSet[T any] interface {
	Set[T]
	PutAll(Set[T]) uint
	RemoveAll(Set[T]) uint
	Eq(Set[T]) bool
	Union(Set[T])
	Intersect(Set[T])
	Filter(func(T) bool) ExtendedSet[T]
}

// AVLSet is the avl.Tree-backed Set/ExtendedSet implementation.
type AVLSet[T any] struct {
	tree *avl.Tree[T, uint32]
}

// New returns an empty AVLSet ordered by cmp.
func New[T any](cmp avl.Comparator[T]) *AVLSet[T] {
	return &AVLSet[T]{tree: avl.New[T, uint32](cmp)}
}

// FromTree wraps an existing avl.Tree as a Set, without copying.
func FromTree[T any](t *avl.Tree[T, uint32]) *AVLSet[T] {
	return &AVLSet[T]{tree: t}
}

func (s *AVLSet[T]) Put(v T) bool {
	return s.tree.Insert(v)
}

func (s *AVLSet[T]) Has(v T) bool {
	return s.tree.Contains(v)
}

func (s *AVLSet[T]) Remove(v T) bool {
	return s.tree.Remove(v)
}

func (s *AVLSet[T]) Size() uint {
	return uint(s.tree.Len())
}

// Take returns the value at the tree's root, or the zero value if the set
// is empty. Like HashSet.Take, it does not guarantee which element comes
// back and is faster than Range because it never walks the tree.
func (s *AVLSet[T]) Take() T {
	v, _ := s.tree.Root()
	return v
}

// Range visits every element in ascending order, stopping early if f
// returns false.
func (s *AVLSet[T]) Range(f func(T) bool) {
	for _, v := range s.tree.Ordered(avl.InOrder) {
		if !f(v) {
			return
		}
	}
}

// PutAll inserts every element of other, returning how many were new.
func (s *AVLSet[T]) PutAll(other Set[T]) uint {
	var n uint
	other.Range(func(v T) bool {
		if s.Put(v) {
			n++
		}
		return true
	})
	return n
}

// RemoveAll removes every element of other that is present, returning how
// many were actually removed.
func (s *AVLSet[T]) RemoveAll(other Set[T]) uint {
	var n uint
	other.Range(func(v T) bool {
		if s.Remove(v) {
			n++
		}
		return true
	})
	return n
}

// Eq reports whether s and other contain exactly the same elements.
func (s *AVLSet[T]) Eq(other Set[T]) bool {
	if s.Size() != other.Size() {
		return false
	}
	eq := true
	other.Range(func(v T) bool {
		if !s.Has(v) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

// Union replaces s's contents with s ∪ other, when other is also an
// AVLSet sharing s's comparator; it consumes both underlying trees per
// avl.Union's aliasing contract. For any other Set implementation it falls
// back to PutAll.
func (s *AVLSet[T]) Union(other Set[T]) {
	if o, ok := other.(*AVLSet[T]); ok {
		s.tree = avl.Union(s.tree, o.tree)
		return
	}
	s.PutAll(other)
}

// Intersect replaces s's contents with s ∩ other, with the same AVLSet
// fast path and generic Set fallback as Union.
func (s *AVLSet[T]) Intersect(other Set[T]) {
	if o, ok := other.(*AVLSet[T]); ok {
		s.tree = avl.Intersection(s.tree, o.tree)
		return
	}
	keep := New[T](s.tree.Comparator())
	s.Range(func(v T) bool {
		if other.Has(v) {
			keep.Put(v)
		}
		return true
	})
	s.tree = keep.tree
}

// Filter returns a new ExtendedSet holding the elements of s for which f
// returns true.
func (s *AVLSet[T]) Filter(f func(T) bool) ExtendedSet[T] {
	out := New[T](s.tree.Comparator())
	s.Range(func(v T) bool {
		if f(v) {
			out.Put(v)
		}
		return true
	})
	return out
}
