package ordset

import "testing"

func intCmp(a, b int) int { return a - b }

func TestAVLSet_PutHasRemove(t *testing.T) {
	s := New[int](intCmp)
	for i := 0; i < 10; i++ {
		if !s.Put(i) {
			t.Error("wrong put 1")
		}
		if s.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !s.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !s.Remove(i) {
			t.Error("wrong remove 1")
		}
		if s.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if s.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if s.Size() != 5 {
		t.Errorf("Size() is %d, want 5", s.Size())
	}
}

func TestAVLSet_Take(t *testing.T) {
	s := New[int](intCmp)
	if s.Take() != 0 {
		t.Errorf("Take() on an empty set is %d, want 0", s.Take())
	}
	s.Put(42)
	if s.Take() != 42 {
		t.Errorf("Take() is %d, want 42", s.Take())
	}
}

func TestAVLSet_Range(t *testing.T) {
	s := New[int](intCmp)
	for _, v := range []int{5, 1, 3, 4, 2} {
		s.Put(v)
	}
	var got []int
	s.Range(func(v int) bool {
		got = append(got, v)
		return true
	})
	want := []int{1, 2, 3, 4, 5}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("Range order = %v, want %v", got, want)
		}
	}
}

func TestAVLSet_RangeEarlyStop(t *testing.T) {
	s := New[int](intCmp)
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.Put(v)
	}
	var count int
	s.Range(func(v int) bool {
		count++
		return v < 3
	})
	if count != 3 {
		t.Errorf("Range visited %d elements before stopping, want 3", count)
	}
}

func TestAVLSet_PutAllRemoveAll(t *testing.T) {
	a := New[int](intCmp)
	for _, v := range []int{1, 2, 3} {
		a.Put(v)
	}
	b := New[int](intCmp)
	for _, v := range []int{2, 3, 4} {
		b.Put(v)
	}
	if n := a.PutAll(b); n != 1 {
		t.Errorf("PutAll added %d new elements, want 1", n)
	}
	if !a.Has(4) {
		t.Errorf("4 missing after PutAll")
	}
	if n := a.RemoveAll(b); n != 3 {
		t.Errorf("RemoveAll removed %d elements, want 3", n)
	}
	if a.Has(2) || a.Has(3) || a.Has(4) {
		t.Errorf("RemoveAll left some of b's elements behind")
	}
	if !a.Has(1) {
		t.Errorf("RemoveAll removed an element not present in b")
	}
}

func TestAVLSet_Eq(t *testing.T) {
	a := New[int](intCmp)
	b := New[int](intCmp)
	for _, v := range []int{1, 2, 3} {
		a.Put(v)
		b.Put(v)
	}
	if !a.Eq(b) {
		t.Errorf("Eq returned false for equal sets")
	}
	b.Put(4)
	if a.Eq(b) {
		t.Errorf("Eq returned true for unequal sets")
	}
}

func TestAVLSet_UnionIntersect_FastPath(t *testing.T) {
	a := New[int](intCmp)
	for _, v := range []int{1, 2, 3, 4} {
		a.Put(v)
	}
	b := New[int](intCmp)
	for _, v := range []int{3, 4, 5, 6} {
		b.Put(v)
	}
	a.Union(b)
	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		if !a.Has(v) {
			t.Errorf("Union is missing %d", v)
		}
	}

	c := New[int](intCmp)
	for _, v := range []int{1, 2, 3, 4} {
		c.Put(v)
	}
	d := New[int](intCmp)
	for _, v := range []int{3, 4, 5, 6} {
		d.Put(v)
	}
	c.Intersect(d)
	if c.Size() != 2 || !c.Has(3) || !c.Has(4) {
		t.Errorf("Intersect did not reduce to {3,4}, has size %d", c.Size())
	}
}

func TestAVLSet_Union_GenericFallback(t *testing.T) {
	a := New[int](intCmp)
	for _, v := range []int{1, 2} {
		a.Put(v)
	}
	var other Set[int] = &plainSet{vals: map[int]bool{2: true, 3: true}}
	a.Union(other)
	for _, v := range []int{1, 2, 3} {
		if !a.Has(v) {
			t.Errorf("generic-fallback Union is missing %d", v)
		}
	}
}

func TestAVLSet_Filter(t *testing.T) {
	a := New[int](intCmp)
	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		a.Put(v)
	}
	even := a.Filter(func(v int) bool { return v%2 == 0 })
	for _, v := range []int{2, 4, 6} {
		if !even.Has(v) {
			t.Errorf("Filter is missing %d", v)
		}
	}
	if even.Has(1) || even.Has(3) || even.Has(5) {
		t.Errorf("Filter kept an odd value")
	}
}

// plainSet is a minimal Set implementation, used only to exercise
// AVLSet's generic (non-AVLSet-to-AVLSet) fallback paths.
type plainSet struct {
	vals map[int]bool
}

func (p *plainSet) Put(v int) bool {
	was := p.vals[v]
	p.vals[v] = true
	return !was
}

func (p *plainSet) Has(v int) bool {
	return p.vals[v]
}

func (p *plainSet) Remove(v int) bool {
	was := p.vals[v]
	delete(p.vals, v)
	return was
}

func (p *plainSet) Size() uint {
	return uint(len(p.vals))
}

func (p *plainSet) Take() int {
	for v := range p.vals {
		return v
	}
	return 0
}

func (p *plainSet) Range(f func(int) bool) {
	for v := range p.vals {
		if !f(v) {
			return
		}
	}
}
