package radix

import (
	"slices"
	"testing"
)

func TestInsert_Path(t *testing.T) {
	tree := New()
	if got := tree.Insert("sum", true); !slices.Equal(got, []string{"sum"}) {
		t.Fatalf("Insert(sum) path = %v, want [sum]", got)
	}
	if got, want := tree.Insert("summer", true), []string{"sum", "mer"}; !slices.Equal(got, want) {
		t.Fatalf("Insert(summer) path = %v, want %v", got, want)
	}
	if got, want := tree.Insert("summed", true), []string{"sum", "me", "d"}; !slices.Equal(got, want) {
		t.Fatalf("Insert(summed) path = %v, want %v", got, want)
	}
}

func TestInsert_NoOp(t *testing.T) {
	tree := New()
	tree.Insert("sum", false)
	before := tree.Insert("sum", true)
	if want := []string{"sum"}; !slices.Equal(before, want) {
		t.Fatalf("re-inserting an exact leaf returned path %v, want %v", before, want)
	}
}

func TestInsert_EmptyOrWhitespace(t *testing.T) {
	tree := New()
	if got := tree.Insert("", true); got != nil {
		t.Errorf("inserting an empty string returned %v", got)
	}
	if got := tree.Insert("   ", true); got != nil {
		t.Errorf("inserting a whitespace-only string returned %v", got)
	}
	if !tree.IsEmpty() {
		t.Errorf("tree is not empty after inserting only empty/whitespace strings")
	}
}

func TestDelete_Subtree(t *testing.T) {
	tree := New()
	for _, w := range []string{"saddle", "saddened", "sack", "summer"} {
		tree.Insert(w, false)
	}
	if !tree.Delete("sad", true) {
		t.Fatalf("Delete(sad, true) returned false")
	}
	if got := tree.GetPossibleSuffix("sad"); len(got) != 0 {
		t.Errorf("GetPossibleSuffix(sad) after deleting its subtree = %v, want empty", got)
	}
	got := tree.GetPossibleSuffix("s")
	slices.Sort(got)
	if want := []string{"sack", "summer"}; !slices.Equal(got, want) {
		t.Errorf("GetPossibleSuffix(s) = %v, want %v", got, want)
	}
}

func TestDelete_StrictPrefixWithoutSubstringFlag(t *testing.T) {
	tree := New()
	tree.Insert("summer", false)
	if tree.Delete("sum", false) {
		t.Errorf("Delete(sum, false) returned true, but sum was never stored as a word")
	}
	if !tree.Contains("summer") {
		t.Errorf("summer was removed by a failed Delete")
	}
}

func TestDelete_TerminatorOnly(t *testing.T) {
	tree := New()
	tree.Insert("sum", false)
	tree.Insert("summer", false)
	if !tree.Delete("sum", false) {
		t.Fatalf("Delete(sum, false) returned false")
	}
	// sum remains a reachable prefix of summer even after its own
	// terminator sentinel is gone.
	if !tree.Contains("sum") {
		t.Errorf("sum is no longer reachable as a prefix of summer")
	}
	got := tree.GetPossibleSuffix("sum")
	if want := []string{"summer"}; !slices.Equal(got, want) {
		t.Errorf("GetPossibleSuffix(sum) after deleting the sum word = %v, want %v", got, want)
	}
}

func TestContains_RoundTrip(t *testing.T) {
	words := []string{"saddle", "saddened", "sack", "summer", "summed", "sad"}
	tree := New()
	for _, w := range words {
		tree.Insert(w, false)
	}
	for _, w := range words {
		if !tree.Contains(w) {
			t.Errorf("Contains(%q) is false after inserting it", w)
		}
	}
	if tree.Contains("notpresent") {
		t.Errorf("Contains(notpresent) is true")
	}
}

func TestGetPossibleSuffix_AllWordsWithPrefix(t *testing.T) {
	words := []string{"sum", "summer", "summed", "sack", "saddle"}
	tree := New()
	for _, w := range words {
		tree.Insert(w, false)
	}
	got := tree.GetPossibleSuffix("sum")
	slices.Sort(got)
	if want := []string{"sum", "summed", "summer"}; !slices.Equal(got, want) {
		t.Errorf("GetPossibleSuffix(sum) = %v, want %v", got, want)
	}
}

func TestGetPossibleSuffix_EmptyPrefix(t *testing.T) {
	words := []string{"apple", "banana", "avocado"}
	tree := New()
	for _, w := range words {
		tree.Insert(w, false)
	}
	got := tree.GetPossibleSuffix("")
	slices.Sort(got)
	want := slices.Clone(words)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("GetPossibleSuffix(\"\") = %v, want %v", got, want)
	}
}

func TestSearch_CanExistInsertSideEffect(t *testing.T) {
	tree := New()
	tree.Insert("summer", false)
	res := tree.Search("sumx", CanExist)
	if res.Existence != CanExist {
		t.Fatalf("Search(sumx) existence = %v, want CanExist", res.Existence)
	}
	if !tree.Contains("sumx") {
		t.Errorf("Search with insertOn=CanExist did not insert sumx as a side effect")
	}
}
