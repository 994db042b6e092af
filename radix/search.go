package radix

// Existence classifies how far a needle got while descending a radix
// bucket.
type Existence int

const (
	// NotFound means the needle's bucket holds nothing at all.
	NotFound Existence = iota
	// CanExist means the needle diverged from the trie partway through a
	// label, or at a point with no matching child; the node where that
	// happened is the insertion anchor.
	CanExist
	// Exists means the needle matched in full, either landing exactly on
	// a node boundary or as a strict prefix of that node's label.
	Exists
)

// SearchResult is the outcome of descending a bucket for a needle.
// LastSimilarity is how many characters of the landing node's label
// matched; NextPosition is the index into the needle one past the last
// matched character.
type SearchResult struct {
	Existence      Existence
	Word           string
	IsSubstring    bool
	LastSimilarity int
	NextPosition   int
	node           *Node
}

func (t *Tree) search(needle string) *SearchResult {
	if needle == "" {
		return &SearchResult{Existence: NotFound}
	}
	root, ok := t.buckets.Get(needle[0])
	if !ok {
		return &SearchResult{Existence: NotFound}
	}
	cur := root
	pos := 0
	for {
		lbl := cur.label
		i := 0
		for i < len(lbl) && pos+i < len(needle) && lbl[i] == needle[pos+i] {
			i++
		}
		nextPosition := pos + i
		if i == len(lbl) {
			if nextPosition == len(needle) {
				return &SearchResult{Existence: Exists, Word: needle, LastSimilarity: i, NextPosition: nextPosition, node: cur}
			}
			child, found := findChild(cur.children, needle[nextPosition])
			if !found {
				return &SearchResult{Existence: CanExist, LastSimilarity: i, NextPosition: nextPosition, node: cur}
			}
			cur = child
			pos = nextPosition
			continue
		}
		if nextPosition == len(needle) {
			return &SearchResult{Existence: Exists, Word: needle, IsSubstring: true, LastSimilarity: i, NextPosition: nextPosition, node: cur}
		}
		return &SearchResult{Existence: CanExist, LastSimilarity: i, NextPosition: nextPosition, node: cur}
	}
}

// Search descends the bucket for pre. If insertOn is given and equals the
// result's Existence, and that Existence is not Exists, pre is inserted as
// a side effect (the returned SearchResult still describes the state
// before that insert).
func (t *Tree) Search(pre string, insertOn ...Existence) *SearchResult {
	res := t.search(pre)
	if len(insertOn) > 0 && res.Existence != Exists && insertOn[0] == res.Existence {
		t.Insert(pre, false)
	}
	return res
}

// Contains reports whether pre is a reachable prefix in the trie.
func (t *Tree) Contains(pre string) bool {
	return t.search(pre).Existence == Exists
}
