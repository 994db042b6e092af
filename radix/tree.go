// Package radix implements a compact-prefix trie whose per-node child
// collections are ordinary avl.Tree instances ordered by label, keyed at
// the top level by a bucket map from the first byte of a stored string to
// that bucket's root node.
package radix

import (
	"strings"

	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/avlset/avl"
)

// Tree is a mapping from the first byte of an inserted string to the root
// node of that string's bucket. Buckets are independent of one another.
type Tree struct {
	buckets *hashmap.Map[byte, *Node]
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{buckets: hashmap.New[byte, *Node]()}
}

// IsEmpty reports whether the tree holds no buckets.
func (t *Tree) IsEmpty() bool {
	return t.buckets.Len() == 0
}

// Clear drops every bucket.
func (t *Tree) Clear() {
	t.buckets = hashmap.New[byte, *Node]()
}

// hasEmptyChild reports whether children holds a terminator sentinel. The
// empty string sorts before every non-empty label under strings.Compare,
// so the sentinel, if present, is always the lowest child.
func hasEmptyChild(children *avl.Tree[*Node, uint16]) bool {
	lo, ok := children.Lowest()
	return ok && lo.label == ""
}

func ancestorLabels(n *Node) []string {
	if n == nil {
		return nil
	}
	var rev []string
	for cur := n; cur != nil; cur = cur.parent {
		rev = append(rev, cur.label)
	}
	out := make([]string, len(rev))
	for i, l := range rev {
		out[len(rev)-1-i] = l
	}
	return out
}

func pathIfRequested(n *Node, returnPath bool) []string {
	if !returnPath {
		return nil
	}
	return ancestorLabels(n)
}

// Insert adds the trimmed, non-empty form of s to the tree. If returnPath
// is set, it returns the ordered sequence of labels traversed or created
// while placing s; otherwise it returns nil. Inserting a string already
// present is a no-op.
func (t *Tree) Insert(s string, returnPath bool) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	res := t.search(s)
	if res.Existence == NotFound {
		root := newNode(s)
		t.buckets.Set(s[0], root)
		if returnPath {
			return []string{s}
		}
		return nil
	}

	anchor := res.node

	if res.Existence == Exists && !res.IsSubstring {
		if anchor.isLeaf() {
			return pathIfRequested(anchor, returnPath) // case 2
		}
		if hasEmptyChild(anchor.children) {
			return pathIfRequested(anchor, returnPath) // case 1
		}
		// falls through to case 4: tail is "" (the needle ends exactly
		// here), which appends the missing terminator sentinel.
	}

	if res.IsSubstring || res.LastSimilarity < len(anchor.label) {
		// case 3: the needle diverges inside anchor's label.
		common := anchor.label[:res.LastSimilarity]
		tailOld := anchor.label[res.LastSimilarity:]
		tailNew := s[res.NextPosition:]

		parent := anchor.parent
		if parent != nil {
			parent.children.Remove(anchor)
		}

		c := newNode(common)
		c.parent = parent
		if parent == nil {
			t.buckets.Set(s[0], c)
		} else {
			parent.children.Insert(c)
		}

		anchor.label = tailOld
		anchor.parent = c
		c.children.Insert(anchor)

		sibling := newNode(tailNew)
		sibling.parent = c
		c.children.Insert(sibling)

		if returnPath {
			return append(ancestorLabels(parent), c.label, sibling.label)
		}
		return nil
	}

	// case 4: the needle fully consumed anchor's label.
	wasLeaf := anchor.isLeaf()
	tail := s[res.NextPosition:]
	child := newNode(tail)
	child.parent = anchor
	anchor.children.Insert(child)
	if wasLeaf {
		term := newNode("")
		term.parent = anchor
		anchor.children.Insert(term)
	}
	if returnPath {
		return append(ancestorLabels(anchor.parent), anchor.label, tail)
	}
	return nil
}

// Delete removes the word equal to pre, or (if deleteIfSubstring) the
// entire subtree rooted where pre terminates. Returns whether anything was
// removed.
func (t *Tree) Delete(pre string, deleteIfSubstring bool) bool {
	res := t.search(pre)
	if res.Existence != Exists {
		return false
	}
	if res.IsSubstring && !deleteIfSubstring {
		return false
	}
	anchor := res.node

	if deleteIfSubstring || anchor.isLeaf() {
		// anchor (with everything under it) is exactly the subtree
		// rooted where pre terminates - whether pre landed on anchor's
		// boundary or stopped partway through its label, there is no
		// shallower node representing less than that.
		removeSubtree(t, pre, anchor)
		return true
	}

	// anchor is not a leaf and deleteIfSubstring is false: pre is only
	// "the word equal to pre" if anchor carries a terminator sentinel;
	// otherwise pre is merely a reachable prefix of longer words, never
	// itself stored, and there is nothing to delete.
	if !hasEmptyChild(anchor.children) {
		return false
	}
	term, _ := anchor.children.Lowest()
	anchor.children.Remove(term)
	compact(anchor)
	root := anchor
	for root.parent != nil {
		root = root.parent
	}
	t.buckets.Set(pre[0], root)
	return true
}

// removeSubtree drops anchor, and everything under it, from its parent -
// or drops the whole bucket if anchor is itself a bucket root.
func removeSubtree(t *Tree, pre string, anchor *Node) {
	if anchor.parent == nil {
		t.buckets.Del(pre[0])
		return
	}
	parent := anchor.parent
	parent.children.Remove(anchor)
	compact(parent)
	root := parent
	for root.parent != nil {
		root = root.parent
	}
	t.buckets.Set(pre[0], root)
}

// compact merges n with its sole remaining child, if it has exactly one,
// absorbing the child's label and adopting its grandchildren.
func compact(n *Node) {
	if n.children.Len() != 1 {
		return
	}
	only, _ := n.children.Root()
	n.label = n.label + only.label
	n.children = only.children
	for _, c := range n.children.Ordered(avl.InOrder) {
		c.parent = n
	}
}

// GetPossibleSuffix returns every stored word beginning with pre. With an
// empty prefix, buckets are visited in the bucket map's storage order
// (unordered across buckets) but each bucket's own words are in ascending
// label order.
func (t *Tree) GetPossibleSuffix(pre string) []string {
	var out []string
	if pre == "" {
		t.buckets.Range(func(_ byte, root *Node) bool {
			collectWordsFrom(root.label, "", root.children, &out)
			return true
		})
		return out
	}
	res := t.search(pre)
	if res.Existence != Exists {
		return out
	}
	anchor := res.node
	remainder := anchor.label[res.LastSimilarity:]
	collectWordsFrom(remainder, pre, anchor.children, &out)
	return out
}

// collectWordsFrom treats (label, children) as a virtual node appended to
// parentPrefix and gathers every stored word reachable from it, in
// ascending order within each sibling group.
func collectWordsFrom(label, parentPrefix string, children *avl.Tree[*Node, uint16], out *[]string) {
	full := parentPrefix + label
	if children.IsEmpty() {
		*out = append(*out, full)
		return
	}
	for _, c := range children.Ordered(avl.InOrder) {
		if c.label == "" {
			*out = append(*out, full)
			continue
		}
		collectWordsFrom(c.label, full, c.children, out)
	}
}
